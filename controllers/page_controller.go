// Package controllers renders the public site pages.
// File: controllers/page_controller.go
package controllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"sapf-site/logger"
	"sapf-site/services"
)

// Content sources shared by all page handlers; set once in main.
var (
	contentFetcher services.Fetcher
	demoStore      *services.DemoStore
)

// SetContentSources wires the content fetcher and demo override store.
func SetContentSources(f services.Fetcher, d *services.DemoStore) {
	contentFetcher = f
	demoStore = d
}

// Health responds to health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// loadStore runs the four-way content load and applies any demo overrides.
// On failure it renders the single page-level error view and returns false;
// the page renders nothing from partially loaded data.
func loadStore(c *gin.Context, page string) (*services.ContentStore, bool) {
	store, err := services.LoadContent(contentFetcher)
	if err != nil {
		logger.Error.Printf("%s: content load failed: %v", page, err)
		services.PublishContentLoadFailure(page)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Failed to load data. Please refresh the page.",
		})
		return nil, false
	}
	store.ApplyOverrides(demoStore.Overrides())
	return store, true
}

// filterValue normalizes a query parameter into a filter value; absent or
// empty means "all".
func filterValue(c *gin.Context, name string) string {
	v := c.Query(name)
	if v == "" {
		return services.FilterAll
	}
	return v
}

// lazyImagesEnabled reports whether the gallery should defer image loading
// to the proximity gate. LAZY_IMAGES=off forces the fail-open path where
// every image renders with its real source immediately.
func lazyImagesEnabled() bool {
	return os.Getenv("LAZY_IMAGES") != "off"
}

// ------------------- page handlers -------------------

// Home renders the homepage summaries: the 3 soonest upcoming events and the
// 3 most recent ordinary results.
func Home(c *gin.Context) {
	store, ok := loadStore(c, "home")
	if !ok {
		return
	}

	upcoming := services.RenderEvents(services.UpcomingEvents(store.Events, 3))
	latest := services.RenderResults(services.LatestResults(store.Results, 3))

	logger.Info.Println("Home: rendering homepage")
	services.PublishPageRender("home")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Upcoming":   upcoming,
		"Latest":     latest,
		"DemoActive": demoStore.Active(),
	})
}

// Events renders the events page. The discipline and status query parameters
// seed the active filters; the full pipeline (filter, then default sort) is
// re-run from the unchanged base collection on every request.
func Events(c *gin.Context) {
	store, ok := loadStore(c, "events")
	if !ok {
		return
	}

	filters := services.Filters{
		"discipline": filterValue(c, "discipline"),
		"status":     filterValue(c, "status"),
	}
	events := services.SortEventsDefault(services.FilterEvents(store.Events, filters))
	view := services.RenderEvents(events)

	logger.Info.Printf("Events: rendering %d events (discipline=%s, status=%s)",
		len(view.Items), filters["discipline"], filters["status"])
	services.PublishPageRender("events")
	c.HTML(http.StatusOK, "events.html", gin.H{
		"View":       view,
		"Discipline": filters["discipline"],
		"Status":     filters["status"],
		"DemoActive": demoStore.Active(),
	})
}

// Results renders the results page: national log cards (newest first) above
// the sortable results table. The sort and dir query parameters carry the
// table's active sort state between requests.
func Results(c *gin.Context) {
	store, ok := loadStore(c, "results")
	if !ok {
		return
	}

	filters := services.Filters{"discipline": filterValue(c, "discipline")}
	logs, regular := services.SplitNationalLogs(services.FilterResults(store.Results, filters))

	column := c.DefaultQuery("sort", services.ColumnDate)
	direction := c.Query("dir")
	if column != services.ColumnEvent && column != services.ColumnDate && column != services.ColumnDiscipline {
		column = services.ColumnDate
		direction = services.SortDesc
	}
	if direction == "" {
		// default order: newest first
		if column == services.ColumnDate {
			direction = services.SortDesc
		} else {
			direction = services.SortAsc
		}
	}

	logsView := services.RenderResults(services.SortNationalLogs(logs))
	table := services.RenderResultsTable(
		services.SortResultsTable(regular, column, direction), column, direction)

	logger.Info.Printf("Results: rendering %d rows, %d national logs (sort=%s %s)",
		len(table.Rows), len(logsView.Items), column, direction)
	services.PublishPageRender("results")
	c.HTML(http.StatusOK, "results.html", gin.H{
		"Logs":       logsView,
		"Table":      table,
		"Discipline": filters["discipline"],
		"DemoActive": demoStore.Active(),
	})
}

// Documents renders the documents page with category and discipline filters
// and the default year-then-title ordering.
func Documents(c *gin.Context) {
	store, ok := loadStore(c, "documents")
	if !ok {
		return
	}

	filters := services.Filters{
		"category":   filterValue(c, "category"),
		"discipline": filterValue(c, "discipline"),
	}
	docs := services.SortDocumentsDefault(services.FilterDocuments(store.Documents, filters))
	view := services.RenderDocuments(docs)

	logger.Info.Printf("Documents: rendering %d documents (category=%s, discipline=%s)",
		view.Count, filters["category"], filters["discipline"])
	services.PublishPageRender("documents")
	c.HTML(http.StatusOK, "documents.html", gin.H{
		"View":       view,
		"Category":   filters["category"],
		"Discipline": filters["discipline"],
		"DemoActive": demoStore.Active(),
	})
}

// Gallery renders the gallery grid. Items carry the lazy-gate attributes the
// client needs; when lazy loading is disabled the real sources render
// directly (fail-open, no broken gallery).
func Gallery(c *gin.Context) {
	store, ok := loadStore(c, "gallery")
	if !ok {
		return
	}

	view := services.RenderGallery(store.Images, lazyImagesEnabled())

	logger.Info.Printf("Gallery: rendering %d images (lazy=%t)", len(view.Items), lazyImagesEnabled())
	services.PublishPageRender("gallery")
	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"View":            view,
		"ProximityMargin": services.DefaultProximityMargin,
	})
}

// About renders the static about page.
func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{})
}

// FAQ renders the static FAQ page.
func FAQ(c *gin.Context) {
	c.HTML(http.StatusOK, "faq.html", gin.H{})
}

// EntryFormQR serves a PNG QR code for an event's entry form URL, for
// posters and noticeboards. 404 when the event is unknown or has no form.
func EntryFormQR(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown event")
		return
	}

	store, ok := loadStore(c, "entry-qr")
	if !ok {
		return
	}

	event, found := store.EventByID(id)
	if !found || event.EntryForm == "" {
		logger.Warn.Printf("EntryFormQR: no entry form for event %d", id)
		c.String(http.StatusNotFound, "no entry form for this event")
		return
	}

	png, err := services.GenerateEntryFormQR(event.EntryForm, 300)
	if err != nil {
		logger.Error.Printf("EntryFormQR: QR generation failed for event %d: %v", id, err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"entry-form.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Error.Printf("EntryFormQR: error writing QR bytes: %v", err)
	}
}
