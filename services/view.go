// Package services: services/view.go
package services

import (
	"fmt"

	"sapf-site/models"
)

// The view layer maps final (filtered, sorted) collections to display-ready
// records plus a binary empty/non-empty state. Records carry derived fields
// only; free text stays plain and is escaped by html/template at emit time,
// so a title or description is never interpreted as markup.

// ------------------- badge and icon classification -------------------

// BadgeClass buckets a discipline into a badge style: ISSF gets its own
// class, everything else renders with the npa class.
func BadgeClass(discipline string) string {
	if discipline == models.DisciplineISSF {
		return "issf"
	}
	return "npa"
}

// DocumentBadgeClass is the three-way variant used on document cards.
func DocumentBadgeClass(discipline string) string {
	switch discipline {
	case models.DisciplineISSF:
		return "issf"
	case models.DisciplineNPA:
		return "npa"
	default:
		return "general"
	}
}

// categoryIcons is the fixed category-to-icon lookup table.
var categoryIcons = map[string]string{
	models.CategoryRulebook:  "\U0001F4D6", // open book
	models.CategoryEntryForm: "\U0001F4DD", // memo
	models.CategoryResults:   "\U0001F4CA", // bar chart
	models.CategoryLogs:      "\U0001F4CB", // clipboard
}

// defaultCategoryIcon is used for unrecognized categories.
const defaultCategoryIcon = "\U0001F4C4" // page

// CategoryIcon returns the display icon for a document category.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultCategoryIcon
}

// ------------------- date formatting -------------------

// formatFullDate renders "January 2, 2006". An unparseable date falls back
// to the raw string rather than erroring.
func formatFullDate(date string) string {
	t := parseDate(date)
	if t.IsZero() {
		return date
	}
	return t.Format("January 2, 2006")
}

// formatShortDate renders "Jan 2, 2006", the results table format.
func formatShortDate(date string) string {
	t := parseDate(date)
	if t.IsZero() {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// ------------------- event cards -------------------

// EventCard is the presentational record for one event.
type EventCard struct {
	ID          int
	Title       string
	Location    string
	Day         string
	Month       string
	Year        string
	FullDate    string
	Status      string
	StatusLabel string
	Discipline  string
	BadgeClass  string
	EntryForm   string
	Results     string
	HasEntry    bool
	HasResults  bool
}

// EventsView is the render result for an event list.
type EventsView struct {
	Items []EventCard
	Empty bool
}

// RenderEvents maps an ordered event sequence to its view. An empty input
// yields Empty=true and no items; callers show empty-state messaging instead.
func RenderEvents(events []models.Event) EventsView {
	view := EventsView{Empty: len(events) == 0}
	for _, e := range events {
		card := EventCard{
			ID:         e.ID,
			Title:      e.Title,
			Location:   e.Location,
			FullDate:   formatFullDate(e.Date),
			Status:     e.Status,
			Discipline: e.Discipline,
			BadgeClass: BadgeClass(e.Discipline),
			EntryForm:  e.EntryForm,
			Results:    e.Results,
			HasEntry:   e.EntryForm != "",
			HasResults: e.Results != "",
		}
		if t := parseDate(e.Date); !t.IsZero() {
			card.Day = fmt.Sprintf("%d", t.Day())
			card.Month = t.Format("Jan")
			card.Year = fmt.Sprintf("%d", t.Year())
		}
		switch e.Status {
		case models.StatusUpcoming:
			card.StatusLabel = "Upcoming"
		case models.StatusCompleted:
			card.StatusLabel = "Completed"
		}
		view.Items = append(view.Items, card)
	}
	return view
}

// ------------------- result cards and table rows -------------------

// ResultCard is the presentational record for a result or national log card.
type ResultCard struct {
	ID         int
	Event      string
	Date       string
	FullDate   string
	Type       string
	Discipline string
	BadgeClass string
	PDF        string
	HasPDF     bool
}

// ResultsView is the render result for a result card list.
type ResultsView struct {
	Items []ResultCard
	Empty bool
}

// RenderResults maps an ordered result sequence to its card view.
func RenderResults(results []models.Result) ResultsView {
	view := ResultsView{Empty: len(results) == 0}
	for _, r := range results {
		view.Items = append(view.Items, ResultCard{
			ID:         r.ID,
			Event:      r.Event,
			Date:       r.Date,
			FullDate:   formatFullDate(r.Date),
			Type:       r.Type,
			Discipline: r.Discipline,
			BadgeClass: BadgeClass(r.Discipline),
			PDF:        r.PDF,
			HasPDF:     r.PDF != "",
		})
	}
	return view
}

// ResultRow is the presentational record for one results table row.
type ResultRow struct {
	ID         int
	Event      string
	Type       string
	ShowType   bool
	Date       string
	ShortDate  string
	Discipline string
	BadgeClass string
	PDF        string
	HasPDF     bool
}

// ResultsTableView is the render result for the sortable results table.
type ResultsTableView struct {
	Rows  []ResultRow
	Empty bool
	// Active sort state and the direction each header link should request.
	SortColumn    string
	SortDirection string
	EventDir      string
	DateDir       string
	DisciplineDir string
}

// RenderResultsTable maps an ordered result sequence to table rows and
// computes the header link directions from the active sort state.
func RenderResultsTable(results []models.Result, column, direction string) ResultsTableView {
	view := ResultsTableView{
		Empty:         len(results) == 0,
		SortColumn:    column,
		SortDirection: direction,
		EventDir:      NextDirection(column, direction, ColumnEvent),
		DateDir:       NextDirection(column, direction, ColumnDate),
		DisciplineDir: NextDirection(column, direction, ColumnDiscipline),
	}
	for _, r := range results {
		view.Rows = append(view.Rows, ResultRow{
			ID:         r.ID,
			Event:      r.Event,
			Type:       r.Type,
			ShowType:   r.Type != "" && r.Type != "National Log",
			Date:       r.Date,
			ShortDate:  formatShortDate(r.Date),
			Discipline: r.Discipline,
			BadgeClass: BadgeClass(r.Discipline),
			PDF:        r.PDF,
			HasPDF:     r.PDF != "",
		})
	}
	return view
}

// ------------------- document cards -------------------

// DocumentCard is the presentational record for one document.
type DocumentCard struct {
	ID             int
	Title          string
	Category       string
	Icon           string
	Discipline     string
	BadgeClass     string
	Year           int
	URL            string
	Description    string
	HasDescription bool
}

// DocumentsView is the render result for a document list, including the
// count line shown above the grid.
type DocumentsView struct {
	Items     []DocumentCard
	Empty     bool
	Count     int
	CountText string
}

// RenderDocuments maps an ordered document sequence to its view.
func RenderDocuments(docs []models.Document) DocumentsView {
	view := DocumentsView{
		Empty: len(docs) == 0,
		Count: len(docs),
	}
	if view.Count == 1 {
		view.CountText = "1 document found"
	} else {
		view.CountText = fmt.Sprintf("%d documents found", view.Count)
	}
	for _, d := range docs {
		view.Items = append(view.Items, DocumentCard{
			ID:             d.ID,
			Title:          d.Title,
			Category:       d.Category,
			Icon:           CategoryIcon(d.Category),
			Discipline:     d.Discipline,
			BadgeClass:     DocumentBadgeClass(d.Discipline),
			Year:           d.Year,
			URL:            d.URL,
			Description:    d.Description,
			HasDescription: d.Description != "",
		})
	}
	return view
}
