// Package controllers handles the demo admin flow.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"sapf-site/logger"
	"sapf-site/models"
	"sapf-site/services"
)

// The admin demo simulates content uploads against the demo override store
// in lieu of a real backend. Additions get identifier max(existing)+1 and
// the whole resulting collection is persisted as an override.

var adminPasswordHash string

// SetAdminPasswordHash configures the bcrypt hash the demo login checks.
func SetAdminPasswordHash(hash string) {
	adminPasswordHash = hash
}

// ComparePasswords checks if the given password matches the hashed password.
func ComparePasswords(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

// ------------------ login handling ------------------

// ShowAdminLogin renders the demo admin login form.
func ShowAdminLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// PerformAdminLogin checks the demo password and flags the session.
func PerformAdminLogin(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Error": "Please enter the demo password.",
		})
		return
	}

	if adminPasswordHash == "" || !ComparePasswords(adminPasswordHash, password) {
		logger.Warn.Println("PerformAdminLogin: invalid demo password attempt")
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error": "Invalid password.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("demoAdmin", true)
	if err := session.Save(); err != nil {
		logger.Error.Println("PerformAdminLogin: failed to save session:", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"Error": "Internal error, please try again.",
		})
		return
	}

	logger.Info.Println("PerformAdminLogin: demo admin logged in")
	c.Redirect(http.StatusFound, "/admin")
}

// AdminLogout clears the demo admin session.
func AdminLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("AdminLogout: error saving session: %v", err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// ------------------ admin form ------------------

// ShowAdminForm renders the demo upload form. Documents are loaded so the
// PDF dropdowns can offer existing document URLs.
func ShowAdminForm(c *gin.Context) {
	store, ok := loadStore(c, "admin")
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Documents":  services.RenderDocuments(services.SortDocumentsDefault(store.Documents)),
		"DemoActive": demoStore.Active(),
		"Saved":      c.Query("saved"),
	})
}

// CreateContent validates the submitted record, appends it to the effective
// collection with identifier max(existing)+1, and persists the whole
// collection back to the demo store.
func CreateContent(c *gin.Context) {
	store, ok := loadStore(c, "admin")
	if !ok {
		return
	}

	contentType := c.PostForm("contentType")
	var err error
	switch contentType {
	case "event":
		err = createEvent(c, store)
	case "result":
		err = createResult(c, store)
	case "entry-form":
		err = createEntryFormDocument(c, store)
	default:
		err = errInvalid("Please choose a content type.")
	}

	if err != nil {
		logger.Warn.Printf("CreateContent: rejected %s submission: %v", contentType, err)
		c.HTML(http.StatusBadRequest, "admin.html", gin.H{
			"Documents":  services.RenderDocuments(services.SortDocumentsDefault(store.Documents)),
			"DemoActive": demoStore.Active(),
			"Error":      err.Error(),
		})
		return
	}

	logger.Info.Printf("CreateContent: %s saved to demo store", contentType)
	c.Redirect(http.StatusFound, "/admin?saved="+contentType)
}

// ResetDemo clears every demo override and the demo-active flag.
func ResetDemo(c *gin.Context) {
	if err := demoStore.Reset(); err != nil {
		logger.Error.Printf("ResetDemo: failed to clear demo store: %v", err)
		c.String(http.StatusInternalServerError, "Failed to reset demo data")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// ------------------ per-type creation ------------------

// errInvalid wraps a user-facing validation message.
type errInvalid string

func (e errInvalid) Error() string { return string(e) }

// requireFields checks that every named form field is non-empty.
func requireFields(c *gin.Context, names ...string) error {
	for _, name := range names {
		if strings.TrimSpace(c.PostForm(name)) == "" {
			return errInvalid("Please fill in all required fields.")
		}
	}
	return nil
}

// requireDate checks the field holds a parseable calendar date.
func requireDate(c *gin.Context, name string) error {
	if _, err := time.Parse("2006-01-02", c.PostForm(name)); err != nil {
		return errInvalid("Please enter a valid date (YYYY-MM-DD).")
	}
	return nil
}

func createEvent(c *gin.Context, store *services.ContentStore) error {
	if err := requireFields(c, "event-title", "event-location", "event-date", "event-discipline", "event-status"); err != nil {
		return err
	}
	if err := requireDate(c, "event-date"); err != nil {
		return err
	}

	event := models.Event{
		ID:         models.NextEventID(store.Events),
		Title:      c.PostForm("event-title"),
		Location:   c.PostForm("event-location"),
		Date:       c.PostForm("event-date"),
		Discipline: c.PostForm("event-discipline"),
		Status:     c.PostForm("event-status"),
		EntryForm:  c.PostForm("event-entry-form"),
	}
	return demoStore.SaveEvents(append(store.Events, event))
}

func createResult(c *gin.Context, store *services.ContentStore) error {
	if err := requireFields(c, "result-event", "result-date", "result-discipline", "result-type"); err != nil {
		return err
	}
	if err := requireDate(c, "result-date"); err != nil {
		return err
	}

	result := models.Result{
		ID:          models.NextResultID(store.Results),
		Event:       c.PostForm("result-event"),
		Date:        c.PostForm("result-date"),
		Discipline:  c.PostForm("result-discipline"),
		Type:        c.PostForm("result-type"),
		PDF:         c.PostForm("result-pdf"),
		NationalLog: c.PostForm("result-national-log") == "on",
	}
	return demoStore.SaveResults(append(store.Results, result))
}

func createEntryFormDocument(c *gin.Context, store *services.ContentStore) error {
	if err := requireFields(c, "doc-title", "doc-discipline", "doc-year", "doc-pdf"); err != nil {
		return err
	}
	year, err := strconv.Atoi(c.PostForm("doc-year"))
	if err != nil {
		return errInvalid("Please enter a valid year.")
	}

	doc := models.Document{
		ID:          models.NextDocumentID(store.Documents),
		Title:       c.PostForm("doc-title"),
		Category:    models.CategoryEntryForm,
		Discipline:  c.PostForm("doc-discipline"),
		Year:        year,
		URL:         c.PostForm("doc-pdf"),
		Description: c.PostForm("doc-description"),
	}
	return demoStore.SaveDocuments(append(store.Documents, doc))
}
