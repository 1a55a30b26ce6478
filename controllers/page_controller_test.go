// controllers/page_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHealth tests the Health function
func TestHealth(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/health", Health)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

// TestHome_RendersSummaries tests the homepage with valid content
func TestHome_RendersSummaries(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/", Home)

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home")
}

// TestHome_ContentLoadFailure tests the single page-level error view
func TestHome_ContentLoadFailure(t *testing.T) {
	brokenContentSources(t)
	router := setupTestRouter(t)
	router.GET("/", Home)

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load data. Please refresh the page.")
}

// TestEvents_RendersWithFilters tests the events page with query filters
func TestEvents_RendersWithFilters(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/events", Events)

	req, _ := http.NewRequest("GET", "/events?discipline=ISSF&status=upcoming", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestResults_RendersTable tests the results page with sort parameters
func TestResults_RendersTable(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/results", Results)

	for _, query := range []string{"", "?sort=event&dir=asc", "?sort=bogus", "?discipline=ISSF"} {
		req, _ := http.NewRequest("GET", "/results"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "query %q", query)
	}
}

// TestDocuments_Renders tests the documents page
func TestDocuments_Renders(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/documents", Documents)

	req, _ := http.NewRequest("GET", "/documents?category=Rulebook", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestGallery_Renders tests the gallery page
func TestGallery_Renders(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/gallery", Gallery)

	req, _ := http.NewRequest("GET", "/gallery", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestEntryFormQR_ServesPNG tests QR generation for an event with a form
func TestEntryFormQR_ServesPNG(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/events/:id/entry-qr", EntryFormQR)

	req, _ := http.NewRequest("GET", "/events/1/entry-qr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

// TestEntryFormQR_NotFound tests missing events and events without a form
func TestEntryFormQR_NotFound(t *testing.T) {
	setupContentSources(t)
	router := setupTestRouter(t)
	router.GET("/events/:id/entry-qr", EntryFormQR)

	for _, path := range []string{"/events/99/entry-qr", "/events/2/entry-qr", "/events/abc/entry-qr"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)
	}
}
