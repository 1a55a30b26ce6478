// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"sapf-site/services"
)

// setupTestRouter creates a Gin engine with session middleware and minimal
// HTML templates so handlers can render without the real template tree.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"index.html":       `<html><body>home</body></html>`,
		"events.html":      `<html><body>events</body></html>`,
		"results.html":     `<html><body>results</body></html>`,
		"documents.html":   `<html><body>documents</body></html>`,
		"gallery.html":     `<html><body>gallery</body></html>`,
		"about.html":       `<html><body>about</body></html>`,
		"faq.html":         `<html><body>faq</body></html>`,
		"contact.html":     `<html><body>contact {{.Flash}}</body></html>`,
		"error.html":       `<html><body>{{.Message}}</body></html>`,
		"admin_login.html": `<html><body>login {{.Error}}</body></html>`,
		"admin.html":       `<html><body>admin {{.Error}}</body></html>`,
	}

	for name, content := range templates {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// setupContentSources points the controllers at a temp data directory with a
// small valid content set and a fresh demo store, returning the store so
// tests can inspect it.
func setupContentSources(t *testing.T) *services.DemoStore {
	dataDir := t.TempDir()
	files := map[string]string{
		"events.json": `{"events":[
			{"id":1,"date":"2026-03-14","title":"Nationals","location":"Pretoria","discipline":"ISSF","entryForm":"https://example.org/entry.pdf","status":"upcoming"},
			{"id":2,"date":"2025-11-15","title":"League Final","location":"Stellenbosch","discipline":"NPA/PPC","status":"completed"}]}`,
		"results.json": `{"results":[
			{"id":1,"event":"Nationals","date":"2025-09-06","discipline":"ISSF","type":"Final Results","pdf":"/r.pdf","nationalLog":false},
			{"id":2,"event":"ISSF National Log","date":"2025-12-31","discipline":"ISSF","type":"National Log","pdf":"/l.pdf","nationalLog":true}]}`,
		"documents.json": `{"documents":[
			{"id":1,"title":"ISSF Rulebook","category":"Rulebook","discipline":"ISSF","year":2025,"url":"/rules.pdf"}]}`,
		"gallery.json": `{"images":[{"src":"/img/a.jpg","alt":"A"}]}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	demo := services.NewDemoStore(t.TempDir())
	SetContentSources(services.FileFetcher{Dir: dataDir}, demo)
	return demo
}

// brokenContentSources points the controllers at an empty data directory so
// every content load fails.
func brokenContentSources(t *testing.T) {
	SetContentSources(services.FileFetcher{Dir: t.TempDir()}, services.NewDemoStore(t.TempDir()))
}

// adminLoginCookie configures the demo password, performs a login and returns
// the session cookie for authenticated requests.
func adminLoginCookie(t *testing.T, router *gin.Engine) *http.Cookie {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	SetAdminPasswordHash(string(hash))

	form := url.Values{"password": {"letmein"}}
	req, _ := http.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Login failed with status %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	t.Fatal("Session cookie not found after login")
	return nil
}
