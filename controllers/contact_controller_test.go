// controllers/contact_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	assert.Equal(t, "Name is required.", ValidateName(""))
	assert.Equal(t, "Name is required.", ValidateName("   "))
	assert.NotEmpty(t, ValidateName("A"))
	assert.NotEmpty(t, ValidateName("Jane123"))
	assert.NotEmpty(t, ValidateName(strings.Repeat("a", 101)))
	assert.Empty(t, ValidateName("Anne-Marie O'Neill"))
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "Email is required.", ValidateEmail(""))
	assert.NotEmpty(t, ValidateEmail("not-an-email"))
	assert.NotEmpty(t, ValidateEmail("a@b"))
	assert.NotEmpty(t, ValidateEmail(strings.Repeat("a", 250)+"@b.co"))
	assert.Empty(t, ValidateEmail("shooter@example.org"))
}

func TestValidateMessage(t *testing.T) {
	assert.Equal(t, "Message is required.", ValidateMessage(""))
	assert.NotEmpty(t, ValidateMessage("too short"))
	assert.NotEmpty(t, ValidateMessage(strings.Repeat("a", 2001)))
	assert.Empty(t, ValidateMessage("A perfectly reasonable enquiry."))
}

func submitContact(router http.Handler, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validContactForm() url.Values {
	return url.Values{
		"name":    {"Jane Shooter"},
		"email":   {"jane@example.org"},
		"message": {"I would like to enter the provincial championships."},
	}
}

// TestSubmitContact_ValidationErrors re-renders the form with messages
func TestSubmitContact_ValidationErrors(t *testing.T) {
	router := setupTestRouter(t)
	router.POST("/contact", SubmitContact)

	w := submitContact(router, url.Values{"name": {"J"}, "email": {"bad"}, "message": {"hi"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please correct the errors in the form before submitting.")
}

// TestSubmitContact_NoRelayConfigured degrades to a 503
func TestSubmitContact_NoRelayConfigured(t *testing.T) {
	t.Setenv("CONTACT_RELAY_URL", "")
	router := setupTestRouter(t)
	router.POST("/contact", SubmitContact)

	w := submitContact(router, validContactForm())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// TestSubmitContact_RelaySuccess forwards the submission and confirms
func TestSubmitContact_RelaySuccess(t *testing.T) {
	var got url.Values
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		got = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer relay.Close()
	t.Setenv("CONTACT_RELAY_URL", relay.URL)

	router := setupTestRouter(t)
	router.POST("/contact", SubmitContact)

	w := submitContact(router, validContactForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you!")
	assert.Equal(t, "Jane Shooter", got.Get("name"))
	assert.Equal(t, "jane@example.org", got.Get("email"))
}

// TestSubmitContact_RelayFailure surfaces an upstream error as a 502
func TestSubmitContact_RelayFailure(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer relay.Close()
	t.Setenv("CONTACT_RELAY_URL", relay.URL)

	router := setupTestRouter(t)
	router.POST("/contact", SubmitContact)

	w := submitContact(router, validContactForm())
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// TestShowContact renders the empty form
func TestShowContact(t *testing.T) {
	router := setupTestRouter(t)
	router.GET("/contact", ShowContact)

	req, _ := http.NewRequest("GET", "/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
