// Package controllers handles the contact form.
// File: controllers/contact_controller.go
package controllers

import (
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"sapf-site/logger"
)

// The contact form validates server-side and relays the submission to an
// external form endpoint (CONTACT_RELAY_URL). No message is stored locally.

var nameRe = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// relayClient posts to the external form endpoint.
var relayClient = &http.Client{Timeout: 10 * time.Second}

// ------------------ field validation ------------------

// ValidateName returns a user-facing error message, or "" when valid.
func ValidateName(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return "Name is required."
	case len(v) < 2:
		return "Name must be at least 2 characters long."
	case len(v) > 100:
		return "Name must be less than 100 characters."
	case !nameRe.MatchString(v):
		return "Name can only contain letters, spaces, hyphens, and apostrophes."
	}
	return ""
}

// ValidateEmail returns a user-facing error message, or "" when valid.
func ValidateEmail(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return "Email is required."
	case !emailRe.MatchString(v):
		return "Please enter a valid email address."
	case len(v) > 254:
		return "Email address is too long."
	}
	return ""
}

// ValidateMessage returns a user-facing error message, or "" when valid.
func ValidateMessage(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return "Message is required."
	case len(v) < 10:
		return "Message must be at least 10 characters long."
	case len(v) > 2000:
		return "Message must be less than 2000 characters."
	}
	return ""
}

// ------------------ handlers ------------------

// ShowContact renders the contact form.
func ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Errors": gin.H{}})
}

// SubmitContact validates the form and relays it to the external endpoint.
// Validation failures re-render the form with per-field messages and the
// submitted values preserved.
func SubmitContact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	errors := gin.H{}
	if msg := ValidateName(name); msg != "" {
		errors["Name"] = msg
	}
	if msg := ValidateEmail(email); msg != "" {
		errors["Email"] = msg
	}
	if msg := ValidateMessage(message); msg != "" {
		errors["Message"] = msg
	}

	if len(errors) > 0 {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"Errors":  errors,
			"Name":    name,
			"Email":   email,
			"Message": message,
			"Flash":   "Please correct the errors in the form before submitting.",
		})
		return
	}

	relayURL := os.Getenv("CONTACT_RELAY_URL")
	if relayURL == "" {
		logger.Warn.Println("SubmitContact: CONTACT_RELAY_URL not configured, dropping submission")
		c.HTML(http.StatusServiceUnavailable, "contact.html", gin.H{
			"Errors":  gin.H{},
			"Name":    name,
			"Email":   email,
			"Message": message,
			"Flash":   "The contact form is not available right now. Please try again later.",
		})
		return
	}

	form := url.Values{
		"name":    {name},
		"email":   {email},
		"message": {message},
	}
	req, err := http.NewRequest(http.MethodPost, relayURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error.Printf("SubmitContact: building relay request failed: %v", err)
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"Errors": gin.H{},
			"Flash":  "There was an error sending your message. Please try again later.",
		})
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := relayClient.Do(req)
	if err != nil {
		logger.Error.Printf("SubmitContact: relay request failed: %v", err)
		c.HTML(http.StatusBadGateway, "contact.html", gin.H{
			"Errors":  gin.H{},
			"Name":    name,
			"Email":   email,
			"Message": message,
			"Flash":   "There was a network error. Please check your connection and try again.",
		})
		return
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn.Printf("SubmitContact: error closing relay response: %v", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error.Printf("SubmitContact: relay returned status %d", resp.StatusCode)
		c.HTML(http.StatusBadGateway, "contact.html", gin.H{
			"Errors":  gin.H{},
			"Name":    name,
			"Email":   email,
			"Message": message,
			"Flash":   "There was an error sending your message. Please try again later.",
		})
		return
	}

	logger.Info.Println("SubmitContact: message relayed successfully")
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Errors":  gin.H{},
		"Success": true,
		"Flash":   "Thank you! Your message has been sent successfully. We will get back to you soon.",
	})
}
