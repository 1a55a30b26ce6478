// Package middleware provides request filters and security checks for the application.
// File: middleware/demo_admin.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"sapf-site/logger"
)

// -------------- demo admin middleware --------------

// DemoAdminRequired ensures the demo admin has logged in before reaching the
// admin form. How it works:
// - Retrieves the session from the request context.
// - Checks the "demoAdmin" session flag.
// - If the flag is missing, redirects to /admin/login and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	admin := router.Group("/admin", middleware.DemoAdminRequired())
func DemoAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		isAdmin, ok := session.Get("demoAdmin").(bool)

		if !ok || !isAdmin {
			logger.Warn.Println("DemoAdminRequired: unauthenticated admin request blocked")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		logger.Debug.Println("DemoAdminRequired: session OK, continuing request")
		c.Next()
	}
}
