// main.go
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"sapf-site/controllers"
	"sapf-site/logger"
	"sapf-site/middleware"
	"sapf-site/services"
)

func main() {
	// Load .env if present; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("main: no .env file loaded")
	}

	appEnv := os.Getenv("APP_ENV")
	logger.SetLogLevel(appEnv)
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the router
	router := gin.Default()

	// Health checks
	router.GET("/health", controllers.Health)

	// Wire the content sources: local data dir or S3 bucket, plus the demo
	// override store.
	controllers.SetContentSources(
		services.NewFetcherFromEnv(),
		services.NewDemoStore(os.Getenv("DEMO_STORE_DIR")),
	)

	// Demo admin password. ADMIN_PASSWORD_HASH should hold a bcrypt hash; for
	// local demos a plain ADMIN_PASSWORD is hashed at startup.
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		controllers.SetAdminPasswordHash(hash)
	} else if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error.Fatalf("main: failed to hash admin password: %v", err)
		}
		logger.Warn.Println("main: using plain ADMIN_PASSWORD from environment; set ADMIN_PASSWORD_HASH instead")
		controllers.SetAdminPasswordHash(string(hashed))
	} else {
		logger.Warn.Println("main: no admin password configured; demo admin login is disabled")
	}

	// Initialize session store for the demo admin gate
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "sapf-demo-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		Secure:   appEnv == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("sapfsession", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	templatesDir := filepath.Join(basepath, "templates", "*.html")

	// Load HTML templates
	router.LoadHTMLGlob(templatesDir)

	// Serve static files under /static
	router.Static("/static", "./static")

	// Public pages
	router.GET("/", controllers.Home)
	router.GET("/events", controllers.Events)
	router.GET("/events/:id/entry-qr", controllers.EntryFormQR)
	router.GET("/results", controllers.Results)
	router.GET("/documents", controllers.Documents)
	router.GET("/gallery", controllers.Gallery)
	router.GET("/about", controllers.About)
	router.GET("/faq", controllers.FAQ)
	router.GET("/contact", controllers.ShowContact)
	router.POST("/contact", controllers.SubmitContact)

	// Demo admin routes
	router.GET("/admin/login", controllers.ShowAdminLogin)
	router.POST("/admin/login", controllers.PerformAdminLogin)
	router.GET("/admin/logout", controllers.AdminLogout)

	admin := router.Group("/admin", middleware.DemoAdminRequired())
	{
		admin.GET("", controllers.ShowAdminForm)
		admin.POST("/content", controllers.CreateContent)
		admin.POST("/reset", controllers.ResetDemo)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	if err := router.Run(":" + port); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}
