package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	Addr       = ":8080"
	ContentDir = "./content"

	// Roots inside the content tree.
	PagesRoot     = "pages"
	TemplatesRoot = "templates"
	StaticRoot    = "static"

	// Fallback preview image when a page preview references none.
	PlaceholderImage = "/static/placeholder.png"

	// WatchContent enables the fsnotify reload signal on the content tree.
	WatchContent = false

	SessionSecret = "nanopage-dev-secret"

	// AdminPasswordHash is a bcrypt hash. Privileged login is disabled when empty.
	AdminPasswordHash = ""
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Addr = getEnv("ADDR", ":8080")
	ContentDir = getEnv("CONTENT_DIR", "./content")

	PagesRoot = getEnv("PAGES_ROOT", "pages")
	TemplatesRoot = getEnv("TEMPLATES_ROOT", "templates")
	StaticRoot = getEnv("STATIC_ROOT", "static")

	PlaceholderImage = getEnv("PLACEHOLDER_IMAGE", "/static/placeholder.png")

	if v := os.Getenv("WATCH_CONTENT"); v == "1" || v == "true" {
		WatchContent = true
	}

	SessionSecret = getEnv("SESSION_SECRET", "nanopage-dev-secret")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
}
