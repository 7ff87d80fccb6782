package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"nanopage/pkg/config"
	"nanopage/pkg/handlers"
	"nanopage/pkg/services"
)

func main() {
	// Initialize config
	config.Init()

	// Load the content tree once at startup; a read failure here means a
	// corrupted deployment and is fatal.
	store := services.NewStore(config.ContentDir)
	fsys, err := store.FS()
	if err != nil {
		log.Fatalf("Error loading content tree: %v", err)
	}
	log.Printf("Loaded %d files from %s", len(fsys.Entries()), config.ContentDir)

	if config.WatchContent {
		watcher, err := services.Watch(config.ContentDir, store)
		if err != nil {
			log.Fatalf("Error watching content tree: %v", err)
		}
		defer watcher.Close()
	}

	h := handlers.New(store, services.NewRenderer())

	r := gin.Default()

	// Session Setup
	cookies := cookie.NewStore([]byte(config.SessionSecret))
	r.Use(sessions.Sessions("nanopage", cookies))

	// --- Auth Routes ---
	r.GET("/login", handlers.LoginPage)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// --- Content Routes ---
	r.GET("/", h.Home)
	r.GET("/page/:slug", h.ShowPage)
	r.GET("/api/pages", h.ListPages)
	r.GET("/"+config.StaticRoot+"/*filepath", h.ServeFile)
	r.GET("/"+config.PagesRoot+"/*filepath", h.ServeFile)

	r.Run(config.Addr)
}
