package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zillion-dines/menu-generator/internal/export"
	"github.com/zillion-dines/menu-generator/internal/extract"
	"github.com/zillion-dines/menu-generator/internal/menu"
	"github.com/zillion-dines/menu-generator/internal/middleware"
	"github.com/zillion-dines/menu-generator/internal/session"
	"github.com/zillion-dines/menu-generator/internal/upload"
)

// New wires every pipeline command onto one engine. Each stage
// (upload, select, extract, edit, export) is a discrete route
// operating on the session named in the path.
func New(
	store *session.Store,
	uploadService *upload.Service,
	extractService *extract.Service,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	sessionHandler := session.NewHandler(store)
	uploadHandler := upload.NewHandler(uploadService)
	extractHandler := extract.NewHandler(extractService)
	menuHandler := menu.NewHandler(store)
	exportHandler := export.NewHandler(store)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/sessions", sessionHandler.Create)

	sessions := r.Group("/sessions/:id")
	sessions.Use(middleware.APIKey())
	{
		sessions.DELETE("", sessionHandler.Delete)
		sessions.POST("/reset", sessionHandler.Reset)

		sessions.POST("/uploads", uploadHandler.Upload)

		sessions.GET("/images", sessionHandler.ListImages)
		sessions.GET("/images/:imageID", sessionHandler.GetImage)
		sessions.PUT("/selection", sessionHandler.SetSelection)

		sessions.POST("/extract", extractHandler.Extract)

		sessions.GET("/items", menuHandler.List)
		sessions.PATCH("/items/:index", menuHandler.Edit)

		sessions.GET("/export", exportHandler.Export)
	}

	return r
}
