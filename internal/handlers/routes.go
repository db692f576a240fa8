package handlers

import (
	"time"

	"github.com/developia-II/catalog-api/internal/middleware"
	"github.com/developia-II/catalog-api/internal/services/catalog"
	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Dependencies struct {
	Catalog     *catalog.Service
	Tokens      *utils.TokenService
	Collections CollectionLister
	// Uploader may be nil; the upload route then answers 503.
	Uploader       ImageUploader
	AllowedOrigins []string
	RequestTimeout time.Duration
	DebugRoutes    bool
}

// NewRouter builds the engine with recovery, request logging and CORS in
// front of the catalog routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), cors.New(corsConfig(deps.AllowedOrigins)))
	SetupRoutes(router, deps)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	logrus.Info("Setting up routes...")

	systemHandler := NewSystemHandler(deps.Collections, deps.Tokens)
	categoryHandler := NewCategoryHandler(deps.Catalog, deps.RequestTimeout)
	subcategoryHandler := NewSubcategoryHandler(deps.Catalog, deps.RequestTimeout)
	uploadHandler := NewUploadHandler(deps.Uploader)

	router.GET("/", systemHandler.Root)
	router.GET("/health", systemHandler.Health)
	router.GET("/db/collections", systemHandler.Collections)
	if deps.DebugRoutes {
		logrus.Warn("debug routes enabled - /debug/token issues tokens to anyone")
		router.GET("/debug/token", systemHandler.DebugToken)
	}

	// Public Routes
	router.GET("/categories", categoryHandler.GetAllCategories)
	router.GET("/categories/:id", categoryHandler.GetCategoryById)
	router.GET("/subcategories", subcategoryHandler.GetAllSubcategories)
	router.GET("/subcategories/:id", subcategoryHandler.GetSubcategoryById)

	// Protected Routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		categories := protected.Group("/categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		subcategories := protected.Group("/subcategories")
		{
			subcategories.POST("", subcategoryHandler.CreateSubcategory)
			subcategories.PUT("/:id", subcategoryHandler.UpdateSubcategory)
			subcategories.DELETE("/:id", subcategoryHandler.DeleteSubcategory)
		}

		protected.POST("/uploads", uploadHandler.UploadImage)
	}
}
