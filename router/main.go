package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/openmario/api/config"
	"github.com/openmario/api/database"
	"github.com/openmario/api/graph"
	"github.com/openmario/api/handlers"
	autocomplete_handlers "github.com/openmario/api/handlers/autocomplete"
	course_handlers "github.com/openmario/api/handlers/course"
	"github.com/openmario/api/services"
	"github.com/openmario/api/utils/cache"
	"github.com/openmario/api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, graphStore *graph.Store, redisCache *cache.RedisCache) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load configuration")
	}

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize services
	cacheTTL := time.Duration(getEnv.REQUISITES_CACHE_TTL_MINUTES) * time.Minute
	// A nil *RedisCache must stay a nil interface, or the resolver's
	// nil check would pass and calls would hit a nil client
	var requisitesCache services.RequisitesCache
	if redisCache != nil {
		requisitesCache = redisCache
	}
	requisitesService := services.NewRequisitesService(graphStore, requisitesCache, cacheTTL)
	courseService := services.NewCourseService(graphStore)
	autocompleteService := services.NewAutocompleteService(db)

	// Initialize handlers
	courseHandler := course_handlers.NewCourseHandler(requisitesService, courseService)
	autocompleteHandler := autocomplete_handlers.NewAutocompleteHandler(autocompleteService)
	healthHandler := handlers.NewHealthHandler(store, graphStore, redisCache)

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", healthHandler.Ping)

	// Courses routes (public: the catalog is readable without auth)
	courses := app.Group("/courses")
	courses.Get("/prereqs/:course_id", courseHandler.GetRequisites)           // Grouped prerequisites + corequisites
	courses.Get("/availabilities/:course_id", courseHandler.GetAvailabilities) // Sections across terms
	courses.Get("/:course_id", courseHandler.GetCourse)                       // Full course attributes

	// Autocomplete routes (public)
	autocomplete := app.Group("/autocomplete")
	autocomplete.Get("/company", autocompleteHandler.SearchCompanies)
	autocomplete.Get("/position", autocompleteHandler.SearchPositions)
	autocomplete.Get("/location", autocompleteHandler.SearchLocations)
}
