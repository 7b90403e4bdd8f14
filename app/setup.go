package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/openmario/api/api"
	"github.com/openmario/api/config"
	"github.com/openmario/api/database"
	"github.com/openmario/api/graph"
	"github.com/openmario/api/router"
	"github.com/openmario/api/services/cron"
	"github.com/openmario/api/utils/cache"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Connect to the graph store; the readiness check runs here, before
	// the server accepts any traffic
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	graphStore, err := graph.Connect(ctx, graph.Config{
		URI:      getEnv.NEO4J_URI,
		Username: getEnv.NEO4J_USERNAME,
		Password: getEnv.NEO4J_PASSWORD,
		Database: getEnv.NEO4J_DATABASE,
	})
	cancel()
	if err != nil {
		print("Check whether Neo4j is running or not\n")
		return err
	}

	// Initialize Redis cache; the API works without it, reads just skip
	// the cache
	var redisCache *cache.RedisCache
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err = cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Requisite caching will be disabled.", err)
		redisCache = nil
	}

	// Initialize Cron Manager (only if enabled via configuration)
	var cronManager *cron.CronManager
	if getEnv.CRON_ENABLED {
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			cronManager = cron.NewCronManager(db, graphStore, redisCache)
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer closing stores and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		graphStore.Close(closeCtx)
		closeCancel()
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (middleware is attached inside)
	router.SetupRoutes(app, store, graphStore, redisCache)

	// Get the PORT & Start the Server
	return server.Run()
}
