package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/openmario/api/database"
	"github.com/openmario/api/graph"
	"github.com/openmario/api/utils/cache"
)

// HealthHandler reports liveness of the API and its dependencies
type HealthHandler struct {
	store      database.Storage
	graphStore *graph.Store
	cache      *cache.RedisCache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Storage, graphStore *graph.Store, redisCache *cache.RedisCache) *HealthHandler {
	return &HealthHandler{
		store:      store,
		graphStore: graphStore,
		cache:      redisCache,
	}
}

// Ping handles GET /ping
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	deps := fiber.Map{
		"database": statusOf(h.store.HealthCheck()),
		"graph":    statusOf(h.graphStore.HealthCheck(c.UserContext())),
		"cache":    cacheStatus(c.UserContext(), h.cache),
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"services": deps,
	})
}

func statusOf(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

func cacheStatus(ctx context.Context, redisCache *cache.RedisCache) string {
	if redisCache == nil {
		return "disabled"
	}
	if err := redisCache.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
