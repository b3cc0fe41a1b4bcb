package handlers

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/utils/cache"
	"eduportal/utils/response"
)

// HealthChecker is the database-side health probe.
type HealthChecker interface {
	HealthCheck() error
}

// HealthHandler reports liveness of the service and its backends.
type HealthHandler struct {
	db    HealthChecker
	redis *cache.RedisCache
}

func NewHealthHandler(db HealthChecker, redis *cache.RedisCache) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Ping reports overall service health.
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}

	healthy := true
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			status["database"] = "unavailable"
			healthy = false
		}
	}
	if h.redis != nil && !h.redis.Healthy(c.Context()) {
		status["redis"] = "unavailable"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		return response.ServiceUnavailable(c, "one or more backends unavailable")
	}
	return response.Success(c, status)
}
