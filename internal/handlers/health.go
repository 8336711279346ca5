package handlers

import (
	"benki/internal/repositories/cache"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	resolver *OrchestratorResolver
	cache    *cache.CacheService
}

func NewHealthHandler(resolver *OrchestratorResolver, cacheSvc *cache.CacheService) *HealthHandler {
	return &HealthHandler{resolver: resolver, cache: cacheSvc}
}

// Liveness reports process health plus the Redis connection.
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	status := "ok"
	if err := h.cache.HealthCheck(c.Context()); err != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{"status": status})
}

// TenantHealth probes every adapter the caller's tenant has enabled. Probe
// failures are reported per adapter, never as an error response.
func (h *HealthHandler) TenantHealth(c *fiber.Ctx) error {
	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Provider health", o.HealthCheck(c.Context()))
}
