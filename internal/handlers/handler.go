// Package handlers contains the HTTP route handlers. Each handler binds the
// request, resolves the caller's tenant orchestrator, and translates domain
// errors into client responses.
package handlers

import (
	"context"
	"errors"

	"benki/internal/config"
	domainErrors "benki/internal/errors"
	"benki/internal/services/payment"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TenantConfigSource loads a tenant's integration configuration.
// Implemented by repositories.TenantRepository.
type TenantConfigSource interface {
	GetIntegrations(ctx context.Context, tenantID string) (config.TenantIntegrations, error)
}

// OrchestratorResolver resolves the per-tenant orchestrator, building and
// caching it on first use.
type OrchestratorResolver struct {
	cache      *payment.Cache
	tenantRepo TenantConfigSource
}

func NewOrchestratorResolver(cache *payment.Cache, tenantRepo TenantConfigSource) *OrchestratorResolver {
	return &OrchestratorResolver{cache: cache, tenantRepo: tenantRepo}
}

// Resolve returns the orchestrator for a tenant. Configuration is loaded
// only on a cache miss; a config change is picked up by invalidating the
// tenant's entry.
func (r *OrchestratorResolver) Resolve(ctx context.Context, tenantID string) (*payment.Orchestrator, error) {
	if o, ok := r.cache.Get(tenantID); ok {
		return o, nil
	}

	cfg, err := r.tenantRepo.GetIntegrations(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return r.cache.GetOrCreate(tenantID, func() *payment.Orchestrator {
		return payment.NewOrchestrator(tenantID, cfg)
	}), nil
}

// tenantID pulls the authenticated tenant from the request context.
func tenantID(c *fiber.Ctx) string {
	id, _ := c.Locals("tenant_id").(string)
	return id
}

// handleDomainError maps orchestrator errors onto HTTP responses: capability
// errors become "feature not enabled" responses, everything else surfaces as
// a bad gateway from the provider call.
func handleDomainError(c *fiber.Ctx, err error) error {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		if domainErr == domainErrors.ErrTenantNotFound {
			return response.Error(c, fiber.StatusNotFound, domainErr.Message)
		}
		return response.FeatureUnavailable(c, domainErr.Message)
	}
	return response.Error(c, fiber.StatusBadGateway, err.Error())
}
