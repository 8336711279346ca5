package handlers

import (
	"log"

	"benki/internal/models"
	"benki/internal/repositories"
	"benki/internal/services/payment"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves tenant-administration endpoints: provisioning provider
// integrations and invalidating cached orchestrators after a config change.
type AdminHandler struct {
	cache      *payment.Cache
	tenantRepo *repositories.TenantRepository
}

func NewAdminHandler(cache *payment.Cache, tenantRepo *repositories.TenantRepository) *AdminHandler {
	return &AdminHandler{cache: cache, tenantRepo: tenantRepo}
}

// UpsertIntegration creates or updates a provider integration for a tenant
// and drops the tenant's cached orchestrator so the change takes effect.
func (h *AdminHandler) UpsertIntegration(c *fiber.Ctx) error {
	tenant := c.Params("id")

	var input struct {
		Provider  string `json:"provider"`
		Enabled   bool   `json:"enabled"`
		BaseURL   string `json:"base_url"`
		ClientID  string `json:"client_id"`
		APIKey    string `json:"api_key"`
		APISecret string `json:"api_secret"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	switch input.Provider {
	case models.ProviderBillPay, models.ProviderTIPS, models.ProviderGePG:
	default:
		return response.BadRequest(c, "unknown provider")
	}

	row := &models.TenantIntegration{
		TenantID:  tenant,
		Provider:  input.Provider,
		Enabled:   input.Enabled,
		BaseURL:   input.BaseURL,
		ClientID:  input.ClientID,
		APIKey:    input.APIKey,
		APISecret: input.APISecret,
	}
	if err := h.tenantRepo.UpsertIntegration(c.Context(), row); err != nil {
		return response.ServerError(c, "failed to save integration")
	}

	h.cache.Invalidate(tenant)
	log.Printf("integration %s for tenant %s updated, orchestrator invalidated", input.Provider, tenant)
	return response.Success(c, "Integration updated", row)
}

// InvalidateTenant drops one tenant's cached orchestrator.
func (h *AdminHandler) InvalidateTenant(c *fiber.Ctx) error {
	tenant := c.Params("id")
	h.cache.Invalidate(tenant)
	return response.Success(c, "Tenant orchestrator invalidated", fiber.Map{"tenant_id": tenant})
}

// InvalidateAll clears every cached orchestrator.
func (h *AdminHandler) InvalidateAll(c *fiber.Ctx) error {
	h.cache.Clear()
	return response.Success(c, "Orchestrator cache cleared", nil)
}
