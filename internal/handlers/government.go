package handlers

import (
	"log"

	"benki/internal/models"
	"benki/internal/repositories/cache"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type GovernmentHandler struct {
	resolver *OrchestratorResolver
	cache    *cache.CacheService
}

func NewGovernmentHandler(resolver *OrchestratorResolver, cacheSvc *cache.CacheService) *GovernmentHandler {
	return &GovernmentHandler{resolver: resolver, cache: cacheSvc}
}

// GetServices lists service providers collecting through the gateway.
func (h *GovernmentHandler) GetServices(c *fiber.Ctx) error {
	tenant := tenantID(c)
	o, err := h.resolver.Resolve(c.Context(), tenant)
	if err != nil {
		return handleDomainError(c, err)
	}

	key := cache.GovernmentServicesKey(tenant)
	var providers []models.ServiceProvider
	if ok, err := h.cache.GetJSON(c.Context(), key, &providers); err == nil && ok {
		return response.Success(c, "Service providers", providers)
	}

	providers, err = o.GetGovernmentServices(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	if err := h.cache.SetJSON(c.Context(), key, providers); err != nil {
		log.Printf("cache government services for %s: %v", tenant, err)
	}
	return response.Success(c, "Service providers", providers)
}

// LookupControlNumber resolves a control number into a payable bill.
func (h *GovernmentHandler) LookupControlNumber(c *fiber.Ctx) error {
	controlNumber := c.Params("controlNumber")
	if controlNumber == "" {
		return response.BadRequest(c, "control number is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	bill, err := o.LookupControlNumber(c.Context(), controlNumber)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Bill", bill)
}

// PayBill settles a control-number bill.
func (h *GovernmentHandler) PayBill(c *fiber.Ctx) error {
	var input struct {
		ControlNumber string  `json:"control_number"`
		SourceAccount string  `json:"source_account"`
		PayerName     string  `json:"payer_name"`
		Amount        float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.ControlNumber == "" {
		return response.BadRequest(c, "control_number is required")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.PayGovernmentBill(c.Context(), input.ControlNumber, input.SourceAccount, input.PayerName, input.Amount)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Payment submitted", result)
}

// VerifyReceipt confirms a receipt was issued by the gateway.
func (h *GovernmentHandler) VerifyReceipt(c *fiber.Ctx) error {
	receiptNumber := c.Params("receiptNumber")
	if receiptNumber == "" {
		return response.BadRequest(c, "receipt number is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	receipt, err := o.VerifyReceipt(c.Context(), receiptNumber)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Receipt", receipt)
}
