package handlers

import (
	"benki/internal/models"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type QRHandler struct {
	resolver *OrchestratorResolver
}

func NewQRHandler(resolver *OrchestratorResolver) *QRHandler {
	return &QRHandler{resolver: resolver}
}

// ValidateMerchant decodes a scanned payload and confirms the destination
// account before the client shows the confirmation screen.
func (h *QRHandler) ValidateMerchant(c *fiber.Ctx) error {
	var input struct {
		QRData     string `json:"qr_data"`
		MerchantID string `json:"merchant_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.QRData == "" && input.MerchantID == "" {
		return response.BadRequest(c, "qr_data or merchant_id is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	validation, err := o.ValidateQRMerchant(c.Context(), input.QRData, input.MerchantID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Merchant validated", validation)
}

// LookupMerchant resolves a merchant id on the instant-transfer switch.
func (h *QRHandler) LookupMerchant(c *fiber.Ctx) error {
	merchantID := c.Params("id")
	if merchantID == "" {
		return response.BadRequest(c, "merchant id is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	merchant, err := o.LookupQRMerchant(c.Context(), merchantID)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Merchant", merchant)
}

// Pay executes a QR merchant payment.
func (h *QRHandler) Pay(c *fiber.Ctx) error {
	var input models.QRPaymentRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}
	if input.QRData == "" && input.MerchantID == "" {
		return response.BadRequest(c, "qr_data or merchant_id is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.PayQRMerchant(c.Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Payment submitted", result)
}
