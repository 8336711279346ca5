package handlers

import (
	"log"

	"benki/internal/models"
	"benki/internal/repositories/cache"
	"benki/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	resolver *OrchestratorResolver
	cache    *cache.CacheService
}

func NewPaymentHandler(resolver *OrchestratorResolver, cacheSvc *cache.CacheService) *PaymentHandler {
	return &PaymentHandler{
		resolver: resolver,
		cache:    cacheSvc,
	}
}

// GetPaymentMethods lists what the tenant has enabled, for the client to
// decide which screens to offer.
func (h *PaymentHandler) GetPaymentMethods(c *fiber.Ctx) error {
	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Payment methods", o.AvailableMethods())
}

// GetBanks lists participant banks, served from the catalog cache when warm.
func (h *PaymentHandler) GetBanks(c *fiber.Ctx) error {
	tenant := tenantID(c)
	o, err := h.resolver.Resolve(c.Context(), tenant)
	if err != nil {
		return handleDomainError(c, err)
	}

	key := cache.BanksKey(tenant)
	var banks []models.Bank
	if ok, err := h.cache.GetJSON(c.Context(), key, &banks); err == nil && ok {
		return response.Success(c, "Banks", banks)
	}

	banks, err = o.GetBanks(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	if err := h.cache.SetJSON(c.Context(), key, banks); err != nil {
		log.Printf("cache banks for %s: %v", tenant, err)
	}
	return response.Success(c, "Banks", banks)
}

// ValidateBankAccount resolves a destination account to its holder name.
func (h *PaymentHandler) ValidateBankAccount(c *fiber.Ctx) error {
	var input struct {
		AccountNumber string `json:"account_number"`
		BankCode      string `json:"bank_code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.AccountNumber == "" || input.BankCode == "" {
		return response.BadRequest(c, "account_number and bank_code are required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	validation, err := o.ValidateBankAccount(c.Context(), input.AccountNumber, input.BankCode)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Account validated", validation)
}

// TransferToBank executes an instant bank transfer.
func (h *PaymentHandler) TransferToBank(c *fiber.Ctx) error {
	var input models.TransferRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}
	if input.DestinationAccount == "" || input.BankCode == "" {
		return response.BadRequest(c, "destination_account and bank_code are required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.TransferToBank(c.Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Transfer submitted", result)
}

// TransferToMobile pays out to a mobile-money wallet.
func (h *PaymentHandler) TransferToMobile(c *fiber.Ctx) error {
	var input models.TransferRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}
	if input.MobileNumber == "" {
		return response.BadRequest(c, "mobile_number is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.TransferToMobile(c.Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Transfer submitted", result)
}

// GetBillers lists billers, optionally by ?category=, cached per tenant.
func (h *PaymentHandler) GetBillers(c *fiber.Ctx) error {
	tenant := tenantID(c)
	category := c.Query("category")

	o, err := h.resolver.Resolve(c.Context(), tenant)
	if err != nil {
		return handleDomainError(c, err)
	}

	key := cache.BillersKey(tenant, category)
	var billers []models.Biller
	if ok, err := h.cache.GetJSON(c.Context(), key, &billers); err == nil && ok {
		return response.Success(c, "Billers", billers)
	}

	billers, err = o.GetBillers(c.Context(), category)
	if err != nil {
		return handleDomainError(c, err)
	}
	if err := h.cache.SetJSON(c.Context(), key, billers); err != nil {
		log.Printf("cache billers for %s: %v", tenant, err)
	}
	return response.Success(c, "Billers", billers)
}

// ValidateBillerAccount checks a customer reference against a biller.
func (h *PaymentHandler) ValidateBillerAccount(c *fiber.Ctx) error {
	var input struct {
		BillerCode string `json:"biller_code"`
		Reference  string `json:"reference"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.BillerCode == "" || input.Reference == "" {
		return response.BadRequest(c, "biller_code and reference are required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	account, err := o.ValidateBillerAccount(c.Context(), input.BillerCode, input.Reference)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Account validated", account)
}

// PayBill pays a biller through the aggregator.
func (h *PaymentHandler) PayBill(c *fiber.Ctx) error {
	var input models.BillPaymentRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}
	if input.BillerCode == "" || input.AccountReference == "" {
		return response.BadRequest(c, "biller_code and account_reference are required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.PayBill(c.Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Bill payment submitted", result)
}

// BuyAirtime tops up a mobile number.
func (h *PaymentHandler) BuyAirtime(c *fiber.Ctx) error {
	var input models.AirtimeRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return response.BadRequest(c, "amount must be greater than zero")
	}
	if input.MobileNumber == "" {
		return response.BadRequest(c, "mobile_number is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.BuyAirtime(c.Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Airtime purchase submitted", result)
}

// CheckTransactionStatus queries a submitted transaction by reference.
func (h *PaymentHandler) CheckTransactionStatus(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return response.BadRequest(c, "reference is required")
	}

	o, err := h.resolver.Resolve(c.Context(), tenantID(c))
	if err != nil {
		return handleDomainError(c, err)
	}

	result, err := o.CheckTransactionStatus(c.Context(), reference)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Success(c, "Transaction status", result)
}
