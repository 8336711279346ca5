package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"benki/internal/config"
	domainErrors "benki/internal/errors"
	"benki/internal/models"
	"benki/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

type MockTenantSource struct {
	mock.Mock
}

func (m *MockTenantSource) GetIntegrations(ctx context.Context, tenantID string) (config.TenantIntegrations, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(config.TenantIntegrations), args.Error(1)
}

// newTestApp wires a minimal app with a stub auth layer that injects the
// tenant id, mirroring what the JWT middleware does in production.
func newTestApp(resolver *OrchestratorResolver, tenant string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("tenant_id", tenant)
		return c.Next()
	})
	app.Get("/api/payments/methods", NewPaymentHandler(resolver, nil).GetPaymentMethods)
	app.Post("/api/payments/transfers/bank", NewPaymentHandler(resolver, nil).TransferToBank)
	return app
}

func TestGetPaymentMethods_NoIntegrations(t *testing.T) {
	source := new(MockTenantSource)
	source.On("GetIntegrations", mock.Anything, "acme").Return(config.TenantIntegrations{}, nil)

	resolver := NewOrchestratorResolver(payment.NewCache(), source)
	app := newTestApp(resolver, "acme")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/payments/methods", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.PaymentMethod `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Data)
}

func TestTransferToBank_FeatureNotEnabled(t *testing.T) {
	source := new(MockTenantSource)
	source.On("GetIntegrations", mock.Anything, "acme").Return(config.TenantIntegrations{}, nil)

	resolver := NewOrchestratorResolver(payment.NewCache(), source)
	app := newTestApp(resolver, "acme")

	req := httptest.NewRequest("POST", "/api/payments/transfers/bank",
		jsonBody(`{"destination_account":"123","bank_code":"0012","amount":100,"currency":"TZS"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domainErrors.ErrBankTransfersUnavailable.Message, body.Error)
}

func TestTransferToBank_UnknownTenant(t *testing.T) {
	source := new(MockTenantSource)
	source.On("GetIntegrations", mock.Anything, "ghost").
		Return(config.TenantIntegrations{}, domainErrors.ErrTenantNotFound)

	resolver := NewOrchestratorResolver(payment.NewCache(), source)
	app := newTestApp(resolver, "ghost")

	req := httptest.NewRequest("POST", "/api/payments/transfers/bank",
		jsonBody(`{"destination_account":"123","bank_code":"0012","amount":100}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResolver_CachesAcrossRequests(t *testing.T) {
	source := new(MockTenantSource)
	source.On("GetIntegrations", mock.Anything, "acme").Return(config.TenantIntegrations{}, nil).Once()

	resolver := NewOrchestratorResolver(payment.NewCache(), source)

	first, err := resolver.Resolve(context.Background(), "acme")
	assert.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "acme")
	assert.NoError(t, err)

	assert.Same(t, first, second)
	source.AssertExpectations(t)
}
