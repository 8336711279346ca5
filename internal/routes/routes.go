// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"benki/internal/config"
	"benki/internal/handlers"
	"benki/internal/middleware"
	"benki/internal/repositories"
	"benki/internal/services/auth"
	"benki/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, orchestratorCache *payment.Cache) {
	tenantRepo := repositories.NewTenantRepository(db)
	resolver := handlers.NewOrchestratorResolver(orchestratorCache, tenantRepo)

	jwtSecret := config.GetEnv("JWT_SECRET", "benki")
	adminSecretHash := config.GetEnv("ADMIN_SECRET_HASH", "")
	authService := auth.NewService(jwtSecret, adminSecretHash)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	paymentHandler := handlers.NewPaymentHandler(resolver, repositories.CacheService)
	qrHandler := handlers.NewQRHandler(resolver)
	governmentHandler := handlers.NewGovernmentHandler(resolver, repositories.CacheService)
	healthHandler := handlers.NewHealthHandler(resolver, repositories.CacheService)
	adminHandler := handlers.NewAdminHandler(orchestratorCache, tenantRepo)

	app.Get("/health", healthHandler.Liveness)

	api := app.Group("/api")

	payments := api.Group("/payments", authMiddleware.Handler)
	payments.Get("/methods", paymentHandler.GetPaymentMethods)
	payments.Get("/health", healthHandler.TenantHealth)
	payments.Get("/banks", paymentHandler.GetBanks)
	payments.Post("/banks/validate", paymentHandler.ValidateBankAccount)
	payments.Post("/transfers/bank", paymentHandler.TransferToBank)
	payments.Post("/transfers/mobile", paymentHandler.TransferToMobile)
	payments.Get("/billers", paymentHandler.GetBillers)
	payments.Post("/billers/validate", paymentHandler.ValidateBillerAccount)
	payments.Post("/bills", paymentHandler.PayBill)
	payments.Post("/airtime", paymentHandler.BuyAirtime)
	payments.Get("/status/:reference", paymentHandler.CheckTransactionStatus)

	qr := api.Group("/qr", authMiddleware.Handler)
	qr.Post("/validate", qrHandler.ValidateMerchant)
	qr.Get("/merchants/:id", qrHandler.LookupMerchant)
	qr.Post("/pay", qrHandler.Pay)

	gov := api.Group("/government", authMiddleware.Handler)
	gov.Get("/services", governmentHandler.GetServices)
	gov.Get("/bills/:controlNumber", governmentHandler.LookupControlNumber)
	gov.Post("/bills/pay", governmentHandler.PayBill)
	gov.Get("/receipts/:receiptNumber", governmentHandler.VerifyReceipt)

	admin := api.Group("/admin", authMiddleware.AdminHandler)
	admin.Put("/tenants/:id/integrations", adminHandler.UpsertIntegration)
	admin.Post("/tenants/:id/invalidate", adminHandler.InvalidateTenant)
	admin.Post("/tenants/invalidate-all", adminHandler.InvalidateAll)
}
