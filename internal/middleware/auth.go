// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"log"
	"strings"

	"benki/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and places the caller's claims and
// tenant id into the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler validates the JWT and stores claims under c.Locals("claims") and
// the tenant id under c.Locals("tenant_id").
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		log.Println("Missing Authorization header")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Println("Invalid Authorization format")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := m.authService.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals("claims", claims)
	c.Locals("tenant_id", claims.TenantID)
	return c.Next()
}

// AdminHandler guards tenant-administration endpoints with the operations
// API secret.
func (m *AuthMiddleware) AdminHandler(c *fiber.Ctx) error {
	secret := c.Get("X-Admin-Secret")
	if secret == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing admin secret"})
	}
	if err := m.authService.VerifyAdminSecret(secret); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid admin secret"})
	}
	return c.Next()
}
