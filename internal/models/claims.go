package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionPaymentWrite = "payment:write"
	PermissionPaymentRead  = "payment:read"
	PermissionAdminWrite   = "admin:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	TenantID    string   `json:"tenant_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
