package models

import "time"

// Integration provider names as stored per tenant.
const (
	ProviderBillPay = "billpay"
	ProviderTIPS    = "tips"
	ProviderGePG    = "gepg"
)

// TenantIntegration is one provider integration row for a tenant. A tenant
// has at most one row per provider; disabled rows keep their credentials so
// re-enabling does not require re-provisioning.
type TenantIntegration struct {
	ID        uint   `gorm:"primarykey"`
	TenantID  string `gorm:"index:idx_tenant_provider,unique;not null"`
	Provider  string `gorm:"index:idx_tenant_provider,unique;not null"`
	Enabled   bool   `gorm:"not null;default:false"`
	BaseURL   string
	ClientID  string // vendor id / institution FSP / SP code, per provider
	APIKey    string
	APISecret string
	CreatedAt time.Time
	UpdatedAt time.Time
}
