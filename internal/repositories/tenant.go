package repositories

import (
	"context"
	"errors"
	"fmt"

	"benki/internal/config"
	domainErrors "benki/internal/errors"
	"benki/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantRepository loads and provisions per-tenant integration configuration.
type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// GetIntegrations assembles the full integration config for a tenant from
// its provider rows. A tenant with no rows at all is unknown; a tenant with
// only disabled rows gets a config with everything off.
func (r *TenantRepository) GetIntegrations(ctx context.Context, tenantID string) (config.TenantIntegrations, error) {
	var rows []models.TenantIntegration
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&rows).Error; err != nil {
		return config.TenantIntegrations{}, fmt.Errorf("load tenant integrations: %w", err)
	}
	if len(rows) == 0 {
		return config.TenantIntegrations{}, domainErrors.ErrTenantNotFound
	}

	var cfg config.TenantIntegrations
	for _, row := range rows {
		switch row.Provider {
		case models.ProviderBillPay:
			cfg.BillPay = config.BillPayIntegration{
				Enabled: row.Enabled,
				Credentials: config.BillPayCredentials{
					BaseURL:   row.BaseURL,
					VendorID:  row.ClientID,
					APIKey:    row.APIKey,
					APISecret: row.APISecret,
				},
			}
		case models.ProviderTIPS:
			cfg.TIPS = config.TIPSIntegration{
				Enabled: row.Enabled,
				Credentials: config.TIPSCredentials{
					BaseURL:        row.BaseURL,
					InstitutionFSP: row.ClientID,
					APIKey:         row.APIKey,
					APISecret:      row.APISecret,
				},
			}
		case models.ProviderGePG:
			cfg.GePG = config.GePGIntegration{
				Enabled: row.Enabled,
				Credentials: config.GePGCredentials{
					BaseURL:    row.BaseURL,
					SPCode:     row.ClientID,
					SystemID:   row.APIKey,
					PrivateKey: row.APISecret,
				},
			}
		}
	}
	return cfg, nil
}

// UpsertIntegration creates or updates one provider row for a tenant.
// Callers must invalidate the tenant's cached orchestrator afterwards.
func (r *TenantRepository) UpsertIntegration(ctx context.Context, row *models.TenantIntegration) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "provider"}},
		UpdateAll: true,
	}).Create(row).Error
}

// SetEnabled toggles one provider integration for a tenant.
func (r *TenantRepository) SetEnabled(ctx context.Context, tenantID, provider string, enabled bool) error {
	result := r.db.WithContext(ctx).Model(&models.TenantIntegration{}).
		Where("tenant_id = ? AND provider = ?", tenantID, provider).
		Update("enabled", enabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrTenantNotFound
	}
	return nil
}

// IsNotFound reports whether err is the unknown-tenant error.
func IsNotFound(err error) bool {
	return errors.Is(err, domainErrors.ErrTenantNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
