package config

// BillPayCredentials holds the bill/airtime aggregator API credentials
// provisioned for one tenant.
type BillPayCredentials struct {
	BaseURL   string
	VendorID  string
	APIKey    string
	APISecret string
}

// TIPSCredentials holds the instant-transfer switch credentials for one tenant.
type TIPSCredentials struct {
	BaseURL        string
	InstitutionFSP string
	APIKey         string
	APISecret      string
}

// GePGCredentials holds the government e-payment gateway credentials for one tenant.
type GePGCredentials struct {
	BaseURL    string
	SPCode     string
	SystemID   string
	PrivateKey string
}

// IntegrationConfig is the per-provider enable flag plus its credentials.
// The orchestrator never inspects credential contents; adapters do.
type BillPayIntegration struct {
	Enabled     bool
	Credentials BillPayCredentials
}

type TIPSIntegration struct {
	Enabled     bool
	Credentials TIPSCredentials
}

type GePGIntegration struct {
	Enabled     bool
	Credentials GePGCredentials
}

// TenantIntegrations is the full payment integration configuration for one
// tenant. Immutable once loaded; a config change is picked up only by
// invalidating the tenant's cached orchestrator and rebuilding.
type TenantIntegrations struct {
	BillPay BillPayIntegration
	TIPS    TIPSIntegration
	GePG    GePGIntegration
}
