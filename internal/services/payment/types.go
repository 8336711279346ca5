package payment

// HealthStatus values for the aggregate and per-adapter health report.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// AdapterHealth is one adapter's probe outcome. Errors are captured here,
// never propagated.
type AdapterHealth struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// HealthReport aggregates every constructed adapter's probe. Overall is
// "healthy" only when every adapter reports healthy.
type HealthReport struct {
	TenantID string          `json:"tenant_id"`
	Overall  string          `json:"overall"`
	Adapters []AdapterHealth `json:"adapters"`
}
