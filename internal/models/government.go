package models

// ServiceProvider is one institution collecting through the government
// e-payment gateway.
type ServiceProvider struct {
	SPCode string `json:"sp_code"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// GovernmentBill is a payable bill resolved from a control number.
type GovernmentBill struct {
	ControlNumber string  `json:"control_number"`
	SPCode        string  `json:"sp_code"`
	Description   string  `json:"description"`
	PayerName     string  `json:"payer_name"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	ExpiresAt     string  `json:"expires_at,omitempty"`
	Payable       bool    `json:"payable"`
}

// Receipt is a government payment receipt verification result.
type Receipt struct {
	ReceiptNumber string  `json:"receipt_number"`
	ControlNumber string  `json:"control_number"`
	Amount        float64 `json:"amount"`
	PaidAt        string  `json:"paid_at"`
	Verified      bool    `json:"verified"`
}
