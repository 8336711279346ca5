package models

// Logical payment types exposed to channel clients.
const (
	PaymentTypeBillPayment    = "BILL_PAYMENT"
	PaymentTypeAirtime        = "AIRTIME"
	PaymentTypeBankTransfer   = "BANK_TRANSFER"
	PaymentTypeMobileTransfer = "MOBILE_TRANSFER"
	PaymentTypeGovernment     = "GOVERNMENT"
	PaymentTypeQRPayment      = "QR_PAYMENT"
)

// PaymentResult is the unified outcome of a payment operation. It is returned
// to the caller and never persisted by the orchestrator; persistence, if any,
// is the caller's responsibility.
type PaymentResult struct {
	Success       bool              `json:"success"`
	Status        string            `json:"status"`
	TransactionID string            `json:"transaction_id"`
	Reference     string            `json:"reference,omitempty"`
	Message       string            `json:"message,omitempty"`
	Provider      string            `json:"provider,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// MerchantAccountInfo is the destination extracted from a merchant QR payload.
// Transient; not persisted.
type MerchantAccountInfo struct {
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
}

// PaymentMethod describes one payment capability currently enabled for a
// tenant, for channel clients deciding what to offer.
type PaymentMethod struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

// TransferRequest is a bank or wallet transfer instruction.
type TransferRequest struct {
	SourceAccount      string  `json:"source_account"`
	DestinationAccount string  `json:"destination_account"`
	BankCode           string  `json:"bank_code,omitempty"`
	MobileNumber       string  `json:"mobile_number,omitempty"`
	MobileNetwork      string  `json:"mobile_network,omitempty"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	Narration          string  `json:"narration"`
	SenderName         string  `json:"sender_name"`
	RecipientName      string  `json:"recipient_name,omitempty"`
}

// BillPaymentRequest pays a biller through the aggregator.
type BillPaymentRequest struct {
	BillerCode       string  `json:"biller_code"`
	AccountReference string  `json:"account_reference"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	SourceAccount    string  `json:"source_account"`
	CustomerPhone    string  `json:"customer_phone,omitempty"`
}

// AirtimeRequest buys airtime for a mobile number.
type AirtimeRequest struct {
	MobileNumber  string  `json:"mobile_number"`
	Network       string  `json:"network"`
	Amount        float64 `json:"amount"`
	SourceAccount string  `json:"source_account"`
}

// QRPaymentRequest pays a merchant identified by a scanned QR payload.
type QRPaymentRequest struct {
	QRData        string  `json:"qr_data"`
	MerchantID    string  `json:"merchant_id"`
	SourceAccount string  `json:"source_account"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Narration     string  `json:"narration"`
	SenderName    string  `json:"sender_name"`
}
