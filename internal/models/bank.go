package models

// Bank is one participant institution on the instant-transfer switch.
type Bank struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// AccountValidation is the result of validating a destination account
// against the instant-transfer switch.
type AccountValidation struct {
	Valid         bool   `json:"valid"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	HolderName    string `json:"holder_name,omitempty"`
}

// Merchant is the result of a merchant lookup on the instant-transfer switch.
type Merchant struct {
	MerchantID    string `json:"merchant_id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	Active        bool   `json:"active"`
}
