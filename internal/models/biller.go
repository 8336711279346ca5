package models

// Biller categories exposed by the bill-payment aggregator.
const (
	BillerCategoryUtility   = "utility"
	BillerCategoryTV        = "tv"
	BillerCategoryInternet  = "internet"
	BillerCategoryInsurance = "insurance"
)

// Biller is one payee reachable through the bill-payment aggregator.
type Biller struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Currency string `json:"currency"`
}

// BillerAccount is the result of validating a customer reference
// against a biller.
type BillerAccount struct {
	Valid        bool    `json:"valid"`
	BillerCode   string  `json:"biller_code"`
	Reference    string  `json:"reference"`
	CustomerName string  `json:"customer_name,omitempty"`
	AmountDue    float64 `json:"amount_due,omitempty"`
}
