// Package billpay is the adapter for the bill/airtime aggregator rail.
package billpay

import (
	"context"
	"fmt"
	"time"

	"benki/internal/adapters/httpx"
	"benki/internal/config"
	"benki/internal/models"

	"github.com/google/uuid"
)

const ProviderName = "billpay"

// Adapter talks to the aggregator API on behalf of one tenant.
type Adapter struct {
	client   *httpx.Client
	vendorID string
}

// New creates an adapter from tenant-scoped credentials. Credential contents
// are not validated here; the provider rejects bad ones at call time.
func New(creds config.BillPayCredentials) *Adapter {
	return &Adapter{
		client: httpx.NewClient(ProviderName, creds.BaseURL,
			httpx.WithHeader("X-Api-Key", creds.APIKey),
			httpx.WithHeader("X-Api-Secret", creds.APISecret),
		),
		vendorID: creds.VendorID,
	}
}

type payBillRequest struct {
	VendorID      string  `json:"vendor_id"`
	Reference     string  `json:"reference"`
	BillerCode    string  `json:"biller_code"`
	AccountRef    string  `json:"account_ref"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	SourceAccount string  `json:"source_account"`
	CustomerPhone string  `json:"customer_phone,omitempty"`
}

type airtimeRequest struct {
	VendorID      string  `json:"vendor_id"`
	Reference     string  `json:"reference"`
	MobileNumber  string  `json:"mobile_number"`
	Network       string  `json:"network"`
	Amount        float64 `json:"amount"`
	SourceAccount string  `json:"source_account"`
}

type transactionResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// GetBillers lists billers, optionally filtered by category.
func (a *Adapter) GetBillers(ctx context.Context, category string) ([]models.Biller, error) {
	path := "/v1/billers"
	if category != "" {
		path += "?category=" + category
	}
	var out struct {
		Billers []models.Biller `json:"billers"`
	}
	if err := a.client.Get(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("billpay: list billers: %w", err)
	}
	return out.Billers, nil
}

// ValidateAccount checks a customer reference against a biller and returns
// the registered name and any amount due.
func (a *Adapter) ValidateAccount(ctx context.Context, billerCode, reference string) (*models.BillerAccount, error) {
	var out models.BillerAccount
	req := map[string]string{"biller_code": billerCode, "reference": reference, "vendor_id": a.vendorID}
	if err := a.client.Post(ctx, "/v1/billers/validate", req, &out); err != nil {
		return nil, fmt.Errorf("billpay: validate account: %w", err)
	}
	return &out, nil
}

// PayBill submits a bill payment to the aggregator.
func (a *Adapter) PayBill(ctx context.Context, req models.BillPaymentRequest) (*models.PaymentResult, error) {
	body := payBillRequest{
		VendorID:      a.vendorID,
		Reference:     newReference("BILL"),
		BillerCode:    req.BillerCode,
		AccountRef:    req.AccountReference,
		Amount:        req.Amount,
		Currency:      req.Currency,
		SourceAccount: req.SourceAccount,
		CustomerPhone: req.CustomerPhone,
	}
	var out transactionResponse
	if err := a.client.Post(ctx, "/v1/payments", body, &out); err != nil {
		return nil, fmt.Errorf("billpay: pay bill: %w", err)
	}
	return toResult(out, body.Reference), nil
}

// BuyAirtime tops up a mobile number.
func (a *Adapter) BuyAirtime(ctx context.Context, req models.AirtimeRequest) (*models.PaymentResult, error) {
	body := airtimeRequest{
		VendorID:      a.vendorID,
		Reference:     newReference("AIR"),
		MobileNumber:  req.MobileNumber,
		Network:       req.Network,
		Amount:        req.Amount,
		SourceAccount: req.SourceAccount,
	}
	var out transactionResponse
	if err := a.client.Post(ctx, "/v1/airtime", body, &out); err != nil {
		return nil, fmt.Errorf("billpay: buy airtime: %w", err)
	}
	return toResult(out, body.Reference), nil
}

// CheckStatus queries a previously submitted transaction by reference.
func (a *Adapter) CheckStatus(ctx context.Context, reference string) (*models.PaymentResult, error) {
	var out transactionResponse
	if err := a.client.Get(ctx, "/v1/payments/"+reference, &out); err != nil {
		return nil, fmt.Errorf("billpay: check status: %w", err)
	}
	return toResult(out, reference), nil
}

// HealthCheck pings the aggregator.
func (a *Adapter) HealthCheck(ctx context.Context) error {
	return a.client.Get(ctx, "/v1/health", nil)
}

func toResult(resp transactionResponse, reference string) *models.PaymentResult {
	return &models.PaymentResult{
		Success:       resp.Status == "SUCCESS" || resp.Status == "COMPLETED",
		Status:        resp.Status,
		TransactionID: resp.TransactionID,
		Reference:     reference,
		Message:       resp.Message,
		Provider:      ProviderName,
	}
}

func newReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Unix(), uuid.NewString()[:8])
}
