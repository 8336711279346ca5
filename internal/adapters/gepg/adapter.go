// Package gepg is the adapter for the government e-payment gateway:
// control-number bills and receipt verification.
package gepg

import (
	"context"
	"fmt"
	"time"

	"benki/internal/adapters/httpx"
	"benki/internal/config"
	"benki/internal/models"

	"github.com/google/uuid"
)

const ProviderName = "gepg"

type Adapter struct {
	client *httpx.Client
	spCode string
}

func New(creds config.GePGCredentials) *Adapter {
	return &Adapter{
		client: httpx.NewClient(ProviderName, creds.BaseURL,
			httpx.WithHeader("X-System-Id", creds.SystemID),
			httpx.WithHeader("X-Signature-Key", creds.PrivateKey),
		),
		spCode: creds.SPCode,
	}
}

type payBillRequest struct {
	SPCode        string  `json:"sp_code"`
	Reference     string  `json:"reference"`
	ControlNumber string  `json:"control_number"`
	Amount        float64 `json:"amount"`
	SourceAccount string  `json:"source_account"`
	PayerName     string  `json:"payer_name"`
}

type paymentResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	ReceiptNumber string `json:"receipt_number"`
	Message       string `json:"message"`
}

// GetServiceProviders lists institutions collecting through the gateway.
func (a *Adapter) GetServiceProviders(ctx context.Context) ([]models.ServiceProvider, error) {
	var out struct {
		Providers []models.ServiceProvider `json:"providers"`
	}
	if err := a.client.Get(ctx, "/v1/service-providers", &out); err != nil {
		return nil, fmt.Errorf("gepg: list service providers: %w", err)
	}
	return out.Providers, nil
}

// LookupControlNumber resolves a control number into a payable bill.
func (a *Adapter) LookupControlNumber(ctx context.Context, controlNumber string) (*models.GovernmentBill, error) {
	var out models.GovernmentBill
	if err := a.client.Get(ctx, "/v1/bills/"+controlNumber, &out); err != nil {
		return nil, fmt.Errorf("gepg: lookup control number: %w", err)
	}
	return &out, nil
}

// PayBill settles a control-number bill.
func (a *Adapter) PayBill(ctx context.Context, controlNumber, sourceAccount, payerName string, amount float64) (*models.PaymentResult, error) {
	body := payBillRequest{
		SPCode:        a.spCode,
		Reference:     fmt.Sprintf("GOV-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		ControlNumber: controlNumber,
		Amount:        amount,
		SourceAccount: sourceAccount,
		PayerName:     payerName,
	}
	var out paymentResponse
	if err := a.client.Post(ctx, "/v1/payments", body, &out); err != nil {
		return nil, fmt.Errorf("gepg: pay bill: %w", err)
	}
	result := &models.PaymentResult{
		Success:       out.Status == "SUCCESS" || out.Status == "COMPLETED",
		Status:        out.Status,
		TransactionID: out.TransactionID,
		Reference:     body.Reference,
		Message:       out.Message,
		Provider:      ProviderName,
	}
	if out.ReceiptNumber != "" {
		result.Extra = map[string]string{"receipt_number": out.ReceiptNumber}
	}
	return result, nil
}

// VerifyReceipt confirms a receipt was issued by the gateway.
func (a *Adapter) VerifyReceipt(ctx context.Context, receiptNumber string) (*models.Receipt, error) {
	var out models.Receipt
	if err := a.client.Get(ctx, "/v1/receipts/"+receiptNumber, &out); err != nil {
		return nil, fmt.Errorf("gepg: verify receipt: %w", err)
	}
	return &out, nil
}

// HealthCheck pings the gateway.
func (a *Adapter) HealthCheck(ctx context.Context) error {
	return a.client.Get(ctx, "/v1/health", nil)
}
