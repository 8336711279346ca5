// Package tips is the adapter for the instant-transfer switch. It carries
// bank and mobile-wallet transfers plus the merchant lookups backing QR
// payments.
package tips

import (
	"context"
	"fmt"
	"time"

	"benki/internal/adapters/httpx"
	"benki/internal/config"
	"benki/internal/models"

	"github.com/google/uuid"
)

const ProviderName = "tips"

type Adapter struct {
	client *httpx.Client
	fsp    string
}

func New(creds config.TIPSCredentials) *Adapter {
	return &Adapter{
		client: httpx.NewClient(ProviderName, creds.BaseURL,
			httpx.WithHeader("X-Api-Key", creds.APIKey),
			httpx.WithHeader("X-Api-Secret", creds.APISecret),
		),
		fsp: creds.InstitutionFSP,
	}
}

type transferRequest struct {
	FSP                string  `json:"fsp"`
	Reference          string  `json:"reference"`
	SourceAccount      string  `json:"source_account"`
	DestinationAccount string  `json:"destination_account,omitempty"`
	BankCode           string  `json:"bank_code,omitempty"`
	MobileNumber       string  `json:"mobile_number,omitempty"`
	MobileNetwork      string  `json:"mobile_network,omitempty"`
	Amount             float64 `json:"amount"`
	Currency           string  `json:"currency"`
	Narration          string  `json:"narration"`
	SenderName         string  `json:"sender_name"`
	RecipientName      string  `json:"recipient_name,omitempty"`
}

type transferResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// GetBanks lists participant banks on the switch.
func (a *Adapter) GetBanks(ctx context.Context) ([]models.Bank, error) {
	var out struct {
		Banks []models.Bank `json:"banks"`
	}
	if err := a.client.Get(ctx, "/v1/banks", &out); err != nil {
		return nil, fmt.Errorf("tips: list banks: %w", err)
	}
	return out.Banks, nil
}

// ValidateAccount resolves a destination account to its holder name.
func (a *Adapter) ValidateAccount(ctx context.Context, accountNumber, bankCode string) (*models.AccountValidation, error) {
	req := map[string]string{"account_number": accountNumber, "bank_code": bankCode, "fsp": a.fsp}
	var out models.AccountValidation
	if err := a.client.Post(ctx, "/v1/accounts/validate", req, &out); err != nil {
		return nil, fmt.Errorf("tips: validate account: %w", err)
	}
	return &out, nil
}

// Transfer executes a bank-to-bank transfer.
func (a *Adapter) Transfer(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error) {
	body := transferRequest{
		FSP:                a.fsp,
		Reference:          newReference("TRF"),
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		BankCode:           req.BankCode,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Narration:          req.Narration,
		SenderName:         req.SenderName,
		RecipientName:      req.RecipientName,
	}
	var out transferResponse
	if err := a.client.Post(ctx, "/v1/transfers", body, &out); err != nil {
		return nil, fmt.Errorf("tips: transfer: %w", err)
	}
	return toResult(out, body.Reference), nil
}

// TransferToWallet pays out to a mobile-money wallet.
func (a *Adapter) TransferToWallet(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error) {
	body := transferRequest{
		FSP:           a.fsp,
		Reference:     newReference("WLT"),
		SourceAccount: req.SourceAccount,
		MobileNumber:  req.MobileNumber,
		MobileNetwork: req.MobileNetwork,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Narration:     req.Narration,
		SenderName:    req.SenderName,
	}
	var out transferResponse
	if err := a.client.Post(ctx, "/v1/transfers/wallet", body, &out); err != nil {
		return nil, fmt.Errorf("tips: wallet transfer: %w", err)
	}
	return toResult(out, body.Reference), nil
}

// LookupMerchant resolves a merchant identifier registered on the switch.
func (a *Adapter) LookupMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	var out models.Merchant
	if err := a.client.Get(ctx, "/v1/merchants/"+merchantID, &out); err != nil {
		return nil, fmt.Errorf("tips: lookup merchant: %w", err)
	}
	return &out, nil
}

// HealthCheck pings the switch.
func (a *Adapter) HealthCheck(ctx context.Context) error {
	return a.client.Get(ctx, "/v1/health", nil)
}

func toResult(resp transferResponse, reference string) *models.PaymentResult {
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
