package payment

import (
	"context"

	"benki/internal/models"
)

// BillAdapter is the bill/airtime aggregator capability set.
type BillAdapter interface {
	GetBillers(ctx context.Context, category string) ([]models.Biller, error)
	ValidateAccount(ctx context.Context, billerCode, reference string) (*models.BillerAccount, error)
	PayBill(ctx context.Context, req models.BillPaymentRequest) (*models.PaymentResult, error)
	BuyAirtime(ctx context.Context, req models.AirtimeRequest) (*models.PaymentResult, error)
	CheckStatus(ctx context.Context, reference string) (*models.PaymentResult, error)
	HealthCheck(ctx context.Context) error
}

// TransferAdapter is the instant-transfer switch capability set.
type TransferAdapter interface {
	GetBanks(ctx context.Context) ([]models.Bank, error)
	ValidateAccount(ctx context.Context, accountNumber, bankCode string) (*models.AccountValidation, error)
	Transfer(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error)
	TransferToWallet(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error)
	LookupMerchant(ctx context.Context, merchantID string) (*models.Merchant, error)
	HealthCheck(ctx context.Context) error
}

// GovernmentAdapter is the government e-payment gateway capability set.
type GovernmentAdapter interface {
	GetServiceProviders(ctx context.Context) ([]models.ServiceProvider, error)
	LookupControlNumber(ctx context.Context, controlNumber string) (*models.GovernmentBill, error)
	PayBill(ctx context.Context, controlNumber, sourceAccount, payerName string, amount float64) (*models.PaymentResult, error)
	VerifyReceipt(ctx context.Context, receiptNumber string) (*models.Receipt, error)
	HealthCheck(ctx context.Context) error
}
