// Package payment is the per-tenant payment orchestrator: it builds exactly
// the provider adapters a tenant has enabled and dispatches each operation
// to the one adapter that implements it.
package payment

import (
	"context"

	"benki/internal/adapters/billpay"
	"benki/internal/adapters/gepg"
	"benki/internal/adapters/tips"
	"benki/internal/config"
	"benki/internal/domain/emvqr"
	domainErrors "benki/internal/errors"
	"benki/internal/models"
)

// Orchestrator holds the adapters constructed for one tenant. A nil adapter
// means the tenant has not enabled that provider; the matching operations
// fail fast with a capability error. Instances are immutable after
// construction and safe for concurrent use.
type Orchestrator struct {
	tenantID string
	bill     BillAdapter
	transfer TransferAdapter
	gov      GovernmentAdapter
}

// NewOrchestrator builds adapters from the tenant's integration flags.
// Disabled categories are skipped entirely; credentials pass through opaquely.
func NewOrchestrator(tenantID string, cfg config.TenantIntegrations) *Orchestrator {
	o := &Orchestrator{tenantID: tenantID}
	if cfg.BillPay.Enabled {
		o.bill = billpay.New(cfg.BillPay.Credentials)
	}
	if cfg.TIPS.Enabled {
		o.transfer = tips.New(cfg.TIPS.Credentials)
	}
	if cfg.GePG.Enabled {
		o.gov = gepg.New(cfg.GePG.Credentials)
	}
	return o
}

// newOrchestratorWithAdapters wires explicit adapters, for tests.
func newOrchestratorWithAdapters(tenantID string, bill BillAdapter, transfer TransferAdapter, gov GovernmentAdapter) *Orchestrator {
	return &Orchestrator{tenantID: tenantID, bill: bill, transfer: transfer, gov: gov}
}

// TenantID returns the tenant this orchestrator serves.
func (o *Orchestrator) TenantID() string {
	return o.tenantID
}

// --- bill / airtime operations ---

func (o *Orchestrator) GetBillers(ctx context.Context, category string) ([]models.Biller, error) {
	if o.bill == nil {
		return nil, domainErrors.ErrBillPaymentsUnavailable
	}
	return o.bill.GetBillers(ctx, category)
}

func (o *Orchestrator) ValidateBillerAccount(ctx context.Context, billerCode, reference string) (*models.BillerAccount, error) {
	if o.bill == nil {
		return nil, domainErrors.ErrBillPaymentsUnavailable
	}
	return o.bill.ValidateAccount(ctx, billerCode, reference)
}

func (o *Orchestrator) PayBill(ctx context.Context, req models.BillPaymentRequest) (*models.PaymentResult, error) {
	if o.bill == nil {
		return nil, domainErrors.ErrBillPaymentsUnavailable
	}
	return o.bill.PayBill(ctx, req)
}

func (o *Orchestrator) BuyAirtime(ctx context.Context, req models.AirtimeRequest) (*models.PaymentResult, error) {
	if o.bill == nil {
		return nil, domainErrors.ErrAirtimeUnavailable
	}
	return o.bill.BuyAirtime(ctx, req)
}

func (o *Orchestrator) CheckTransactionStatus(ctx context.Context, reference string) (*models.PaymentResult, error) {
	if o.bill == nil {
		return nil, domainErrors.ErrStatusCheckUnavailable
	}
	return o.bill.CheckStatus(ctx, reference)
}

// --- transfer operations ---

func (o *Orchestrator) GetBanks(ctx context.Context) ([]models.Bank, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrBankTransfersUnavailable
	}
	return o.transfer.GetBanks(ctx)
}

func (o *Orchestrator) ValidateBankAccount(ctx context.Context, accountNumber, bankCode string) (*models.AccountValidation, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrBankTransfersUnavailable
	}
	return o.transfer.ValidateAccount(ctx, accountNumber, bankCode)
}

func (o *Orchestrator) TransferToBank(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrBankTransfersUnavailable
	}
	return o.transfer.Transfer(ctx, req)
}

func (o *Orchestrator) TransferToMobile(ctx context.Context, req models.TransferRequest) (*models.PaymentResult, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrMobileTransfersUnavailable
	}
	return o.transfer.TransferToWallet(ctx, req)
}

// --- QR merchant operations ---

// ValidateQRMerchant decodes the scanned payload and confirms the
// destination account exists. A malformed payload degrades to the supplied
// merchant id rather than failing the flow.
func (o *Orchestrator) ValidateQRMerchant(ctx context.Context, qrData, merchantID string) (*models.AccountValidation, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrQRPaymentsUnavailable
	}
	info := emvqr.DecodeWithFallback(qrData, merchantID)
	if info.BankCode == "" {
		merchant, err := o.transfer.LookupMerchant(ctx, info.AccountNumber)
		if err != nil {
			return nil, err
		}
		info.AccountNumber = merchant.AccountNumber
		info.BankCode = merchant.BankCode
	}
	return o.transfer.ValidateAccount(ctx, info.AccountNumber, info.BankCode)
}

// LookupQRMerchant resolves a merchant id on the switch.
func (o *Orchestrator) LookupQRMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrQRPaymentsUnavailable
	}
	return o.transfer.LookupMerchant(ctx, merchantID)
}

// PayQRMerchant decodes the payload into a transfer destination and executes
// a bank transfer to it.
func (o *Orchestrator) PayQRMerchant(ctx context.Context, req models.QRPaymentRequest) (*models.PaymentResult, error) {
	if o.transfer == nil {
		return nil, domainErrors.ErrQRPaymentsUnavailable
	}

	info := emvqr.DecodeWithFallback(req.QRData, req.MerchantID)
	if info.BankCode == "" {
		merchant, err := o.transfer.LookupMerchant(ctx, info.AccountNumber)
		if err != nil {
			return nil, err
		}
		info.AccountNumber = merchant.AccountNumber
		info.BankCode = merchant.BankCode
	}

	return o.transfer.Transfer(ctx, models.TransferRequest{
		SourceAccount:      req.SourceAccount,
		DestinationAccount: info.AccountNumber,
		BankCode:           info.BankCode,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Narration:          req.Narration,
		SenderName:         req.SenderName,
	})
}

// --- government operations ---

func (o *Orchestrator) GetGovernmentServices(ctx context.Context) ([]models.ServiceProvider, error) {
	if o.gov == nil {
		return nil, domainErrors.ErrGovernmentPaymentsUnavailable
	}
	return o.gov.GetServiceProviders(ctx)
}

func (o *Orchestrator) LookupControlNumber(ctx context.Context, controlNumber string) (*models.GovernmentBill, error) {
	if o.gov == nil {
		return nil, domainErrors.ErrGovernmentPaymentsUnavailable
	}
	return o.gov.LookupControlNumber(ctx, controlNumber)
}

func (o *Orchestrator) PayGovernmentBill(ctx context.Context, controlNumber, sourceAccount, payerName string, amount float64) (*models.PaymentResult, error) {
	if o.gov == nil {
		return nil, domainErrors.ErrGovernmentPaymentsUnavailable
	}
	return o.gov.PayBill(ctx, controlNumber, sourceAccount, payerName, amount)
}

func (o *Orchestrator) VerifyReceipt(ctx context.Context, receiptNumber string) (*models.Receipt, error) {
	if o.gov == nil {
		return nil, domainErrors.ErrGovernmentPaymentsUnavailable
	}
	return o.gov.VerifyReceipt(ctx, receiptNumber)
}

// --- availability & health ---

// paymentTypeCategory maps logical payment types to the adapter category
// that must be present for them.
var paymentTypeCategory = map[string]string{
	models.PaymentTypeBillPayment:    models.ProviderBillPay,
	models.PaymentTypeAirtime:        models.ProviderBillPay,
	models.PaymentTypeBankTransfer:   models.ProviderTIPS,
	models.PaymentTypeMobileTransfer: models.ProviderTIPS,
	models.PaymentTypeQRPayment:      models.ProviderTIPS,
	models.PaymentTypeGovernment:     models.ProviderGePG,
}

// IsAvailable reports whether a logical payment type has a backing adapter.
func (o *Orchestrator) IsAvailable(paymentType string) bool {
	switch paymentTypeCategory[paymentType] {
	case models.ProviderBillPay:
		return o.bill != nil
	case models.ProviderTIPS:
		return o.transfer != nil
	case models.ProviderGePG:
		return o.gov != nil
	default:
		return false
	}
}

// AvailableMethods lists the payment methods enabled for the tenant. Derived
// purely from which adapters were constructed; no network calls.
func (o *Orchestrator) AvailableMethods() []models.PaymentMethod {
	methods := []models.PaymentMethod{}
	if o.bill != nil {
		methods = append(methods,
			models.PaymentMethod{Type: models.PaymentTypeBillPayment, Name: "Bill Payments", Description: "Pay utility, TV and internet bills", Provider: models.ProviderBillPay},
			models.PaymentMethod{Type: models.PaymentTypeAirtime, Name: "Airtime", Description: "Buy airtime for any network", Provider: models.ProviderBillPay},
		)
	}
	if o.transfer != nil {
		methods = append(methods,
			models.PaymentMethod{Type: models.PaymentTypeBankTransfer, Name: "Bank Transfer", Description: "Send money to any bank account", Provider: models.ProviderTIPS},
			models.PaymentMethod{Type: models.PaymentTypeMobileTransfer, Name: "Mobile Money", Description: "Send money to a mobile wallet", Provider: models.ProviderTIPS},
			models.PaymentMethod{Type: models.PaymentTypeQRPayment, Name: "Scan to Pay", Description: "Pay a merchant by scanning a QR code", Provider: models.ProviderTIPS},
		)
	}
	if o.gov != nil {
		methods = append(methods,
			models.PaymentMethod{Type: models.PaymentTypeGovernment, Name: "Government Payments", Description: "Pay government bills by control number", Provider: models.ProviderGePG},
		)
	}
	return methods
}

// HealthCheck probes every constructed adapter. Failures are captured in the
// report, never returned; overall degrades if any adapter is unhealthy.
func (o *Orchestrator) HealthCheck(ctx context.Context) HealthReport {
	report := HealthReport{TenantID: o.tenantID, Overall: StatusHealthy, Adapters: []AdapterHealth{}}

	probe := func(provider string, check func(context.Context) error) {
		entry := AdapterHealth{Provider: provider, Status: StatusHealthy}
		if err := check(ctx); err != nil {
			entry.Status = StatusDegraded
			entry.Error = err.Error()
			report.Overall = StatusDegraded
		}
		report.Adapters = append(report.Adapters, entry)
	}

	if o.bill != nil {
		probe(models.ProviderBillPay, o.bill.HealthCheck)
	}
	if o.transfer != nil {
		probe(models.ProviderTIPS, o.transfer.HealthCheck)
	}
	if o.gov != nil {
		probe(models.ProviderGePG, o.gov.HealthCheck)
	}
	return report
}
