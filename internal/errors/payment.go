package errors

var (
	ErrBillPaymentsUnavailable = &DomainError{
		Code:    "BILL_PAYMENTS_UNAVAILABLE",
		Message: "Bill payments not available for this tenant",
	}
	ErrAirtimeUnavailable = &DomainError{
		Code:    "AIRTIME_UNAVAILABLE",
		Message: "Airtime purchases not available for this tenant",
	}
	ErrBankTransfersUnavailable = &DomainError{
		Code:    "BANK_TRANSFERS_UNAVAILABLE",
		Message: "Bank transfers not available for this tenant",
	}
	ErrMobileTransfersUnavailable = &DomainError{
		Code:    "MOBILE_TRANSFERS_UNAVAILABLE",
		Message: "Mobile money transfers not available for this tenant",
	}
	ErrQRPaymentsUnavailable = &DomainError{
		Code:    "QR_PAYMENTS_UNAVAILABLE",
		Message: "QR payments not available for this tenant",
	}
	ErrGovernmentPaymentsUnavailable = &DomainError{
		Code:    "GOVERNMENT_PAYMENTS_UNAVAILABLE",
		Message: "Government payments not available for this tenant",
	}
	ErrStatusCheckUnavailable = &DomainError{
		Code:    "STATUS_CHECK_UNAVAILABLE",
		Message: "Transaction status checks not available for this tenant",
	}
	ErrTenantNotFound = &DomainError{
		Code:    "TENANT_NOT_FOUND",
		Message: "tenant configuration not found",
	}
)
