package gepg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"benki/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestAdapter(url string) *Adapter {
	return New(config.GePGCredentials{
		BaseURL:    url,
		SPCode:     "SP108",
		SystemID:   "SYS-1",
		PrivateKey: "pk",
	})
}

func TestAdapter_LookupControlNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/bills/991234567890", r.URL.Path)
		assert.Equal(t, "SYS-1", r.Header.Get("X-System-Id"))
		w.Write([]byte(`{"control_number":"991234567890","sp_code":"SP108","description":"Land rent","payer_name":"JOHN DOE","amount":52000,"currency":"TZS","payable":true}`))
	}))
	defer srv.Close()

	bill, err := newTestAdapter(srv.URL).LookupControlNumber(context.Background(), "991234567890")
	assert.NoError(t, err)
	assert.True(t, bill.Payable)
	assert.Equal(t, 52000.0, bill.Amount)
}

func TestAdapter_PayBill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body payBillRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SP108", body.SPCode)
		assert.Equal(t, "991234567890", body.ControlNumber)

		w.Write([]byte(`{"status":"SUCCESS","transaction_id":"GEPG-7","receipt_number":"RCT-100","message":"paid"}`))
	}))
	defer srv.Close()

	result, err := newTestAdapter(srv.URL).PayBill(context.Background(), "991234567890", "0150001234567", "JOHN DOE", 52000)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "RCT-100", result.Extra["receipt_number"])
}

func TestAdapter_VerifyReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/receipts/RCT-100", r.URL.Path)
		w.Write([]byte(`{"receipt_number":"RCT-100","control_number":"991234567890","amount":52000,"paid_at":"2025-06-01T10:00:00Z","verified":true}`))
	}))
	defer srv.Close()

	receipt, err := newTestAdapter(srv.URL).VerifyReceipt(context.Background(), "RCT-100")
	assert.NoError(t, err)
	assert.True(t, receipt.Verified)
}
