package billpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"benki/internal/config"
	"benki/internal/models"

	"github.com/stretchr/testify/assert"
)

func newTestAdapter(url string) *Adapter {
	return New(config.BillPayCredentials{
		BaseURL:   url,
		VendorID:  "VND-1",
		APIKey:    "key",
		APISecret: "secret",
	})
}

func TestAdapter_GetBillers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/billers", r.URL.Path)
		assert.Equal(t, "utility", r.URL.Query().Get("category"))
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{"billers":[{"code":"LUKU","name":"LUKU Prepaid","category":"utility","currency":"TZS"}]}`))
	}))
	defer srv.Close()

	billers, err := newTestAdapter(srv.URL).GetBillers(context.Background(), "utility")
	assert.NoError(t, err)
	assert.Len(t, billers, 1)
	assert.Equal(t, "LUKU", billers[0].Code)
}

func TestAdapter_PayBill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments", r.URL.Path)

		var body payBillRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "VND-1", body.VendorID)
		assert.Equal(t, "LUKU", body.BillerCode)
		assert.NotEmpty(t, body.Reference)

		w.Write([]byte(`{"status":"SUCCESS","transaction_id":"TX-9","message":"ok"}`))
	}))
	defer srv.Close()

	result, err := newTestAdapter(srv.URL).PayBill(context.Background(), billRequestFixture())
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "TX-9", result.TransactionID)
	assert.Equal(t, ProviderName, result.Provider)
	assert.NotEmpty(t, result.Reference)
}

func TestAdapter_PayBill_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unknown biller"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).PayBill(context.Background(), billRequestFixture())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pay bill")
}

func TestAdapter_HealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/health", r.URL.Path)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(srv.URL).HealthCheck(context.Background()))
}

func billRequestFixture() models.BillPaymentRequest {
	return models.BillPaymentRequest{
		BillerCode:       "LUKU",
		AccountReference: "43210987",
		Amount:           10000,
		Currency:         "TZS",
		SourceAccount:    "0150001234567",
	}
}
