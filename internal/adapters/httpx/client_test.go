package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_PostDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient("test", srv.URL, WithHeader("X-Api-Key", "secret"))

	var out struct {
		Status string `json:"status"`
	}
	err := client.Post(context.Background(), "/v1/pay", map[string]string{"a": "b"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "ok", out.Status)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad biller"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient("test", srv.URL)
	err := client.Get(context.Background(), "/v1/billers", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient("test", srv.URL)
	for i := 0; i < 5; i++ {
		err := client.Get(context.Background(), "/v1/health", nil)
		assert.Error(t, err)
	}

	err := client.Get(context.Background(), "/v1/health", nil)
	assert.ErrorContains(t, err, "circuit breaker is open")
}
