package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpay/internal/config"
	"memberpay/pkg/utils"
)

func testGateway(baseURL string) PaymentGateway {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPaystackGateway(config.GatewayConfig{
		BaseURL:   baseURL,
		SecretKey: "sk_test_secret",
	}, logger)
}

func TestVerify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/REF1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"amount": 9500000,
				"reference": "REF1",
				"paid_at": "2026-08-30T10:00:00.000Z",
				"channel": "card",
				"ip_address": "203.0.113.9",
				"status": "success"
			}
		}`))
	}))
	defer server.Close()

	result, err := testGateway(server.URL).Verify(context.Background(), "REF1")
	require.NoError(t, err)

	assert.Equal(t, int64(9500000), result.AmountMinor)
	assert.Equal(t, "REF1", result.Reference)
	assert.Equal(t, "card", result.Channel)
	assert.Equal(t, "success", result.Status)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(result.Raw, &raw))
	assert.Equal(t, "REF1", raw["reference"])
}

func TestVerify_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer server.Close()

	_, err := testGateway(server.URL).Verify(context.Background(), "UNKNOWN")
	assert.ErrorIs(t, err, utils.ErrGateway)
}

func TestVerify_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testGateway(server.URL).Verify(context.Background(), "REF1")
	assert.ErrorIs(t, err, utils.ErrGateway)
}

func TestVerify_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testGateway(server.URL).Verify(context.Background(), "REF1")
	assert.ErrorIs(t, err, utils.ErrGateway)
}

func TestVerify_ReferenceIsPathEscaped(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": true, "data": {"amount": 100, "status": "success"}}`))
	}))
	defer server.Close()

	_, err := testGateway(server.URL).Verify(context.Background(), "ref/with spaces")
	require.NoError(t, err)
	assert.Equal(t, "/transaction/verify/ref%2Fwith%20spaces", gotPath)
}
