package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberpay/internal/config"
)

func testStorage(baseURL string) FileStorage {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHTTPFileStorage(config.StorageConfig{
		BaseURL: baseURL,
		APIKey:  "storage-key",
	}, logger)
}

func TestUpload_SendsMultipartAndReturnsSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Equal(t, "Bearer storage-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "receipts", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "receipt.jpg", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url": "https://files.example/receipts/receipt.jpg", "public_id": "receipts/receipt"}`))
	}))
	defer server.Close()

	url, err := testStorage(server.URL).Upload(context.Background(), []byte("jpeg-bytes"), "receipts", "receipt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/receipts/receipt.jpg", url)
}

func TestUpload_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testStorage(server.URL).Upload(context.Background(), []byte("x"), "receipts", "r.jpg")
	assert.Error(t, err)
}

func TestDestroy(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodDelete, r.Method)
	}))
	defer server.Close()

	err := testStorage(server.URL).Destroy(context.Background(), "receipts/old-receipt")
	require.NoError(t, err)
	assert.Equal(t, "/destroy/receipts%2Fold-receipt", gotPath)
}
