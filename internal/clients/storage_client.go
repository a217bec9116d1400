package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"memberpay/internal/config"
)

// FileStorage is the blob-storage collaborator used for receipts,
// passports, certificates and avatars. Only the returned secure URL
// participates in core logic.
type FileStorage interface {
	Upload(ctx context.Context, content []byte, folder, name string) (string, error)
	Destroy(ctx context.Context, publicID string) error
}

type httpFileStorage struct {
	cfg    config.StorageConfig
	client *http.Client
	logger *logrus.Logger
}

func NewHTTPFileStorage(cfg config.StorageConfig, logger *logrus.Logger) FileStorage {
	return &httpFileStorage{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

func (s *httpFileStorage) Upload(ctx context.Context, content []byte, folder, name string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, payload)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", err
	}
	return uploaded.SecureURL, nil
}

func (s *httpFileStorage) Destroy(ctx context.Context, publicID string) error {
	endpoint := s.cfg.BaseURL + "/destroy/" + url.PathEscape(publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithFields(logrus.Fields{
			"public_id":   publicID,
			"status_code": resp.StatusCode,
		}).Warn("storage destroy failed")
		return fmt.Errorf("storage destroy failed: status %d", resp.StatusCode)
	}
	return nil
}
