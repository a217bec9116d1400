package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"memberpay/internal/config"
	"memberpay/pkg/utils"
)

// VerifyResult is the canonical transaction detail returned by the
// payment provider for one reference. Amount is in minor currency
// units; callers divide by 100. Raw holds the provider's data object
// exactly as received, for the ledger's audit column.
type VerifyResult struct {
	AmountMinor int64
	Reference   string
	PaidAt      string
	Channel     string
	IPAddress   string
	Status      string
	Raw         json.RawMessage
}

// PaymentGateway verifies a payment reference against the provider.
// The provider is the source of truth for success/failure; a
// transport-level failure maps to utils.ErrGateway and is never
// retried here.
type PaymentGateway interface {
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

type paystackGateway struct {
	cfg    config.GatewayConfig
	client *http.Client
	logger *logrus.Logger
}

func NewPaystackGateway(cfg config.GatewayConfig, logger *logrus.Logger) PaymentGateway {
	return &paystackGateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type verifyEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type verifyData struct {
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	PaidAt    string `json:"paid_at"`
	Channel   string `json:"channel"`
	IPAddress string `json:"ip_address"`
	Status    string `json:"status"`
}

func (g *paystackGateway) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", g.cfg.BaseURL, url.PathEscape(reference))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGateway, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithError(err).WithField("reference", reference).
			Warn("gateway verification transport failure")
		return nil, fmt.Errorf("%w: %v", utils.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.WithFields(logrus.Fields{
			"reference":   reference,
			"status_code": resp.StatusCode,
		}).Warn("gateway verification rejected")
		return nil, fmt.Errorf("%w: unexpected status %d", utils.ErrGateway, resp.StatusCode)
	}

	var envelope verifyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", utils.ErrGateway, err)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("%w: %s", utils.ErrGateway, envelope.Message)
	}

	var data verifyData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", utils.ErrGateway, err)
	}

	return &VerifyResult{
		AmountMinor: data.Amount,
		Reference:   data.Reference,
		PaidAt:      data.PaidAt,
		Channel:     data.Channel,
		IPAddress:   data.IPAddress,
		Status:      data.Status,
		Raw:         envelope.Data,
	}, nil
}
