package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"balancestore/internal/domain/checkout"
	"balancestore/internal/pkg/config"
)

const defaultBillingError = "No se pudo guardar la boleta"

type BillingGateway struct {
	client  *http.Client
	baseURL string
}

func NewBillingGateway(cfg config.BackendConfig) *BillingGateway {
	return &BillingGateway{
		client:  newHTTPClient(cfg),
		baseURL: cfg.BaseURL,
	}
}

// Record submits the boleta. It returns an outcome instead of an error: a
// failed record never blocks checkout completion.
func (g *BillingGateway) Record(ctx context.Context, receipt checkout.Receipt) checkout.RecordOutcome {
	payload, err := json.Marshal(receipt)
	if err != nil {
		return checkout.RecordFailed(defaultBillingError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/boletas", bytes.NewReader(payload))
	if err != nil {
		return checkout.RecordFailed(defaultBillingError)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return checkout.RecordFailed(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return checkout.RecordFailed(remoteMessage(resp.Body, defaultBillingError))
	}

	return checkout.Recorded()
}

// remoteMessage surfaces the server-provided text, falling back to a
// default when the body is empty or unreadable.
func remoteMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return fallback
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return fallback
	}
	return msg
}
