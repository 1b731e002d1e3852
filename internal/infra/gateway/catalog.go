package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"balancestore/internal/domain/catalog"
	"balancestore/internal/infra"
	"balancestore/internal/pkg/config"
)

type CatalogGateway struct {
	client  *http.Client
	baseURL string
}

func NewCatalogGateway(cfg config.BackendConfig) *CatalogGateway {
	return &CatalogGateway{
		client:  newHTTPClient(cfg),
		baseURL: cfg.BaseURL,
	}
}

// catalogEnvelope is the preferred response shape; older deployments
// return a bare product array instead.
type catalogEnvelope struct {
	TotalProducts int                  `json:"total_products"`
	Products      []catalog.RawProduct `json:"products"`
}

// Fetch returns the raw catalog records. Callers substitute an empty
// catalog on error; the fetch is never load-bearing.
func (g *CatalogGateway) Fetch(ctx context.Context) ([]catalog.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/productos", nil)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "failed to build catalog request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "catalog request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "catalog returned "+resp.Status, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "failed to read catalog response", err)
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Products != nil {
		return envelope.Products, nil
	}

	var bare []catalog.RawProduct
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "unrecognized catalog response shape", err)
	}
	return bare, nil
}
