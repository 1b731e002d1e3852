// Package gateway holds the HTTP clients for the remote storefront
// backend: catalog, boletas, and user accounts. Contracts are JSON over
// HTTP; shapes follow what the service actually returns, envelope or not.
package gateway

import (
	"net/http"

	"balancestore/internal/pkg/config"
)

func newHTTPClient(cfg config.BackendConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}
