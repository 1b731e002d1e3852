package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"balancestore/internal/infra"
	"balancestore/internal/pkg/config"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/readmodel"
)

const (
	defaultLoginError    = "Credenciales inválidas"
	defaultRegisterError = "No se pudo registrar el usuario"
)

// remoteUser is the account payload the user service returns.
type remoteUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type RegisterPayload struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UsersGateway struct {
	client  *http.Client
	baseURL string
}

func NewUsersGateway(cfg config.BackendConfig) *UsersGateway {
	return &UsersGateway{
		client:  newHTTPClient(cfg),
		baseURL: cfg.BaseURL,
	}
}

// Register creates an account on the remote service. The password is
// forwarded verbatim; account security is the remote service's concern.
func (g *UsersGateway) Register(ctx context.Context, username, name, email, password string) (*readmodel.AuthUserRM, error) {
	payload := RegisterPayload{Username: username, Name: name, Email: email, Password: password}
	return g.post(ctx, "/api/users/register", payload, defaultRegisterError)
}

func (g *UsersGateway) Login(ctx context.Context, identifier, password string) (*readmodel.AuthUserRM, error) {
	return g.post(ctx, "/api/users/login", loginPayload{Identifier: identifier, Password: password}, defaultLoginError)
}

func (g *UsersGateway) post(ctx context.Context, path string, payload any, fallback string) (*readmodel.AuthUserRM, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "failed to marshal user payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "failed to build user request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The service's own text is the message shown to the visitor.
		msg := remoteMessage(resp.Body, fallback)
		return nil, errs.WithHint(infra.WrapRepoErr(infra.KindRemoteFailure, msg, nil), msg)
	}

	var user remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, infra.WrapRepoErr(infra.KindRemoteFailure, "failed to decode user response", err)
	}
	return &readmodel.AuthUserRM{
		Username:       user.Username,
		NombreCompleto: user.Name,
		Email:          user.Email,
	}, nil
}
