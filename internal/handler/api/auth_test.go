//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"balancestore/internal/handler/api"
	resdto "balancestore/internal/handler/dto/response"
	"balancestore/internal/pkg/config"
	"balancestore/internal/pkg/cookie"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type fakeAuthCommands struct {
	loginResult *commands.LoginResult
	loginErr    error
	regUser     *readmodel.AuthUserRM
	regErr      error
	current     *readmodel.AuthUserRM
	loggedOut   bool
}

func (f *fakeAuthCommands) Login(_ context.Context, _, _, _ string) (*commands.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthCommands) Register(_ context.Context, _, _, _, _ string) (*readmodel.AuthUserRM, error) {
	return f.regUser, f.regErr
}

func (f *fakeAuthCommands) Logout(_ context.Context, _ string) { f.loggedOut = true }

func (f *fakeAuthCommands) CurrentUser(_ context.Context, _ string) *readmodel.AuthUserRM {
	return f.current
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *fakeAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		c.Next()
	})

	s.cmds = &fakeAuthCommands{}
	handler := api.NewAuthHandler(s.cmds, config.NewTestConfig())

	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", handler.Me)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin() {
	ana := readmodel.AuthUserRM{Username: "ana", NombreCompleto: "Ana Rojas", Email: "ana@example.com"}

	s.Run("success: sets the token cookie and returns the user", func() {
		s.cmds.loginResult = &commands.LoginResult{User: ana, Token: "token-123"}

		rec := s.perform(http.MethodPost, "/auth/login", map[string]string{
			"identifier": "ana",
			"password":   "secret",
		})
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.LoginResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("ana", resp.User.Username)
		s.Equal("Ana Rojas", resp.User.NombreCompleto)

		setCookie := rec.Header().Get("Set-Cookie")
		s.Contains(setCookie, cookie.TokenCookieName+"=token-123")
		s.Contains(strings.ToLower(setCookie), "httponly")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		rec := s.perform(http.MethodPost, "/auth/login", map[string]string{"identifier": "ana"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 on rejected credentials", func() {
		s.cmds.loginResult = nil
		s.cmds.loginErr = assert.AnError
		rec := s.perform(http.MethodPost, "/auth/login", map[string]string{
			"identifier": "ana",
			"password":   "wrong",
		})
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Credenciales inválidas")
	})

	s.Run("error: 401 surfaces the remote service text", func() {
		s.cmds.loginResult = nil
		s.cmds.loginErr = errs.Mark(errs.WithHint(errs.New("rejected"), "Cuenta bloqueada temporalmente"), errs.ErrInvalidCredentials)
		rec := s.perform(http.MethodPost, "/auth/login", map[string]string{
			"identifier": "ana",
			"password":   "wrong",
		})
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Cuenta bloqueada temporalmente")
		s.NotContains(rec.Body.String(), "Credenciales inválidas")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("success: 201 Created with the new user", func() {
		s.cmds.regUser = &readmodel.AuthUserRM{Username: "nueva", NombreCompleto: "Nueva Persona", Email: "n@example.com"}

		rec := s.perform(http.MethodPost, "/auth/register", map[string]string{
			"username": "nueva",
			"nombre":   "Nueva Persona",
			"email":    "n@example.com",
			"password": "secret6",
		})
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.UserResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("nueva", resp.Username)
	})

	s.Run("error: 400 on short password", func() {
		rec := s.perform(http.MethodPost, "/auth/register", map[string]string{
			"username": "nueva",
			"nombre":   "Nueva Persona",
			"email":    "n@example.com",
			"password": "corto",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 when the remote service rejects", func() {
		s.cmds.regUser = nil
		s.cmds.regErr = assert.AnError
		rec := s.perform(http.MethodPost, "/auth/register", map[string]string{
			"username": "nueva",
			"nombre":   "Nueva Persona",
			"email":    "n@example.com",
			"password": "secret6",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "No se pudo registrar el usuario")
	})

	s.Run("error: 400 surfaces the remote service text", func() {
		s.cmds.regUser = nil
		s.cmds.regErr = errs.Mark(errs.WithHint(errs.New("conflict"), "El nombre de usuario ya existe"), errs.ErrRegistrationFailed)
		rec := s.perform(http.MethodPost, "/auth/register", map[string]string{
			"username": "nueva",
			"nombre":   "Nueva Persona",
			"email":    "n@example.com",
			"password": "secret6",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "El nombre de usuario ya existe")
		s.NotContains(rec.Body.String(), "No se pudo registrar el usuario")
	})
}

func (s *AuthHandlerTestSuite) TestLogoutAndMe() {
	s.Run("logout clears the record and the cookie", func() {
		rec := s.perform(http.MethodPost, "/auth/logout", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.True(s.cmds.loggedOut)
		s.Contains(rec.Header().Get("Set-Cookie"), cookie.TokenCookieName+"=")
	})

	s.Run("me returns the session's account", func() {
		s.cmds.current = &readmodel.AuthUserRM{Username: "ana", NombreCompleto: "Ana Rojas", Email: "ana@example.com"}
		rec := s.perform(http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.UserResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("ana", resp.Username)
	})

	s.Run("me without a session record is unauthorized", func() {
		s.cmds.current = nil
		rec := s.perform(http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
