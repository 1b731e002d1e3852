package api

import (
	"net/http"
	"time"

	reqdto "balancestore/internal/handler/dto/request"
	resdto "balancestore/internal/handler/dto/response"
	"balancestore/internal/handler/middleware"
	"balancestore/internal/pkg/config"
	"balancestore/internal/pkg/cookie"
	"balancestore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds          commands.AuthCommands
	cookieCfg     config.CookieConfig
	tokenDuration time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	return &AuthHandler{
		cmds:          cmds,
		cookieCfg:     cfg.Cookie,
		tokenDuration: duration,
	}
}

// @Summary User login
// @Description Login against the remote user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), middleware.GetSessionID(c), req.Identifier, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": authMessage(err, "Credenciales inválidas"),
		})
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, result.Token, h.tokenDuration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		User: resdto.NewUserResponse(result.User),
	})
}

// @Summary User registration
// @Description Register a new account on the remote user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	user, err := h.cmds.Register(c.Request.Context(), req.Username, req.Nombre, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": authMessage(err, "No se pudo registrar el usuario"),
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.NewUserResponse(*user))
}

// @Summary User logout
// @Description Clear the session's account record and token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cmds.Logout(c.Request.Context(), middleware.GetSessionID(c))
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the account attached to this session, if any
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.cmds.CurrentUser(c.Request.Context(), middleware.GetSessionID(c))
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No hay sesión iniciada",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.NewUserResponse(*user))
}
