package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"balancestore/internal/handler/api"
	"balancestore/internal/handler/middleware"
	"balancestore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, catalogHandler, cartHandler, checkoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.SessionMiddleware(cfg.Cookie))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	cartHandler *api.CartHandler,
	checkoutHandler *api.CheckoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		catalogo := apiGroup.Group("/catalogo")
		{
			addRoutes(catalogo, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.Get},
			})
		}

		cart := apiGroup.Group("/cart")
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: cartHandler.Get},
				{Method: http.MethodPost, Path: "/items", Handler: cartHandler.AddItem},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: cartHandler.RemoveItem},
				{Method: http.MethodPost, Path: "/items/:id/increase", Handler: cartHandler.IncreaseItem},
				{Method: http.MethodPost, Path: "/items/:id/decrease", Handler: cartHandler.DecreaseItem},
				{Method: http.MethodPost, Path: "/coupon", Handler: cartHandler.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/coupon", Handler: cartHandler.RemoveCoupon},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/start", Handler: checkoutHandler.Start},
				{Method: http.MethodGet, Path: "/draft", Handler: checkoutHandler.GetDraft},
				{Method: http.MethodPatch, Path: "/draft", Handler: checkoutHandler.UpdateDraft},
				{Method: http.MethodPost, Path: "/guest", Handler: checkoutHandler.ContinueAsGuest},
				{Method: http.MethodPost, Path: "/submit", Handler: checkoutHandler.Submit},
				{Method: http.MethodGet, Path: "/receipt", Handler: checkoutHandler.GetReceipt},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
