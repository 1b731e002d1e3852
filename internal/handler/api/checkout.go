package api

import (
	"errors"
	"net/http"

	reqdto "balancestore/internal/handler/dto/request"
	resdto "balancestore/internal/handler/dto/response"
	"balancestore/internal/handler/httperr"
	"balancestore/internal/handler/middleware"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Start checkout
// @Description Open a checkout session for the current cart
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Router /checkout/start [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	draft, err := h.cmds.Start(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusConflict, err, checkoutMessage(err), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDraftResponse(draft))
}

// @Summary Get checkout draft
// @Description Get the in-progress checkout draft
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/draft [get]
func (h *CheckoutHandler) GetDraft(c *gin.Context) {
	draft, err := h.q.GetDraft(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout no iniciado", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDraftResponse(draft))
}

// @Summary Update checkout draft
// @Description Patch customer, address, payment method, or card details
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.DraftUpdateRequest true "Draft update"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/draft [patch]
func (h *CheckoutHandler) UpdateDraft(c *gin.Context) {
	var req reqdto.DraftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	update, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, checkoutMessage(err), nil)
		return
	}

	draft, err := h.cmds.UpdateDraft(c.Request.Context(), middleware.GetSessionID(c), update)
	if err != nil {
		if errors.Is(err, errs.ErrCheckoutNotStarted) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout no iniciado", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, checkoutMessage(err), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDraftResponse(draft))
}

// @Summary Continue as guest
// @Description Resolve the account decision by continuing without an account
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/guest [post]
func (h *CheckoutHandler) ContinueAsGuest(c *gin.Context) {
	draft, err := h.cmds.AllowGuest(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, errs.ErrCheckoutNotStarted) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout no iniciado", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusConflict, err, checkoutMessage(err), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDraftResponse(draft))
}

// @Summary Submit checkout
// @Description Validate the draft, record the boleta, and complete the purchase
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	result, err := h.cmds.Submit(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCheckoutNotStarted):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout no iniciado", nil)
		case errors.Is(err, errs.ErrAccountDecisionNeeded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Decide si deseas continuar como invitado o iniciar sesión", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, checkoutMessage(err), nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.NewSubmitResponse(result))
}

// @Summary Get receipt
// @Description Get the boleta for the last completed purchase
// @Tags checkout
// @Produce json
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 404 {object} map[string]string
// @Router /checkout/receipt [get]
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	view, err := h.q.GetReceipt(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Boleta no encontrada", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewReceiptResponse(view))
}
