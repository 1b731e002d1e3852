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

type CartHandler struct {
	cmds       commands.CartCommands
	couponCmds commands.CouponCommands
	q          queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, couponCmds commands.CouponCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, couponCmds: couponCmds, q: q}
}

// @Summary Get cart
// @Description Get the session cart with pricing and any applied coupon
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view := h.q.GetView(c.Request.Context(), middleware.GetSessionID(c))
	c.JSON(http.StatusOK, resdto.NewCartResponse(view))
}

// @Summary Add product to cart
// @Description Add a catalog product to the cart, clamping the quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	sid := middleware.GetSessionID(c)
	if _, err := h.cmds.Add(c.Request.Context(), sid, req.ProductID); err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Producto no encontrado", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}

// @Summary Remove cart item
// @Description Remove a line from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	h.cmds.Remove(c.Request.Context(), sid, c.Param("id"))
	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}

// @Summary Increase item quantity
// @Description Bump a line's quantity, clamped by stock and the per-item cap
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id}/increase [post]
func (h *CartHandler) IncreaseItem(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	h.cmds.Increase(c.Request.Context(), sid, c.Param("id"))
	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}

// @Summary Decrease item quantity
// @Description Lower a line's quantity, never below one
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id}/decrease [post]
func (h *CartHandler) DecreaseItem(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	h.cmds.Decrease(c.Request.Context(), sid, c.Param("id"))
	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}

// @Summary Apply coupon
// @Description Validate and apply a coupon code to the session cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	sid := middleware.GetSessionID(c)
	if _, err := h.couponCmds.Apply(c.Request.Context(), sid, req.Codigo); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, couponMessage(err), nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}

// @Summary Remove coupon
// @Description Remove the applied coupon from the session cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	h.couponCmds.Remove(c.Request.Context(), sid)
	c.JSON(http.StatusOK, resdto.NewCartResponse(h.q.GetView(c.Request.Context(), sid)))
}
