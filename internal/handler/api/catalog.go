package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "balancestore/internal/handler/dto/response"
	"balancestore/internal/handler/httperr"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List catalog
// @Description List normalized products with optional filters and sorting
// @Tags catalog
// @Produce json
// @Param categoria query string false "Category filter (todas disables it)"
// @Param descuento query bool false "Only discounted products"
// @Param orden query string false "Sort order: price_desc (default), price_asc, name_asc, name_desc"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.CatalogResponse
// @Router /catalogo [get]
func (h *CatalogHandler) List(c *gin.Context) {
	filter := queries.CatalogFilter{
		Category: c.Query("categoria"),
		Sort:     c.Query("orden"),
	}
	if v := c.Query("descuento"); v != "" {
		filter.DiscountOnly, _ = strconv.ParseBool(v)
	}
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Limit = iv
		}
	}

	products := h.q.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, resdto.NewCatalogResponse(products))
}

// @Summary Get product
// @Description Get one normalized product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /catalogo/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Producto no encontrado", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewProductResponse(*product))
}
