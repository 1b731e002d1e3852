package response

import (
	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/domain/pricing"
	"balancestore/internal/usecase/queries"
)

type CartItemResponse struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
	Qty   int     `json:"qty"`
}

// PricingResponse keys mirror the boleta line names.
type PricingResponse struct {
	Subtotal  float64 `json:"subtotal"`
	Descuento int64   `json:"descuento"`
	Neto      float64 `json:"neto"`
	IVA       int64   `json:"iva"`
	Total     float64 `json:"total"`
}

type CouponResponse struct {
	Codigo     string  `json:"codigo"`
	Porcentaje float64 `json:"porcentaje"`
}

type NoticeResponse struct {
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expiresAt"`
}

type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	Count        int                `json:"count"`
	Cupon        *CouponResponse    `json:"cupon,omitempty"`
	Pricing      PricingResponse    `json:"pricing"`
	DisplayTotal float64            `json:"displayTotal"`
	Notice       *NoticeResponse    `json:"notice,omitempty"`
}

func NewCartItemResponses(items []cart.Item) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemResponse{
			ID:    item.ID,
			Title: item.Title,
			Price: item.Price,
			Image: item.Image,
			Qty:   item.Qty,
		})
	}
	return out
}

func NewPricingResponse(b pricing.Breakdown) PricingResponse {
	return PricingResponse{
		Subtotal:  b.Subtotal,
		Descuento: b.DiscountAmount,
		Neto:      b.Net,
		IVA:       b.Tax,
		Total:     b.GrandTotal,
	}
}

func NewCouponResponse(applied *coupon.Applied) *CouponResponse {
	if applied == nil {
		return nil
	}
	return &CouponResponse{Codigo: applied.Codigo, Porcentaje: applied.Porcentaje}
}

func NewCartResponse(view *queries.CartView) CartResponse {
	resp := CartResponse{
		Items:        NewCartItemResponses(view.Items),
		Count:        view.Count,
		Cupon:        NewCouponResponse(view.Coupon),
		Pricing:      NewPricingResponse(view.Pricing),
		DisplayTotal: view.DisplayTotal,
	}
	if view.Notice != nil {
		resp.Notice = &NoticeResponse{
			Message:   view.Notice.Message,
			ExpiresAt: view.Notice.ExpiresAt,
		}
	}
	return resp
}
