package queries

import (
	"context"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/domain/pricing"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/usecase/readmodel"
)

// CartView is everything the storefront shows for the cart: the ordered
// lines, the applied coupon, the boleta breakdown, the simplified display
// total, and any pending add-to-cart notice.
type CartView struct {
	Items        []cart.Item
	Count        int
	Coupon       *coupon.Applied
	Pricing      pricing.Breakdown
	DisplayTotal float64
	Notice       *readmodel.CartNoticeRM
}

type CartReadStore interface {
	Load(ctx context.Context, sessionID string) *cart.Cart
	LoadNotice(ctx context.Context, sessionID string) (*readmodel.CartNoticeRM, error)
}

type CouponReadStore interface {
	Load(ctx context.Context, sessionID string) *coupon.Applied
}

type CartQueries interface {
	GetView(ctx context.Context, sessionID string) *CartView
}

type cartQueriesImpl struct {
	cartStore   CartReadStore
	couponStore CouponReadStore
	calculator  *pricing.Calculator
	clock       clock.Clock
}

func NewCartQueries(
	cartStore CartReadStore,
	couponStore CouponReadStore,
	calculator *pricing.Calculator,
	clock clock.Clock,
) CartQueries {
	return &cartQueriesImpl{
		cartStore:   cartStore,
		couponStore: couponStore,
		calculator:  calculator,
		clock:       clock,
	}
}

func (q *cartQueriesImpl) GetView(ctx context.Context, sessionID string) *CartView {
	c := q.cartStore.Load(ctx, sessionID)
	applied := q.couponStore.Load(ctx, sessionID)

	var percentOff float64
	if applied != nil {
		percentOff = applied.Porcentaje
	}

	view := &CartView{
		Items:        c.Items(),
		Count:        c.Count(),
		Coupon:       applied,
		Pricing:      q.calculator.Calculate(c.Total(), percentOff),
		DisplayTotal: q.calculator.DisplayTotal(c.Total(), applied != nil),
	}

	if notice, err := q.cartStore.LoadNotice(ctx, sessionID); err == nil && notice != nil {
		if q.clock.Now().UnixMilli() < notice.ExpiresAt {
			view.Notice = notice
		}
	}

	return view
}
