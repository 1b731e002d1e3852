package queries

import (
	"context"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/checkout"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/domain/pricing"
	"balancestore/internal/pkg/errs"
)

// ReceiptView is the boleta as shown after a completed purchase, rebuilt
// from the records written at submit.
type ReceiptView struct {
	Folio    string
	Customer checkout.CustomerInfo
	Address  checkout.Address
	Method   string
	Items    []cart.Item
	Coupon   *coupon.Applied
	Pricing  pricing.Breakdown
}

type CheckoutReadStore interface {
	LoadDraft(ctx context.Context, sessionID string) *checkout.Draft
	LoadCustomer(ctx context.Context, sessionID string) *checkout.CustomerInfo
	LoadAddress(ctx context.Context, sessionID string) *checkout.Address
	LoadMethod(ctx context.Context, sessionID string) string
	LoadPurchasedItems(ctx context.Context, sessionID string) []cart.Item
	LoadFolio(ctx context.Context, sessionID string) string
}

type CheckoutQueries interface {
	GetDraft(ctx context.Context, sessionID string) (*checkout.Draft, error)
	// GetReceipt rebuilds the boleta from the persisted records. Totals are
	// recomputed from the purchased items rather than stored.
	GetReceipt(ctx context.Context, sessionID string) (*ReceiptView, error)
}

type checkoutQueriesImpl struct {
	checkoutStore CheckoutReadStore
	couponStore   CouponReadStore
	calculator    *pricing.Calculator
}

func NewCheckoutQueries(
	checkoutStore CheckoutReadStore,
	couponStore CouponReadStore,
	calculator *pricing.Calculator,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		checkoutStore: checkoutStore,
		couponStore:   couponStore,
		calculator:    calculator,
	}
}

func (q *checkoutQueriesImpl) GetDraft(ctx context.Context, sessionID string) (*checkout.Draft, error) {
	draft := q.checkoutStore.LoadDraft(ctx, sessionID)
	if draft == nil {
		return nil, errs.ErrCheckoutNotStarted
	}
	return draft, nil
}

func (q *checkoutQueriesImpl) GetReceipt(ctx context.Context, sessionID string) (*ReceiptView, error) {
	folio := q.checkoutStore.LoadFolio(ctx, sessionID)
	if folio == "" {
		return nil, errs.ErrCheckoutNotStarted
	}

	view := &ReceiptView{
		Folio:  folio,
		Method: q.checkoutStore.LoadMethod(ctx, sessionID),
		Items:  q.checkoutStore.LoadPurchasedItems(ctx, sessionID),
		Coupon: q.couponStore.Load(ctx, sessionID),
	}
	if c := q.checkoutStore.LoadCustomer(ctx, sessionID); c != nil {
		view.Customer = *c
	}
	if a := q.checkoutStore.LoadAddress(ctx, sessionID); a != nil {
		view.Address = *a
	}

	var subtotal float64
	for _, item := range view.Items {
		subtotal += item.Price * float64(item.Qty)
	}

	var percentOff float64
	if view.Coupon != nil {
		percentOff = view.Coupon.Porcentaje
	}
	view.Pricing = q.calculator.Calculate(subtotal, percentOff)

	return view, nil
}
