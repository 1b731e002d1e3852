package repository

import (
	"context"
	"encoding/json"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/checkout"
	"balancestore/internal/infra"
	"balancestore/internal/infra/kvstore"
)

// CheckoutRepository persists the in-progress draft plus the independent
// boleta records written at submit. Each record is its own key; a failure
// writing one never prevents writing the others.
type CheckoutRepository struct {
	store kvstore.Store
}

func NewCheckoutRepository(store kvstore.Store) *CheckoutRepository {
	return &CheckoutRepository{store: store}
}

// LoadDraft returns the session's draft, or nil when checkout has not
// started (or the snapshot is malformed).
func (r *CheckoutRepository) LoadDraft(ctx context.Context, sessionID string) *checkout.Draft {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recDraft))
	if err != nil {
		return nil
	}

	var draft checkout.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil
	}
	return &draft
}

func (r *CheckoutRepository) SaveDraft(ctx context.Context, sessionID string, draft *checkout.Draft) error {
	return r.setJSON(ctx, sessionID, recDraft, draft, "checkout draft")
}

func (r *CheckoutRepository) SaveCustomer(ctx context.Context, sessionID string, c checkout.CustomerInfo) error {
	return r.setJSON(ctx, sessionID, recCustomer, c, "customer record")
}

func (r *CheckoutRepository) SaveAddress(ctx context.Context, sessionID string, a checkout.Address) error {
	return r.setJSON(ctx, sessionID, recAddress, a, "address record")
}

func (r *CheckoutRepository) SaveMethod(ctx context.Context, sessionID string, m checkout.PaymentMethod) error {
	if err := r.store.Set(ctx, sessionKey(sessionID, recPaymentMethod), string(m)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist payment method", err)
	}
	return nil
}

func (r *CheckoutRepository) SavePaymentDetails(ctx context.Context, sessionID string, d checkout.PaymentDetails) error {
	return r.setJSON(ctx, sessionID, recPaymentDetails, d, "payment details")
}

func (r *CheckoutRepository) SavePurchasedItems(ctx context.Context, sessionID string, items []cart.Item) error {
	return r.setJSON(ctx, sessionID, recPurchasedItems, items, "purchased items snapshot")
}

func (r *CheckoutRepository) SaveFolio(ctx context.Context, sessionID, folio string) error {
	if err := r.store.Set(ctx, sessionKey(sessionID, recFolio), folio); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist folio", err)
	}
	return nil
}

func (r *CheckoutRepository) LoadCustomer(ctx context.Context, sessionID string) *checkout.CustomerInfo {
	var c checkout.CustomerInfo
	if !r.getJSON(ctx, sessionID, recCustomer, &c) {
		return nil
	}
	return &c
}

func (r *CheckoutRepository) LoadAddress(ctx context.Context, sessionID string) *checkout.Address {
	var a checkout.Address
	if !r.getJSON(ctx, sessionID, recAddress, &a) {
		return nil
	}
	return &a
}

func (r *CheckoutRepository) LoadMethod(ctx context.Context, sessionID string) string {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recPaymentMethod))
	if err != nil {
		return ""
	}
	return raw
}

func (r *CheckoutRepository) LoadPurchasedItems(ctx context.Context, sessionID string) []cart.Item {
	var items []cart.Item
	if !r.getJSON(ctx, sessionID, recPurchasedItems, &items) {
		return nil
	}
	return items
}

func (r *CheckoutRepository) LoadFolio(ctx context.Context, sessionID string) string {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recFolio))
	if err != nil {
		return ""
	}
	return raw
}

func (r *CheckoutRepository) setJSON(ctx context.Context, sessionID, record string, v any, what string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to marshal "+what, err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, record), string(data)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist "+what, err)
	}
	return nil
}

func (r *CheckoutRepository) getJSON(ctx context.Context, sessionID, record string, out any) bool {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, record))
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
