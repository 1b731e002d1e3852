package repository

import (
	"context"
	"encoding/json"
	"errors"

	"balancestore/internal/domain/cart"
	"balancestore/internal/infra"
	"balancestore/internal/infra/kvstore"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/readmodel"
)

type CartRepository struct {
	store kvstore.Store
}

func NewCartRepository(store kvstore.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Load restores the cart snapshot for a session. An absent or malformed
// snapshot yields an empty cart, never an error.
func (r *CartRepository) Load(ctx context.Context, sessionID string) *cart.Cart {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recCartItems))
	if err != nil {
		return cart.New()
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return cart.New()
	}
	return cart.Restore(items)
}

func (r *CartRepository) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to marshal cart snapshot", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, recCartItems), string(data)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist cart snapshot", err)
	}
	return nil
}

// SaveNotice replaces any pending add-to-cart confirmation, which restarts
// the dismiss window.
func (r *CartRepository) SaveNotice(ctx context.Context, sessionID string, n readmodel.CartNoticeRM) error {
	data, err := json.Marshal(n)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to marshal notice", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, recNotice), string(data)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist notice", err)
	}
	return nil
}

func (r *CartRepository) LoadNotice(ctx context.Context, sessionID string) (*readmodel.CartNoticeRM, error) {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recNotice))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	var n readmodel.CartNoticeRM
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil, nil
	}
	return &n, nil
}
