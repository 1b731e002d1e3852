package repository

import (
	"context"
	"encoding/json"

	"balancestore/internal/domain/coupon"
	"balancestore/internal/infra"
	"balancestore/internal/infra/kvstore"
)

type CouponRepository struct {
	store kvstore.Store
}

func NewCouponRepository(store kvstore.Store) *CouponRepository {
	return &CouponRepository{store: store}
}

// Load returns the applied coupon, or nil when none is in effect. A
// malformed record counts as none.
func (r *CouponRepository) Load(ctx context.Context, sessionID string) *coupon.Applied {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recCoupon))
	if err != nil {
		return nil
	}

	var applied coupon.Applied
	if err := json.Unmarshal([]byte(raw), &applied); err != nil {
		return nil
	}
	return &applied
}

func (r *CouponRepository) Save(ctx context.Context, sessionID string, applied coupon.Applied) error {
	data, err := json.Marshal(applied)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to marshal coupon record", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, recCoupon), string(data)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist coupon record", err)
	}
	return nil
}

func (r *CouponRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, sessionKey(sessionID, recCoupon)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to clear coupon record", err)
	}
	return nil
}
