package commands

import (
	"context"
	"log/slog"

	"balancestore/internal/domain/coupon"
)

type CouponRepository interface {
	Load(ctx context.Context, sessionID string) *coupon.Applied
	Save(ctx context.Context, sessionID string, applied coupon.Applied) error
	Clear(ctx context.Context, sessionID string) error
}

type CouponCommands interface {
	// Apply validates the code against the current cart and persists the
	// coupon record. Any invalid outcome clears a previously applied coupon.
	Apply(ctx context.Context, sessionID, code string) (*coupon.Applied, error)
	Remove(ctx context.Context, sessionID string)
}

type couponCommandsImpl struct {
	couponRepo CouponRepository
	cartRepo   CartRepository
	logger     *slog.Logger
}

func NewCouponCommands(couponRepo CouponRepository, cartRepo CartRepository, logger *slog.Logger) CouponCommands {
	return &couponCommandsImpl{
		couponRepo: couponRepo,
		cartRepo:   cartRepo,
		logger:     logger,
	}
}

func (u *couponCommandsImpl) Apply(ctx context.Context, sessionID, code string) (*coupon.Applied, error) {
	c := u.cartRepo.Load(ctx, sessionID)

	applied, err := coupon.Validate(code, c.IsEmpty())
	if err != nil {
		u.Remove(ctx, sessionID)
		return nil, err
	}

	if err := u.couponRepo.Save(ctx, sessionID, applied); err != nil {
		u.logger.Warn("failed to persist coupon record", "error", err)
	}
	return &applied, nil
}

func (u *couponCommandsImpl) Remove(ctx context.Context, sessionID string) {
	if err := u.couponRepo.Clear(ctx, sessionID); err != nil {
		u.logger.Warn("failed to clear coupon record", "error", err)
	}
}
