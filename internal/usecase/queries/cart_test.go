//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/domain/pricing"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/usecase/queries"
	"balancestore/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartStore struct {
	items  []cart.Item
	notice *readmodel.CartNoticeRM
}

func (f *fakeCartStore) Load(_ context.Context, _ string) *cart.Cart {
	return cart.Restore(f.items)
}

func (f *fakeCartStore) LoadNotice(_ context.Context, _ string) (*readmodel.CartNoticeRM, error) {
	return f.notice, nil
}

type fakeCouponStore struct {
	applied *coupon.Applied
}

func (f *fakeCouponStore) Load(_ context.Context, _ string) *coupon.Applied {
	return f.applied
}

func TestCartGetView(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	items := []cart.Item{
		{ID: "p1", Title: "Uno", Price: 4000, Qty: 2},
		{ID: "p2", Title: "Dos", Price: 2000, Qty: 1},
	}

	t.Run("without coupon", func(t *testing.T) {
		q := queries.NewCartQueries(&fakeCartStore{items: items}, &fakeCouponStore{}, pricing.NewCalculator(), clock.NewMockClock(now))
		view := q.GetView(ctx, "s1")

		assert.Equal(t, 3, view.Count)
		assert.Nil(t, view.Coupon)
		assert.Equal(t, 10000.0, view.Pricing.Subtotal)
		assert.Equal(t, 11900.0, view.Pricing.GrandTotal)
		assert.Equal(t, 10000.0, view.DisplayTotal)
		assert.Nil(t, view.Notice)
	})

	t.Run("with coupon", func(t *testing.T) {
		applied := &coupon.Applied{Codigo: coupon.WelcomeCode, Porcentaje: 10}
		q := queries.NewCartQueries(&fakeCartStore{items: items}, &fakeCouponStore{applied: applied}, pricing.NewCalculator(), clock.NewMockClock(now))
		view := q.GetView(ctx, "s1")

		require.NotNil(t, view.Coupon)
		assert.Equal(t, int64(1000), view.Pricing.DiscountAmount)
		assert.Equal(t, 10710.0, view.Pricing.GrandTotal)
		assert.Equal(t, 9000.0, view.DisplayTotal, "display total applies the coupon but no tax")
	})

	t.Run("pending notice is surfaced until it expires", func(t *testing.T) {
		notice := &readmodel.CartNoticeRM{Message: "Producto agregado al carrito con éxito", ExpiresAt: now.Add(2 * time.Second).UnixMilli()}
		store := &fakeCartStore{items: items, notice: notice}
		mockClock := clock.NewMockClock(now)
		q := queries.NewCartQueries(store, &fakeCouponStore{}, pricing.NewCalculator(), mockClock)

		view := q.GetView(ctx, "s1")
		require.NotNil(t, view.Notice)
		assert.Equal(t, notice.Message, view.Notice.Message)

		mockClock.Add(2 * time.Second)
		view = q.GetView(ctx, "s1")
		assert.Nil(t, view.Notice, "expired notice is dropped")
	})

	t.Run("empty cart", func(t *testing.T) {
		q := queries.NewCartQueries(&fakeCartStore{}, &fakeCouponStore{}, pricing.NewCalculator(), clock.NewMockClock(now))
		view := q.GetView(ctx, "s1")

		assert.Empty(t, view.Items)
		assert.Equal(t, 0, view.Count)
		assert.Equal(t, 0.0, view.Pricing.GrandTotal)
	})
}
