//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"balancestore/internal/domain/catalog"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWith(products ...catalog.Product) *fakeCatalog {
	m := map[string]catalog.Product{}
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func testProduct(id string, price float64, stock int) catalog.Product {
	return catalog.Product{ID: id, Title: "Producto " + id, FinalPrice: &price, Stock: stock}
}

func TestCartCommandsAdd(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("adds the resolved product and records the notice", func(t *testing.T) {
		repo := newFakeCartRepo()
		mockClock := clock.NewMockClock(now)
		cmds := commands.NewCartCommands(repo, catalogWith(testProduct("p1", 1000, 5)), mockClock, discardLogger())

		c, err := cmds.Add(ctx, "s1", "p1")
		require.NoError(t, err)

		item, ok := c.Find("p1")
		require.True(t, ok)
		assert.Equal(t, 1, item.Qty)
		assert.Equal(t, 1000.0, item.Price)

		require.Len(t, repo.carts["s1"], 1, "snapshot must be persisted")

		notice := repo.notices["s1"]
		assert.Equal(t, "Producto agregado al carrito con éxito", notice.Message)
		assert.Equal(t, now.Add(2*time.Second).UnixMilli(), notice.ExpiresAt)
	})

	t.Run("re-adding restarts the notice window", func(t *testing.T) {
		repo := newFakeCartRepo()
		mockClock := clock.NewMockClock(now)
		cmds := commands.NewCartCommands(repo, catalogWith(testProduct("p1", 1000, 5)), mockClock, discardLogger())

		_, err := cmds.Add(ctx, "s1", "p1")
		require.NoError(t, err)

		mockClock.Add(1500 * time.Millisecond)
		_, err = cmds.Add(ctx, "s1", "p1")
		require.NoError(t, err)

		notice := repo.notices["s1"]
		assert.Equal(t, now.Add(1500*time.Millisecond).Add(2*time.Second).UnixMilli(), notice.ExpiresAt)
	})

	t.Run("unknown product fails and persists nothing", func(t *testing.T) {
		repo := newFakeCartRepo()
		cmds := commands.NewCartCommands(repo, catalogWith(), clock.NewMockClock(now), discardLogger())

		_, err := cmds.Add(ctx, "s1", "ghost")
		require.ErrorIs(t, err, errs.ErrProductNotFound)
		assert.Empty(t, repo.carts["s1"])
		assert.Empty(t, repo.notices)
	})

	t.Run("storage failure does not break the add", func(t *testing.T) {
		repo := newFakeCartRepo()
		repo.saveErr = assert.AnError
		cmds := commands.NewCartCommands(repo, catalogWith(testProduct("p1", 1000, 5)), clock.NewMockClock(now), discardLogger())

		c, err := cmds.Add(ctx, "s1", "p1")
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
	})
}

func TestCartCommandsQuantities(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	setup := func(stock int) (*fakeCartRepo, commands.CartCommands) {
		repo := newFakeCartRepo()
		cmds := commands.NewCartCommands(repo, catalogWith(testProduct("p1", 1000, stock)), clock.NewMockClock(now), discardLogger())
		_, err := cmds.Add(ctx, "s1", "p1")
		require.NoError(t, err)
		return repo, cmds
	}

	t.Run("increase clamps at catalog stock", func(t *testing.T) {
		_, cmds := setup(2)
		cmds.Increase(ctx, "s1", "p1")
		c := cmds.Increase(ctx, "s1", "p1")

		item, _ := c.Find("p1")
		assert.Equal(t, 2, item.Qty)
	})

	t.Run("decrease floors at one", func(t *testing.T) {
		_, cmds := setup(5)
		c := cmds.Decrease(ctx, "s1", "p1")

		item, _ := c.Find("p1")
		assert.Equal(t, 1, item.Qty)
	})

	t.Run("remove drops the line and persists", func(t *testing.T) {
		repo, cmds := setup(5)
		c := cmds.Remove(ctx, "s1", "p1")

		assert.True(t, c.IsEmpty())
		assert.Empty(t, repo.carts["s1"])
	})
}
