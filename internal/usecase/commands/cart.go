package commands

import (
	"context"
	"log/slog"
	"time"

	"balancestore/internal/domain/cart"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/queries"
	"balancestore/internal/usecase/readmodel"
)

const (
	addedNoticeMessage = "Producto agregado al carrito con éxito"
	noticeWindow       = 2 * time.Second
)

type CartRepository interface {
	Load(ctx context.Context, sessionID string) *cart.Cart
	Save(ctx context.Context, sessionID string, c *cart.Cart) error
	SaveNotice(ctx context.Context, sessionID string, n readmodel.CartNoticeRM) error
}

type CartCommands interface {
	Add(ctx context.Context, sessionID, productID string) (*cart.Cart, error)
	Remove(ctx context.Context, sessionID, itemID string) *cart.Cart
	Increase(ctx context.Context, sessionID, itemID string) *cart.Cart
	Decrease(ctx context.Context, sessionID, itemID string) *cart.Cart
}

type cartCommandsImpl struct {
	cartRepo CartRepository
	catalog  queries.CatalogQueries
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCartCommands(
	cartRepo CartRepository,
	catalog queries.CatalogQueries,
	clock clock.Clock,
	logger *slog.Logger,
) CartCommands {
	return &cartCommandsImpl{
		cartRepo: cartRepo,
		catalog:  catalog,
		clock:    clock,
		logger:   logger,
	}
}

// Add resolves the product from the catalog, applies the quantity rules,
// persists the snapshot, and records the transient success notice.
func (u *cartCommandsImpl) Add(ctx context.Context, sessionID, productID string) (*cart.Cart, error) {
	product, err := u.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProductNotFound)
	}

	c := u.cartRepo.Load(ctx, sessionID)
	c.Add(*product)
	u.persist(ctx, sessionID, c)

	notice := readmodel.CartNoticeRM{
		Message:   addedNoticeMessage,
		ExpiresAt: u.clock.Now().Add(noticeWindow).UnixMilli(),
	}
	if err := u.cartRepo.SaveNotice(ctx, sessionID, notice); err != nil {
		u.logger.Warn("failed to persist cart notice", "error", err)
	}

	return c, nil
}

func (u *cartCommandsImpl) Remove(ctx context.Context, sessionID, itemID string) *cart.Cart {
	c := u.cartRepo.Load(ctx, sessionID)
	c.Remove(itemID)
	u.persist(ctx, sessionID, c)
	return c
}

// Increase looks up current stock to clamp against; an unknown product
// falls back to the default stock ceiling.
func (u *cartCommandsImpl) Increase(ctx context.Context, sessionID, itemID string) *cart.Cart {
	availableStock := cart.DefaultStock
	if product, err := u.catalog.GetByID(ctx, itemID); err == nil {
		availableStock = product.Stock
	}

	c := u.cartRepo.Load(ctx, sessionID)
	c.Increase(itemID, availableStock)
	u.persist(ctx, sessionID, c)
	return c
}

func (u *cartCommandsImpl) Decrease(ctx context.Context, sessionID, itemID string) *cart.Cart {
	c := u.cartRepo.Load(ctx, sessionID)
	c.Decrease(itemID)
	u.persist(ctx, sessionID, c)
	return c
}

// persist writes the snapshot after every mutation. Storage failures are
// tolerated: the in-memory cart stays authoritative for the session.
func (u *cartCommandsImpl) persist(ctx context.Context, sessionID string, c *cart.Cart) {
	if err := u.cartRepo.Save(ctx, sessionID, c); err != nil {
		u.logger.Warn("failed to persist cart snapshot", "error", err)
	}
}
