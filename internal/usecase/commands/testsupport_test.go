//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/catalog"
	"balancestore/internal/domain/checkout"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/queries"
	"balancestore/internal/usecase/readmodel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCartRepo struct {
	carts   map[string][]cart.Item
	notices map[string]readmodel.CartNoticeRM
	saveErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts:   map[string][]cart.Item{},
		notices: map[string]readmodel.CartNoticeRM{},
	}
}

func (f *fakeCartRepo) Load(_ context.Context, sid string) *cart.Cart {
	return cart.Restore(f.carts[sid])
}

func (f *fakeCartRepo) Save(_ context.Context, sid string, c *cart.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[sid] = c.Items()
	return nil
}

func (f *fakeCartRepo) SaveNotice(_ context.Context, sid string, n readmodel.CartNoticeRM) error {
	f.notices[sid] = n
	return nil
}

type fakeCatalog struct {
	products map[string]catalog.Product
}

func (f *fakeCatalog) List(_ context.Context, _ queries.CatalogFilter) []catalog.Product {
	out := make([]catalog.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errs.ErrProductNotFound
	}
	return &p, nil
}

type fakeCouponRepo struct {
	applied map[string]coupon.Applied
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{applied: map[string]coupon.Applied{}}
}

func (f *fakeCouponRepo) Load(_ context.Context, sid string) *coupon.Applied {
	a, ok := f.applied[sid]
	if !ok {
		return nil
	}
	return &a
}

func (f *fakeCouponRepo) Save(_ context.Context, sid string, a coupon.Applied) error {
	f.applied[sid] = a
	return nil
}

func (f *fakeCouponRepo) Clear(_ context.Context, sid string) error {
	delete(f.applied, sid)
	return nil
}

type fakeCheckoutRepo struct {
	drafts    map[string]checkout.Draft
	customers map[string]checkout.CustomerInfo
	addresses map[string]checkout.Address
	methods   map[string]string
	payments  map[string]checkout.PaymentDetails
	purchased map[string][]cart.Item
	folios    map[string]string
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{
		drafts:    map[string]checkout.Draft{},
		customers: map[string]checkout.CustomerInfo{},
		addresses: map[string]checkout.Address{},
		methods:   map[string]string{},
		payments:  map[string]checkout.PaymentDetails{},
		purchased: map[string][]cart.Item{},
		folios:    map[string]string{},
	}
}

func (f *fakeCheckoutRepo) LoadDraft(_ context.Context, sid string) *checkout.Draft {
	d, ok := f.drafts[sid]
	if !ok {
		return nil
	}
	return &d
}

func (f *fakeCheckoutRepo) SaveDraft(_ context.Context, sid string, d *checkout.Draft) error {
	f.drafts[sid] = *d
	return nil
}

func (f *fakeCheckoutRepo) SaveCustomer(_ context.Context, sid string, c checkout.CustomerInfo) error {
	f.customers[sid] = c
	return nil
}

func (f *fakeCheckoutRepo) SaveAddress(_ context.Context, sid string, a checkout.Address) error {
	f.addresses[sid] = a
	return nil
}

func (f *fakeCheckoutRepo) SaveMethod(_ context.Context, sid string, m checkout.PaymentMethod) error {
	f.methods[sid] = string(m)
	return nil
}

func (f *fakeCheckoutRepo) SavePaymentDetails(_ context.Context, sid string, d checkout.PaymentDetails) error {
	f.payments[sid] = d
	return nil
}

func (f *fakeCheckoutRepo) SavePurchasedItems(_ context.Context, sid string, items []cart.Item) error {
	f.purchased[sid] = items
	return nil
}

func (f *fakeCheckoutRepo) SaveFolio(_ context.Context, sid, folio string) error {
	f.folios[sid] = folio
	return nil
}

type fakeUserStore struct {
	users map[string]readmodel.AuthUserRM
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]readmodel.AuthUserRM{}}
}

func (f *fakeUserStore) Load(_ context.Context, sid string) *readmodel.AuthUserRM {
	u, ok := f.users[sid]
	if !ok {
		return nil
	}
	return &u
}

func (f *fakeUserStore) Save(_ context.Context, sid string, u readmodel.AuthUserRM) error {
	f.users[sid] = u
	return nil
}

func (f *fakeUserStore) Clear(_ context.Context, sid string) error {
	delete(f.users, sid)
	return nil
}

type fakeRecorder struct {
	calls    []checkout.Receipt
	failWith string
}

func (f *fakeRecorder) Record(_ context.Context, r checkout.Receipt) checkout.RecordOutcome {
	f.calls = append(f.calls, r)
	if f.failWith != "" {
		return checkout.RecordFailed(f.failWith)
	}
	return checkout.Recorded()
}
