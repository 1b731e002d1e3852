package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strings"

	"balancestore/internal/domain/cart"
	"balancestore/internal/domain/checkout"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/domain/pricing"
	"balancestore/internal/pkg/clock"
	"balancestore/internal/pkg/errs"
	"balancestore/internal/usecase/readmodel"
)

type CheckoutRepository interface {
	LoadDraft(ctx context.Context, sessionID string) *checkout.Draft
	SaveDraft(ctx context.Context, sessionID string, draft *checkout.Draft) error
	SaveCustomer(ctx context.Context, sessionID string, c checkout.CustomerInfo) error
	SaveAddress(ctx context.Context, sessionID string, a checkout.Address) error
	SaveMethod(ctx context.Context, sessionID string, m checkout.PaymentMethod) error
	SavePaymentDetails(ctx context.Context, sessionID string, d checkout.PaymentDetails) error
	SavePurchasedItems(ctx context.Context, sessionID string, items []cart.Item) error
	SaveFolio(ctx context.Context, sessionID, folio string) error
}

type UserReadStore interface {
	Load(ctx context.Context, sessionID string) *readmodel.AuthUserRM
}

// ReceiptRecorder submits the boleta to the remote service. The outcome is
// informational: a failed record never blocks checkout completion.
type ReceiptRecorder interface {
	Record(ctx context.Context, receipt checkout.Receipt) checkout.RecordOutcome
}

// DraftUpdate carries partial form edits; nil fields are left untouched.
type DraftUpdate struct {
	Customer *checkout.CustomerInfo
	Address  *checkout.Address
	Method   *checkout.PaymentMethod
	Payment  *checkout.PaymentDetails
}

type SubmitResult struct {
	Folio   string
	Pricing pricing.Breakdown
	Receipt checkout.Receipt
	Outcome checkout.RecordOutcome
	Status  checkout.Status
}

type CheckoutCommands interface {
	// Start opens a checkout session, prefilling customer info for
	// authenticated users and gating anonymous ones on the account decision.
	Start(ctx context.Context, sessionID string) (*checkout.Draft, error)
	UpdateDraft(ctx context.Context, sessionID string, update DraftUpdate) (*checkout.Draft, error)
	// AllowGuest records that the visitor chose to continue without an
	// account, resolving the account-decision gate.
	AllowGuest(ctx context.Context, sessionID string) (*checkout.Draft, error)
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

type checkoutCommandsImpl struct {
	checkoutRepo CheckoutRepository
	cartRepo     CartRepository
	couponRepo   CouponRepository
	userStore    UserReadStore
	recorder     ReceiptRecorder
	calculator   *pricing.Calculator
	clock        clock.Clock
	logger       *slog.Logger
}

func NewCheckoutCommands(
	checkoutRepo CheckoutRepository,
	cartRepo CartRepository,
	couponRepo CouponRepository,
	userStore UserReadStore,
	recorder ReceiptRecorder,
	calculator *pricing.Calculator,
	clock clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		couponRepo:   couponRepo,
		userStore:    userStore,
		recorder:     recorder,
		calculator:   calculator,
		clock:        clock,
		logger:       logger,
	}
}

func (u *checkoutCommandsImpl) Start(ctx context.Context, sessionID string) (*checkout.Draft, error) {
	draft := u.checkoutRepo.LoadDraft(ctx, sessionID)
	if draft == nil || draft.Status.IsTerminal() {
		draft = checkout.NewDraft()
	}

	user := u.userStore.Load(ctx, sessionID)
	if user != nil {
		prefillCustomer(draft, user)
	}

	if draft.Status == checkout.StatusDraft {
		next := checkout.StatusReady
		if user == nil && !draft.GuestAllowed {
			next = checkout.StatusAwaitingAccountDecision
		}
		if err := draft.TransitionTo(next); err != nil {
			return nil, err
		}
	}

	u.persistDraft(ctx, sessionID, draft)
	return draft, nil
}

func (u *checkoutCommandsImpl) UpdateDraft(ctx context.Context, sessionID string, update DraftUpdate) (*checkout.Draft, error) {
	draft := u.checkoutRepo.LoadDraft(ctx, sessionID)
	if draft == nil {
		return nil, errs.ErrCheckoutNotStarted
	}

	if update.Customer != nil {
		draft.Customer = *update.Customer
	}
	if update.Address != nil {
		draft.Address = *update.Address
	}
	if update.Method != nil {
		draft.Method = *update.Method
	}
	if update.Payment != nil {
		draft.Payment = *update.Payment
	}

	u.persistDraft(ctx, sessionID, draft)
	return draft, nil
}

func (u *checkoutCommandsImpl) AllowGuest(ctx context.Context, sessionID string) (*checkout.Draft, error) {
	draft := u.checkoutRepo.LoadDraft(ctx, sessionID)
	if draft == nil {
		return nil, errs.ErrCheckoutNotStarted
	}

	if err := draft.AllowGuest(); err != nil {
		return nil, err
	}

	u.persistDraft(ctx, sessionID, draft)
	return draft, nil
}

// Submit validates the draft, snapshots every boleta record, records the
// boleta remotely (best-effort), clears the cart, and completes the session.
// Validation failures leave every piece of state exactly as it was.
func (u *checkoutCommandsImpl) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	draft := u.checkoutRepo.LoadDraft(ctx, sessionID)
	if draft == nil {
		return nil, errs.ErrCheckoutNotStarted
	}

	user := u.userStore.Load(ctx, sessionID)
	if user == nil && !draft.GuestAllowed {
		return nil, errs.ErrAccountDecisionNeeded
	}

	if err := draft.ValidateForSubmit(); err != nil {
		return nil, err
	}

	if draft.Status != checkout.StatusReady {
		if err := draft.TransitionTo(checkout.StatusReady); err != nil {
			return nil, err
		}
	}
	if err := draft.TransitionTo(checkout.StatusSubmitting); err != nil {
		return nil, err
	}
	u.persistDraft(ctx, sessionID, draft)

	c := u.cartRepo.Load(ctx, sessionID)
	items := c.Items()

	applied := u.refreshCouponRecord(ctx, sessionID, draft)
	var percentOff float64
	if applied != nil {
		percentOff = applied.Porcentaje
	}
	breakdown := u.calculator.Calculate(c.Total(), percentOff)

	now := u.clock.Now()
	folio := checkout.NewFolio(now)

	// Each record is persisted independently: a failed write is logged and
	// skipped, never fatal to the purchase.
	u.bestEffort("customer record", u.checkoutRepo.SaveCustomer(ctx, sessionID, draft.Customer))
	u.bestEffort("address record", u.checkoutRepo.SaveAddress(ctx, sessionID, draft.Address))
	u.bestEffort("payment method", u.checkoutRepo.SaveMethod(ctx, sessionID, draft.Method))
	u.bestEffort("payment details", u.checkoutRepo.SavePaymentDetails(ctx, sessionID, draft.Payment))
	u.bestEffort("purchased items", u.checkoutRepo.SavePurchasedItems(ctx, sessionID, items))
	u.bestEffort("folio", u.checkoutRepo.SaveFolio(ctx, sessionID, folio))

	receipt := checkout.Receipt{
		Folio:          folio,
		NombreCompleto: customerName(draft, user),
		Email:          customerEmail(draft, user),
		MetodoPago:     string(draft.Method),
		Total:          int64(math.Round(breakdown.GrandTotal)),
		ProductosJSON:  marshalItems(items),
	}

	outcome := u.recorder.Record(ctx, receipt)
	if !outcome.Recorded {
		u.logger.Error("boleta could not be recorded remotely", "folio", folio, "reason", outcome.Reason)
	}

	c.Clear()
	u.bestEffort("cleared cart snapshot", u.cartRepo.Save(ctx, sessionID, c))

	if err := draft.TransitionTo(checkout.StatusCompleted); err != nil {
		return nil, err
	}
	u.persistDraft(ctx, sessionID, draft)

	return &SubmitResult{
		Folio:   folio,
		Pricing: breakdown,
		Receipt: receipt,
		Outcome: outcome,
		Status:  draft.Status,
	}, nil
}

// refreshCouponRecord rewrites the applied-coupon record the way the
// storefront always did at submit: drop it, then re-persist when valid.
func (u *checkoutCommandsImpl) refreshCouponRecord(ctx context.Context, sessionID string, draft *checkout.Draft) *coupon.Applied {
	applied := u.couponRepo.Load(ctx, sessionID)
	u.bestEffort("coupon record cleanup", u.couponRepo.Clear(ctx, sessionID))

	if applied == nil {
		draft.CouponValid = false
		return nil
	}

	draft.CouponValid = true
	u.bestEffort("coupon record", u.couponRepo.Save(ctx, sessionID, *applied))
	return applied
}

func (u *checkoutCommandsImpl) persistDraft(ctx context.Context, sessionID string, draft *checkout.Draft) {
	if err := u.checkoutRepo.SaveDraft(ctx, sessionID, draft); err != nil {
		u.logger.Warn("failed to persist checkout draft", "error", err)
	}
}

func (u *checkoutCommandsImpl) bestEffort(what string, err error) {
	if err != nil {
		u.logger.Warn("failed to persist "+what, "error", err)
	}
}

// prefillCustomer splits the account's full name into first name and the
// rest, falling back to the username when no full name exists.
func prefillCustomer(draft *checkout.Draft, user *readmodel.AuthUserRM) {
	if user.NombreCompleto != "" {
		parts := strings.Fields(user.NombreCompleto)
		if len(parts) > 0 {
			draft.Customer.Nombre = parts[0]
			draft.Customer.Apellidos = strings.Join(parts[1:], " ")
		}
	} else {
		draft.Customer.Nombre = user.Username
		draft.Customer.Apellidos = ""
	}

	if user.Email != "" {
		draft.Customer.Correo = user.Email
	}
}

func customerName(draft *checkout.Draft, user *readmodel.AuthUserRM) string {
	if user != nil && user.NombreCompleto != "" {
		return user.NombreCompleto
	}
	return draft.Customer.FullName()
}

func customerEmail(draft *checkout.Draft, user *readmodel.AuthUserRM) string {
	if draft.Customer.Correo != "" {
		return draft.Customer.Correo
	}
	if user != nil {
		return user.Email
	}
	return ""
}

func marshalItems(items []cart.Item) string {
	if items == nil {
		items = []cart.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
