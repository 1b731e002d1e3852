package checkout

import (
	"errors"
	"strings"
)

var (
	ErrMissingRequiredFields = errors.New("missing required checkout fields")
	ErrMissingPaymentMethod  = errors.New("payment method not selected")
	ErrMissingCardDetails    = errors.New("missing card details")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidTransition     = errors.New("invalid checkout state transition")
)

type PaymentMethod string

const (
	MethodDebito        PaymentMethod = "debito"
	MethodCredito       PaymentMethod = "credito"
	MethodTransferencia PaymentMethod = "transferencia"
)

func NewPaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case MethodDebito, MethodCredito, MethodTransferencia:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// IsCard reports whether the method requires card details at submit.
func (m PaymentMethod) IsCard() bool {
	return m == MethodDebito || m == MethodCredito
}

// CustomerInfo and Address keep the storefront's field names; they are
// persisted verbatim for the boleta view.
type CustomerInfo struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Correo    string `json:"correo"`
}

func (c CustomerInfo) FullName() string {
	parts := []string{}
	if c.Nombre != "" {
		parts = append(parts, c.Nombre)
	}
	if c.Apellidos != "" {
		parts = append(parts, c.Apellidos)
	}
	return strings.Join(parts, " ")
}

type Address struct {
	Calle        string `json:"calle"`
	Depto        string `json:"depto"`
	Region       string `json:"region"`
	Comuna       string `json:"comuna"`
	Indicaciones string `json:"indicaciones"`
}

// PaymentDetails is only meaningful for card methods. Card data is a
// local-only placeholder, never validated against a payment network.
type PaymentDetails struct {
	NumeroTarjeta      string `json:"numeroTarjeta,omitempty"`
	NombreTarjeta      string `json:"nombreTarjeta,omitempty"`
	VencimientoTarjeta string `json:"vencimientoTarjeta,omitempty"`
	CVVTarjeta         string `json:"cvvTarjeta,omitempty"`
}

func (d PaymentDetails) complete() bool {
	return d.NumeroTarjeta != "" && d.NombreTarjeta != "" &&
		d.VencimientoTarjeta != "" && d.CVVTarjeta != ""
}

// Draft is the in-progress checkout session, built incrementally from form
// input and persisted as a snapshot between edits.
type Draft struct {
	Status       Status         `json:"status"`
	Customer     CustomerInfo   `json:"customer"`
	Address      Address        `json:"address"`
	Method       PaymentMethod  `json:"method,omitempty"`
	Payment      PaymentDetails `json:"payment"`
	CouponValid  bool           `json:"couponValid"`
	GuestAllowed bool           `json:"guestAllowed"`
}

func NewDraft() *Draft {
	return &Draft{Status: StatusDraft}
}

// TransitionTo moves the draft along the state machine, rejecting moves the
// flow does not allow.
func (d *Draft) TransitionTo(next Status) error {
	if !d.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	d.Status = next
	return nil
}

// AllowGuest records the account-decision outcome that lets an anonymous
// visitor continue; it resolves the awaiting state.
func (d *Draft) AllowGuest() error {
	d.GuestAllowed = true
	if d.Status == StatusAwaitingAccountDecision {
		return d.TransitionTo(StatusReady)
	}
	return nil
}

// ValidateForSubmit checks every required field. It never mutates state:
// a failed validation leaves the draft untouched.
func (d *Draft) ValidateForSubmit() error {
	if d.Customer.Nombre == "" || d.Customer.Apellidos == "" || d.Customer.Correo == "" ||
		d.Address.Calle == "" || d.Address.Region == "" || d.Address.Comuna == "" {
		return ErrMissingRequiredFields
	}

	if d.Method == "" {
		return ErrMissingPaymentMethod
	}

	if d.Method.IsCard() && !d.Payment.complete() {
		return ErrMissingCardDetails
	}

	return nil
}
