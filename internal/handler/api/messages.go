package api

import (
	"errors"

	"balancestore/internal/domain/checkout"
	"balancestore/internal/domain/coupon"
	"balancestore/internal/pkg/errs"
)

// User-facing messages stay in Spanish to match the storefront UI.
func couponMessage(err error) string {
	switch {
	case errors.Is(err, coupon.ErrEmptyCode):
		return "Ingresa un código de cupón"
	case errors.Is(err, coupon.ErrEmptyCart):
		return "Agrega productos al carrito antes de aplicar un cupón"
	case errors.Is(err, coupon.ErrUnknown):
		return "El código ingresado no es válido"
	default:
		return "No se pudo aplicar el cupón"
	}
}

// authMessage prefers the text the user service answered with, falling
// back to the local default when none was captured.
func authMessage(err error, fallback string) string {
	if msg := errs.Hint(err); msg != "" {
		return msg
	}
	return fallback
}

func checkoutMessage(err error) string {
	switch {
	case errors.Is(err, checkout.ErrMissingRequiredFields):
		return "Por favor completa todos los campos obligatorios"
	case errors.Is(err, checkout.ErrMissingPaymentMethod):
		return "Selecciona un método de pago"
	case errors.Is(err, checkout.ErrMissingCardDetails):
		return "Completa los datos de la tarjeta"
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		return "Método de pago inválido"
	default:
		return "No se pudo procesar la compra"
	}
}
