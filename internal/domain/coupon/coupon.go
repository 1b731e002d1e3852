package coupon

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCode = errors.New("empty coupon code")
	ErrUnknown   = errors.New("unknown coupon code")
	ErrEmptyCart = errors.New("coupon requires a non-empty cart")
)

// The storefront recognizes exactly one coupon: the welcome discount.
const (
	WelcomeCode       = "BIENVENIDO"
	WelcomePercentOff = 10.0
)

// Applied is the persisted record of a coupon in effect. JSON tags match
// the snapshot shape the boleta view reads.
type Applied struct {
	Codigo     string  `json:"codigo"`
	Porcentaje float64 `json:"porcentaje"`
}

// NormalizeCode trims and uppercases user input, so " bienvenido " is a
// valid welcome code.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate resolves a raw code against the known coupons. A recognized code
// is only valid when the cart has items.
func Validate(rawCode string, cartEmpty bool) (Applied, error) {
	code := NormalizeCode(rawCode)

	if code == "" {
		return Applied{}, ErrEmptyCode
	}
	if code != WelcomeCode {
		return Applied{}, ErrUnknown
	}
	if cartEmpty {
		return Applied{}, ErrEmptyCart
	}

	return Applied{Codigo: WelcomeCode, Porcentaje: WelcomePercentOff}, nil
}
