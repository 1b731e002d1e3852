package errs

import "errors"

// Sentinel errors shared across usecase layers. Errors owned by a single
// domain package live next to their types instead.
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")

	// Checkout errors
	ErrCheckoutNotStarted    = errors.New("checkout session not started")
	ErrAccountDecisionNeeded = errors.New("account decision pending")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
