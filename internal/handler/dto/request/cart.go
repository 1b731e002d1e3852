package request

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// ApplyCouponRequest deliberately skips binding: an empty code is a domain
// outcome with its own message, not a malformed request.
type ApplyCouponRequest struct {
	Codigo string `json:"codigo"`
}
