package readmodel

// CartNoticeRM is the transient add-to-cart confirmation. It is readable
// until ExpiresAt; a newer notice replaces it, restarting the window.
type CartNoticeRM struct {
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expiresAt"` // unix millis
}
