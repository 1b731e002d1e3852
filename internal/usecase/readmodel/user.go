package readmodel

// AuthUserRM is the authenticated-user record persisted per session. JSON
// keys match the snapshot shape the storefront historically stored.
type AuthUserRM struct {
	Username       string `json:"username"`
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email"`
}
