package entity

// Identity is the authenticated caller, as resolved by the auth provider.
// It is passed explicitly into use cases instead of being read from ambient
// state, so ownership stamping stays deterministic under test.
type Identity struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"display_name"`
	Authenticated bool   `json:"authenticated"`
}
