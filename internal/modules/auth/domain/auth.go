package domain

import "time"

// Credential is the opaque bearer token for the active client session.
// Exactly one credential exists per client instance; replacing it is a full
// overwrite of the slot. Subject and ExpiresAt are decoded locally from the
// token for display only; the server remains the authority on validity.
type Credential struct {
	Token     string    `json:"access_token"`
	Subject   string    `json:"subject,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

// Session is the resolved identity bound to a credential. It is valid only
// as long as the identity endpoint accepts the credential.
type Session struct {
	ID       string
	Username string
	Email    string
}
