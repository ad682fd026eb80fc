package dto

import "time"

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type SessionOutput struct {
	ID       string
	Username string
	Email    string
}

type CredentialInfo struct {
	Present   bool
	Subject   string
	ExpiresAt time.Time
	SavedAt   time.Time
}
