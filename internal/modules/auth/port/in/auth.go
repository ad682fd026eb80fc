package in

import (
	"context"

	"trak/internal/modules/auth/dto"
)

type Usecase interface {
	// Admit is the session gate: it checks only that a credential is stored
	// and never touches the network. Absence yields apperrors.ErrNoCredential.
	Admit(ctx context.Context) error
	// Resolve exchanges the stored credential for the user's identity with a
	// single call. Any rejection clears the credential slot.
	Resolve(ctx context.Context) (dto.SessionOutput, error)
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Signup(ctx context.Context, input dto.SignupInput) (dto.SessionOutput, error)
	// StoreToken saves a token obtained out of band (the OAuth browser flow)
	// and resolves the profile through the same path as Login.
	StoreToken(ctx context.Context, token string) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
	GoogleAuthURL() string
	CredentialInfo(ctx context.Context) (dto.CredentialInfo, error)
}
