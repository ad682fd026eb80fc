package out

import (
	"context"

	"trak/internal/modules/auth/domain"
)

// CredentialStore owns the single durable credential slot. Load returns
// apperrors.ErrNoCredential when the slot is empty; Clear is idempotent.
type CredentialStore interface {
	Save(ctx context.Context, cred domain.Credential) error
	Load(ctx context.Context) (domain.Credential, error)
	Clear(ctx context.Context) error
}

// IdentityAPI is the authentication surface of the Trak API.
type IdentityAPI interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Signup(ctx context.Context, username, email, password string) (token string, err error)
	Me(ctx context.Context) (domain.Session, error)
	AuthURL(provider string) string
}
