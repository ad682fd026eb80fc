package usecase

import (
	"context"
	"errors"
	"fmt"

	authdto "trak/internal/modules/auth/dto"
	authin "trak/internal/modules/auth/port/in"
	authout "trak/internal/modules/auth/port/out"
	"trak/internal/modules/auth/service"
	apperrors "trak/internal/platform/errors"
)

type Interactor struct {
	svc   *service.AuthService
	store authout.CredentialStore
	api   authout.IdentityAPI
}

func NewInteractor(svc *service.AuthService, store authout.CredentialStore, api authout.IdentityAPI) authin.Usecase {
	return &Interactor{svc: svc, store: store, api: api}
}

// Admit checks credential presence only. Validity is Resolve's job: a stale
// or revoked token passes the gate and is rejected downstream.
func (i *Interactor) Admit(ctx context.Context) error {
	_, err := i.store.Load(ctx)
	return err
}

// Resolve issues exactly one identity lookup. Any failure is terminal for
// the session: the credential slot is cleared before the error is returned,
// so no later protected call can run with a rejected token.
func (i *Interactor) Resolve(ctx context.Context) (authdto.SessionOutput, error) {
	if _, err := i.store.Load(ctx); err != nil {
		return authdto.SessionOutput{}, err
	}
	session, err := i.api.Me(ctx)
	if err != nil {
		if clearErr := i.store.Clear(ctx); clearErr != nil {
			return authdto.SessionOutput{}, fmt.Errorf("clear rejected credential: %w", clearErr)
		}
		return authdto.SessionOutput{}, fmt.Errorf("%w: identity lookup failed: %v", apperrors.ErrUnauthorized, err)
	}
	return authdto.SessionOutput{ID: session.ID, Username: session.Username, Email: session.Email}, nil
}

func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error) {
	if err := i.svc.ValidateLogin(input.Email, input.Password); err != nil {
		return authdto.SessionOutput{}, err
	}
	token, err := i.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return i.StoreToken(ctx, token)
}

func (i *Interactor) Signup(ctx context.Context, input authdto.SignupInput) (authdto.SessionOutput, error) {
	if err := i.svc.ValidateSignup(input.Username, input.Email, input.Password); err != nil {
		return authdto.SessionOutput{}, err
	}
	token, err := i.api.Signup(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return i.StoreToken(ctx, token)
}

func (i *Interactor) StoreToken(ctx context.Context, token string) (authdto.SessionOutput, error) {
	cred, err := i.svc.NewCredential(token)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	if err := i.store.Save(ctx, cred); err != nil {
		return authdto.SessionOutput{}, fmt.Errorf("save credential: %w", err)
	}
	return i.Resolve(ctx)
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.store.Clear(ctx)
}

func (i *Interactor) GoogleAuthURL() string {
	return i.api.AuthURL("google")
}

// CredentialInfo reports the stored credential's local metadata. An empty
// slot is a normal result, not an error.
func (i *Interactor) CredentialInfo(ctx context.Context) (authdto.CredentialInfo, error) {
	cred, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoCredential) {
			return authdto.CredentialInfo{}, nil
		}
		return authdto.CredentialInfo{}, err
	}
	return authdto.CredentialInfo{
		Present:   true,
		Subject:   cred.Subject,
		ExpiresAt: cred.ExpiresAt,
		SavedAt:   cred.SavedAt,
	}, nil
}
