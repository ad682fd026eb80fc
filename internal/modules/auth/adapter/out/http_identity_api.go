package out

import (
	"context"
	"encoding/json"
	"fmt"

	"trak/internal/modules/auth/domain"
	authout "trak/internal/modules/auth/port/out"
	apperrors "trak/internal/platform/errors"
	"trak/internal/platform/httpapi"
)

type HTTPIdentityAPI struct {
	api *httpapi.Client
}

func NewHTTPIdentityAPI(api *httpapi.Client) authout.IdentityAPI {
	return &HTTPIdentityAPI{api: api}
}

type credentialsBody struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// meResponse tolerates numeric or string user ids; the server's schema is
// not under this client's control.
type meResponse struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
}

func (a *HTTPIdentityAPI) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := a.api.PostAnon(ctx, "/auth/login", credentialsBody{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: login response missing access_token", apperrors.ErrServer)
	}
	return out.AccessToken, nil
}

func (a *HTTPIdentityAPI) Signup(ctx context.Context, username, email, password string) (string, error) {
	var out tokenResponse
	body := credentialsBody{Username: username, Email: email, Password: password}
	if err := a.api.PostAnon(ctx, "/auth/signup", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: signup response missing access_token", apperrors.ErrServer)
	}
	return out.AccessToken, nil
}

func (a *HTTPIdentityAPI) Me(ctx context.Context) (domain.Session, error) {
	var out meResponse
	if err := a.api.Get(ctx, "/auth/me", &out); err != nil {
		return domain.Session{}, err
	}
	if out.Username == "" {
		return domain.Session{}, fmt.Errorf("%w: identity response missing username", apperrors.ErrServer)
	}
	return domain.Session{ID: out.ID.String(), Username: out.Username, Email: out.Email}, nil
}

func (a *HTTPIdentityAPI) AuthURL(provider string) string {
	return a.api.BaseURL() + "/auth/" + provider
}
