package in

import (
	"context"

	authdto "trak/internal/modules/auth/dto"
	authin "trak/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Signup(ctx context.Context, username, email, password string) (authdto.SessionOutput, error) {
	return h.usecase.Signup(ctx, authdto.SignupInput{Username: username, Email: email, Password: password})
}

func (h CLIHandler) StoreToken(ctx context.Context, token string) (authdto.SessionOutput, error) {
	return h.usecase.StoreToken(ctx, token)
}

func (h CLIHandler) Resolve(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Resolve(ctx)
}

func (h CLIHandler) Admit(ctx context.Context) error {
	return h.usecase.Admit(ctx)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) GoogleAuthURL() string {
	return h.usecase.GoogleAuthURL()
}

func (h CLIHandler) CredentialInfo(ctx context.Context) (authdto.CredentialInfo, error) {
	return h.usecase.CredentialInfo(ctx)
}
