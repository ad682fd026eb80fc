package service

import (
	"fmt"
	"regexp"

	"github.com/golang-jwt/jwt/v5"

	"trak/internal/modules/auth/domain"
	"trak/internal/platform/clock"
	apperrors "trak/internal/platform/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 8

type AuthService struct {
	clock clock.Clock
}

func NewAuthService(clock clock.Clock) *AuthService {
	return &AuthService{clock: clock}
}

// ValidateLogin rejects malformed input before any network call is made.
func (s *AuthService) ValidateLogin(email, password string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: enter a valid email", apperrors.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, minPasswordLen)
	}
	return nil
}

// ValidateSignup applies the login rules plus a required username.
func (s *AuthService) ValidateSignup(username, email, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", apperrors.ErrInvalidInput)
	}
	return s.ValidateLogin(email, password)
}

// NewCredential wraps a raw access token. Registered JWT claims are decoded
// without signature verification to surface subject and expiry locally;
// tokens that are not JWTs are stored as-is.
func (s *AuthService) NewCredential(token string) (domain.Credential, error) {
	if token == "" {
		return domain.Credential{}, fmt.Errorf("%w: empty access token", apperrors.ErrInvalidInput)
	}
	cred := domain.Credential{Token: token, SavedAt: s.clock.Now()}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil {
			cred.Subject = sub
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			cred.ExpiresAt = exp.Time
		}
	}
	return cred, nil
}
