package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	out "trak/internal/modules/auth/adapter/out"
	"trak/internal/modules/auth/domain"
	apperrors "trak/internal/platform/errors"
)

func TestCredentialRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state", "credential.json")
	store := out.NewFileCredentialStore(path)

	saved := domain.Credential{
		Token:     "tok-abc",
		Subject:   "42",
		ExpiresAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		SavedAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != saved.Token || loaded.Subject != saved.Subject ||
		!loaded.ExpiresAt.Equal(saved.ExpiresAt) || !loaded.SavedAt.Equal(saved.SavedAt) {
		t.Fatalf("round trip mismatch: %+v vs %+v", loaded, saved)
	}
}

func TestCredentialFileIsOwnerReadableOnly(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("posix permissions")
	}
	path := filepath.Join(t.TempDir(), "credential.json")
	store := out.NewFileCredentialStore(path)
	if err := store.Save(context.Background(), domain.Credential{Token: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 perms, got %o", perm)
	}
}

func TestLoadMissingFileReportsNoCredential(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(filepath.Join(t.TempDir(), "credential.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestClearTolerantOfAbsentFile(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(filepath.Join(t.TempDir(), "credential.json"))
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear on empty slot: %v", err)
	}
	if err := store.Save(context.Background(), domain.Credential{Token: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoCredential) {
		t.Fatalf("expected empty slot after clear, got %v", err)
	}
}

func TestTokenSourceReadsLiveSlot(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(filepath.Join(t.TempDir(), "credential.json"))
	tokens := out.NewStoreTokenSource(store)

	if _, err := tokens.Token(context.Background()); !errors.Is(err, apperrors.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential before save, got %v", err)
	}
	if err := store.Save(context.Background(), domain.Credential{Token: "fresh"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := tokens.Token(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "fresh" {
		t.Fatalf("expected live token, got %q", token)
	}
}

// signJWT builds a real HS256 token so claim extraction runs against the
// same shape the backend issues.
func signJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestStoredJWTKeepsRawTokenForm(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credential.json")
	store := out.NewFileCredentialStore(path)

	raw := signJWT(t, jwt.MapClaims{"sub": "42", "exp": float64(1775000000)})
	if err := store.Save(context.Background(), domain.Credential{Token: raw, Subject: "42"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != raw {
		t.Fatalf("token must round-trip byte for byte")
	}
}
