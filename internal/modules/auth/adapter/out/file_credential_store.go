package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trak/internal/modules/auth/domain"
	authout "trak/internal/modules/auth/port/out"
	apperrors "trak/internal/platform/errors"
)

// FileCredentialStore keeps the single credential slot as a JSON file under
// the state directory. The file carries the bearer token, so it is written
// owner-readable only.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(path string) authout.CredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Save(_ context.Context, cred domain.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	payload, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Credential, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Credential{}, apperrors.ErrNoCredential
		}
		return domain.Credential{}, fmt.Errorf("read credential: %w", err)
	}
	cred := domain.Credential{}
	if err := json.Unmarshal(payload, &cred); err != nil {
		return domain.Credential{}, fmt.Errorf("decode credential: %w", err)
	}
	if cred.Token == "" {
		return domain.Credential{}, apperrors.ErrNoCredential
	}
	return cred, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// StoreTokenSource adapts a CredentialStore to httpapi.TokenSource so the
// shared API client reads the live slot on every request.
type StoreTokenSource struct {
	store authout.CredentialStore
}

func NewStoreTokenSource(store authout.CredentialStore) StoreTokenSource {
	return StoreTokenSource{store: store}
}

func (t StoreTokenSource) Token(ctx context.Context) (string, error) {
	cred, err := t.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}
