package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "trak/internal/platform/errors"
	"trak/internal/platform/httpapi"

	"go.uber.org/zap"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

func newClient(t *testing.T, handler http.Handler, tokens httpapi.TokenSource) (*httpapi.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return httpapi.New(server.URL, 5*time.Second, tokens, zap.NewNop()), server
}

func TestGetSendsBearerTokenAndDecodesBody(t *testing.T) {
	t.Parallel()
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("authorization header: got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Math"}`))
	}), staticTokens{token: "tok-123"})

	var out struct {
		Name string `json:"name"`
	}
	if err := client.Get(context.Background(), "/courses", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Name != "Math" {
		t.Fatalf("decoded body: got %+v", out)
	}
}

func TestMissingCredentialShortCircuitsBeforeRequest(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	client, _ := newClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}), staticTokens{err: apperrors.ErrNoCredential})

	err := client.Get(context.Background(), "/courses", nil)
	if !errors.Is(err, apperrors.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("no request must be issued without a credential, got %d", hits.Load())
	}
}

func TestUnauthorizedStatusesMapToSentinel(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}), staticTokens{token: "tok"})
		err := client.Get(context.Background(), "/dashboard/summary", nil)
		if !errors.Is(err, apperrors.ErrUnauthorized) {
			t.Fatalf("status %d: expected ErrUnauthorized, got %v", status, err)
		}
	}
}

func TestServerErrorCarriesDetailMessage(t *testing.T) {
	t.Parallel()
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"course already exists"}`))
	}), staticTokens{token: "tok"})

	err := client.Post(context.Background(), "/courses", map[string]string{"name": "Math"}, nil)
	if !errors.Is(err, apperrors.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if want := "course already exists"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected detail %q in %v", want, err)
	}
}

func TestMalformedSuccessBodyIsServerError(t *testing.T) {
	t.Parallel()
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}), staticTokens{token: "tok"})

	var out map[string]any
	err := client.Get(context.Background(), "/dashboard/summary", &out)
	if !errors.Is(err, apperrors.ErrServer) {
		t.Fatalf("expected ErrServer for malformed body, got %v", err)
	}
}

func TestPostAnonOmitsAuthorization(t *testing.T) {
	t.Parallel()
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("anonymous call must not send authorization, got %q", got)
		}
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}), staticTokens{err: apperrors.ErrNoCredential})

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := client.PostAnon(context.Background(), "/login", map[string]string{"email": "a@b.co"}, &out); err != nil {
		t.Fatalf("post anon: %v", err)
	}
	if out.AccessToken != "tok" {
		t.Fatalf("decoded token: got %+v", out)
	}
}
