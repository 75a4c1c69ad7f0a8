package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	apperrors "github.com/sooquk/sooquk-dashboard/internal/pkg/errors"
)

type city struct {
	ID     int64  `json:"id"`
	NameEn string `json:"name_en"`
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeBackend accepts access tokens listed in valid and rotates tokens on refresh.
type fakeBackend struct {
	mu           sync.Mutex
	valid        map[string]bool
	refreshOK    bool
	refreshCalls int32
	cityCalls    int32
	lastAuth     string
	lastLang     string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if !b.refreshOK || body["refresh_token"] != "refresh-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "refresh token expired"})
			return
		}
		b.mu.Lock()
		b.valid["access-2"] = true
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]string{"access_token": "access-2", "refresh_token": "refresh-2"},
		})
	})
	mux.HandleFunc("/cities/1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.cityCalls, 1)
		auth := r.Header.Get("Authorization")
		b.mu.Lock()
		b.lastAuth = auth
		b.lastLang = r.Header.Get("Accept-Language")
		ok := len(auth) > 7 && b.valid[auth[7:]]
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "token expired"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": city{ID: 1, NameEn: "Riyadh"}})
	})
	mux.HandleFunc("/cities", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": "validation error",
			"errors":  map[string]string{"name_en": "required"},
		})
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]any{"message": "upstream down"})
	})
	mux.HandleFunc("/raw", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []city{{ID: 3, NameEn: "Jeddah"}})
	})
	return mux
}

func newBackend(t *testing.T, refreshOK bool, valid ...string) (*fakeBackend, *apiclient.Client) {
	t.Helper()
	b := &fakeBackend{valid: map[string]bool{}, refreshOK: refreshOK}
	for _, v := range valid {
		b.valid[v] = true
	}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return b, apiclient.NewClient(srv.URL, srv.Client(), apiclient.DefaultEndpoints, quietLogger())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	b, client := newBackend(t, true, "access-1")
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithLanguage(apiclient.WithTokenStore(context.Background(), store), "ar")

	var got city
	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, &got)

	require.NoError(t, err)
	assert.Equal(t, "Riyadh", got.NameEn)
	assert.Equal(t, "Bearer access-1", b.lastAuth)
	assert.Equal(t, "ar", b.lastLang)
	assert.Equal(t, int32(0), b.refreshCalls)
}

func TestClient_RefreshesOnceAndReplays(t *testing.T) {
	b, client := newBackend(t, true)
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithTokenStore(context.Background(), store)

	var got city
	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, &got)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int32(1), b.refreshCalls)
	assert.Equal(t, int32(2), b.cityCalls)
	assert.Equal(t, "Bearer access-2", b.lastAuth)

	tokens, _ := store.Tokens(ctx)
	assert.Equal(t, apiclient.Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"}, tokens)
}

func TestClient_RefreshFailureClearsCredentials(t *testing.T) {
	b, client := newBackend(t, false)
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithTokenStore(context.Background(), store)

	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.Equal(t, int32(1), b.refreshCalls)
	assert.Equal(t, int32(1), b.cityCalls)

	tokens, _ := store.Tokens(ctx)
	assert.Empty(t, tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)

	_, err = client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.Equal(t, int32(1), b.cityCalls, "cleared credentials must not reach the backend")
}

func TestClient_ReplayIsNotRetriedTwice(t *testing.T) {
	var refreshCalls, cityCalls int32
	// The backend never accepts any access token, not even a freshly issued one.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]string{"access_token": "access-2"}})
			return
		}
		atomic.AddInt32(&cityCalls, 1)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "nope"})
	}))
	defer srv.Close()
	client := apiclient.NewClient(srv.URL, srv.Client(), apiclient.DefaultEndpoints, quietLogger())
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithTokenStore(context.Background(), store)

	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, int32(1), refreshCalls)
	assert.Equal(t, int32(2), cityCalls)

	tokens, _ := store.Tokens(ctx)
	assert.Equal(t, "access-2", tokens.AccessToken)
	assert.Equal(t, "refresh-1", tokens.RefreshToken, "refresh token is kept when the backend does not rotate it")
}

func TestClient_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	b, client := newBackend(t, true)
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithTokenStore(context.Background(), store)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&b.refreshCalls))
}

// slowRefreshBackend rejects access-1 and answers the refresh only once release is closed.
func slowRefreshBackend(t *testing.T, release <-chan struct{}) (*apiclient.Client, *int32, *int32) {
	t.Helper()
	var refreshCalls, cityCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
			<-release
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]string{"access_token": "access-2", "refresh_token": "refresh-2"},
			})
			return
		}
		atomic.AddInt32(&cityCalls, 1)
		if r.Header.Get("Authorization") != "Bearer access-2" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "token expired"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": city{ID: 1, NameEn: "Riyadh"}})
	}))
	t.Cleanup(srv.Close)
	return apiclient.NewClient(srv.URL, srv.Client(), apiclient.DefaultEndpoints, quietLogger()), &refreshCalls, &cityCalls
}

func TestClient_CancelledCallerDoesNotEndSharedRefresh(t *testing.T) {
	release := make(chan struct{})
	client, refreshCalls, cityCalls := slowRefreshBackend(t, release)
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	base := apiclient.WithTokenStore(context.Background(), store)

	cancelled, cancel := context.WithCancel(base)
	errA := make(chan error, 1)
	go func() {
		_, err := client.Do(cancelled, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)
		errA <- err
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(refreshCalls) == 1 }, time.Second, 5*time.Millisecond)

	errB := make(chan error, 1)
	go func() {
		var got city
		_, err := client.Do(base, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, &got)
		errB <- err
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(cityCalls) == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	assert.NoError(t, <-errB)
	assert.Equal(t, int32(1), atomic.LoadInt32(refreshCalls))

	tokens, _ := store.Tokens(base)
	assert.Equal(t, apiclient.Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"}, tokens)
}

func TestClient_UnansweredRefreshKeepsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"success": false, "message": "maintenance"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "token expired"})
	}))
	defer srv.Close()
	client := apiclient.NewClient(srv.URL, srv.Client(), apiclient.DefaultEndpoints, quietLogger())
	store := apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	ctx := apiclient.WithTokenStore(context.Background(), store)

	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrSessionExpired)

	tokens, _ := store.Tokens(ctx)
	assert.Equal(t, apiclient.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}, tokens)
}

func TestClient_AnonymousRequestSkipsRefresh(t *testing.T) {
	b, client := newBackend(t, true)

	_, err := client.Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/cities/1", Anonymous: true}, nil)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, int32(0), b.refreshCalls)
	assert.Empty(t, b.lastAuth)
}

func TestClient_MissingTokenStore(t *testing.T) {
	_, client := newBackend(t, true)

	_, err := client.Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/cities/1"}, nil)

	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}

func TestClient_ErrorClassification(t *testing.T) {
	_, client := newBackend(t, true)
	ctx := apiclient.WithTokenStore(context.Background(),
		apiclient.NewMemoryTokenStore("s1", apiclient.Tokens{AccessToken: "x", RefreshToken: "y"}))

	tests := []struct {
		name     string
		method   string
		path     string
		sentinel error
		status   int
		message  string
	}{
		{name: "validation", method: http.MethodPost, path: "/cities", sentinel: apperrors.ErrValidation, status: 422, message: "validation error"},
		{name: "server", method: http.MethodGet, path: "/broken", sentinel: apperrors.ErrBackendUnavailable, status: 502, message: "upstream down"},
		{name: "not found", method: http.MethodGet, path: "/missing", sentinel: apperrors.ErrNotFound, status: 404},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Do(ctx, apiclient.Request{Method: tc.method, Path: tc.path, Body: map[string]string{}}, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
			apiErr, ok := apperrors.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tc.status, apiErr.Status)
			if tc.message != "" {
				assert.Equal(t, tc.message, apiErr.Message)
			}
		})
	}

	_, err := client.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: "/cities", Body: map[string]string{}}, nil)
	apiErr, _ := apperrors.AsAPIError(err)
	assert.Equal(t, map[string]string{"name_en": "required"}, apiErr.Fields)
}

func TestClient_DecodesBareJSON(t *testing.T) {
	_, client := newBackend(t, true)

	var got []city
	_, err := client.Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/raw", Anonymous: true}, &got)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jeddah", got[0].NameEn)
}

func TestClient_TransportError(t *testing.T) {
	client := apiclient.NewClient("http://backend.invalid", failingTransport{}, apiclient.DefaultEndpoints, quietLogger())

	_, err := client.Do(context.Background(), apiclient.Request{Method: http.MethodGet, Path: "/cities", Anonymous: true}, nil)

	assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
}

type failingTransport struct{}

func (failingTransport) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: connection refused")
}
