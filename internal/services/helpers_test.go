package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/querycache"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/validation"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type recordedActivity struct {
	action, resource, resourceID string
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recordedActivity
}

func (f *fakeRecorder) Record(_ context.Context, action, resource, resourceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, recordedActivity{action, resource, resourceID})
}

func (f *fakeRecorder) all() []recordedActivity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedActivity(nil), f.entries...)
}

// backend counts calls per "METHOD path" and answers from the registered handlers.
type backend struct {
	mu       sync.Mutex
	calls    map[string]int
	bodies   map[string][]byte
	handlers map[string]http.HandlerFunc
}

func newBackend() *backend {
	return &backend{
		calls:    map[string]int{},
		bodies:   map[string][]byte{},
		handlers: map[string]http.HandlerFunc{},
	}
}

func (b *backend) on(method, path string, h http.HandlerFunc) {
	b.handlers[method+" "+path] = h
}

func (b *backend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *backend) body(method, path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[method+" "+path]
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	raw, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls[key]++
	b.bodies[key] = raw
	h, ok := b.handlers[key]
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "no route " + key})
		return
	}
	h(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func ok(data any, meta ...apiclient.PageMeta) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"success": true, "message": "ok", "data": data}
		if len(meta) > 0 {
			body["meta"] = meta[0]
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func fail(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, map[string]any{"success": false, "message": message})
	}
}

type harness struct {
	backend  *backend
	deps     Deps
	recorder *fakeRecorder
	redis    *redis.Client
	mr       *miniredis.Miniredis
	log      *logrus.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	b := newBackend()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	rec := &fakeRecorder{}
	return &harness{
		backend:  b,
		recorder: rec,
		redis:    rdb,
		mr:       mr,
		log:      log,
		deps: Deps{
			Client:    apiclient.NewClient(srv.URL, srv.Client(), apiclient.DefaultEndpoints, log),
			Cache:     querycache.New(rdb, time.Minute, log),
			Validator: validation.New(),
			Activity:  rec,
			Log:       log,
		},
	}
}

func asUser(userID, role string) context.Context {
	return session.NewContext(context.Background(), &session.Session{
		ID:           "session-" + userID,
		UserID:       userID,
		Name:         "User " + userID,
		Role:         role,
		AccessToken:  "access-" + userID,
		RefreshToken: "refresh-" + userID,
	})
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}
