package apiclient

import (
	"context"
	"sync"
)

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore holds the credentials of one caller (a dashboard session, a worker).
type TokenStore interface {
	// Key identifies the credential owner; concurrent refreshes for the same key are merged.
	Key() string
	Tokens(ctx context.Context) (Tokens, error)
	SaveTokens(ctx context.Context, tokens Tokens) error
	ClearTokens(ctx context.Context) error
}

type tokenStoreKey struct{}
type languageKey struct{}

func WithTokenStore(ctx context.Context, store TokenStore) context.Context {
	return context.WithValue(ctx, tokenStoreKey{}, store)
}

func TokenStoreFrom(ctx context.Context) (TokenStore, bool) {
	store, ok := ctx.Value(tokenStoreKey{}).(TokenStore)
	return store, ok && store != nil
}

// WithLanguage makes outgoing requests carry Accept-Language so backend messages come back localized.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

func languageFrom(ctx context.Context) string {
	lang, _ := ctx.Value(languageKey{}).(string)
	return lang
}

// MemoryTokenStore keeps tokens in process memory. Used by workers holding a service account.
type MemoryTokenStore struct {
	key    string
	mu     sync.RWMutex
	tokens Tokens
}

func NewMemoryTokenStore(key string, tokens Tokens) *MemoryTokenStore {
	return &MemoryTokenStore{key: key, tokens: tokens}
}

func (s *MemoryTokenStore) Key() string { return s.key }

func (s *MemoryTokenStore) Tokens(ctx context.Context) (Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, nil
}

func (s *MemoryTokenStore) SaveTokens(ctx context.Context, tokens Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
	return nil
}

func (s *MemoryTokenStore) ClearTokens(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = Tokens{}
	return nil
}
