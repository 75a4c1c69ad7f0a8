package session

import (
	"context"
	"time"

	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
)

type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Locale       string    `json:"locale"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`

	store *Store
}

func (s *Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// Key implements apiclient.TokenStore.
func (s *Session) Key() string { return s.ID }

// Tokens re-reads the stored session so a refresh done by a parallel request is picked up.
func (s *Session) Tokens(ctx context.Context) (apiclient.Tokens, error) {
	if s.store != nil {
		fresh, err := s.store.Load(ctx, s.ID)
		if err != nil {
			return apiclient.Tokens{}, err
		}
		s.AccessToken, s.RefreshToken = fresh.AccessToken, fresh.RefreshToken
	}
	return apiclient.Tokens{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}, nil
}

func (s *Session) SaveTokens(ctx context.Context, tokens apiclient.Tokens) error {
	s.AccessToken, s.RefreshToken = tokens.AccessToken, tokens.RefreshToken
	if s.store == nil {
		return nil
	}
	return s.store.Save(ctx, s)
}

// ClearTokens ends the session; the next request is sent back to the login page.
func (s *Session) ClearTokens(ctx context.Context) error {
	s.AccessToken, s.RefreshToken = "", ""
	if s.store == nil {
		return nil
	}
	return s.store.Delete(ctx, s.ID)
}

type sessionKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, s)
	return apiclient.WithTokenStore(ctx, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
