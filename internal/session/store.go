package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "sooquk:session:"

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in redis with a sliding TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Store {
	return &Store{client: client, ttl: ttl, log: log}
}

func (st *Store) TTL() time.Duration { return st.ttl }

func (st *Store) Create(ctx context.Context, s *Session) (*Session, error) {
	now := time.Now().UTC()
	s.ID = uuid.New().String()
	s.CreatedAt = now
	s.ExpiresAt = now.Add(st.ttl)
	s.store = st

	if err := st.Save(ctx, s); err != nil {
		return nil, err
	}
	st.log.WithFields(logrus.Fields{"user_id": s.UserID, "role": s.Role}).Info("Session created")
	return s, nil
}

func (st *Store) Load(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	raw, err := st.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.store = st
	return &s, nil
}

// Save writes the session and extends its lifetime.
func (st *Store) Save(ctx context.Context, s *Session) error {
	s.ExpiresAt = time.Now().UTC().Add(st.ttl)
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := st.client.Set(ctx, keyPrefix+s.ID, raw, st.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// UpdateLocale changes only the locale of the stored session, leaving tokens
// rotated by parallel requests untouched.
func (st *Store) UpdateLocale(ctx context.Context, id, locale string) error {
	key := keyPrefix + id
	return st.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		var s Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decode session: %w", err)
		}
		s.Locale = locale
		s.ExpiresAt = time.Now().UTC().Add(st.ttl)
		raw, err = json.Marshal(&s)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, st.ttl)
			return nil
		})
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	}, key)
}

func (st *Store) Delete(ctx context.Context, id string) error {
	if err := st.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
