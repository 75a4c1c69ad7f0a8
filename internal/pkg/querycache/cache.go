package querycache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "sooquk:query"

var ErrMiss = errors.New("query cache miss")

// Cache stores backend query results per user scope and resource, so a mutation can
// drop every cached page of a resource at once.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func New(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Key builds sooquk:query:<scope>:<resource>:<sha1(query)>.
func Key(scope, resource, query string) string {
	sum := sha1.Sum([]byte(query))
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, scope, resource, hex.EncodeToString(sum[:]))
}

func (c *Cache) Get(ctx context.Context, key string, dst any) error {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		c.log.WithField("key", key).WithError(err).Warn("Dropping undecodable cache entry")
		c.client.Del(ctx, key)
		return ErrMiss
	}
	return nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate drops the cached queries of the given resources for every scope.
func (c *Cache) Invalidate(ctx context.Context, resources ...string) (int64, error) {
	var total int64
	for _, resource := range resources {
		n, err := c.deleteMatching(ctx, fmt.Sprintf("%s:*:%s:*", keyPrefix, resource))
		total += n
		if err != nil {
			return total, err
		}
	}
	c.log.WithFields(logrus.Fields{"resources": resources, "keys": total}).Debug("Query cache invalidated")
	return total, nil
}

// Reset drops every cached query.
func (c *Cache) Reset(ctx context.Context) (int64, error) {
	return c.deleteMatching(ctx, keyPrefix+":*")
}

func (c *Cache) deleteMatching(ctx context.Context, pattern string) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan %q: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("delete %d keys: %w", len(keys), err)
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
