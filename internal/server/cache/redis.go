package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	redis "github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// DefaultKey is the Redis key holding the JSON-encoded user list.
const DefaultKey = "userdirectory:users"

// DefaultVersionKey is the Redis counter bumped by every invalidation.
const DefaultVersionKey = "userdirectory:users:version"

var errStale = errors.New("cached list is stale")

// RedisListCache keeps the whole list as one JSON document with a TTL.
type RedisListCache struct {
	client     *redis.Client
	key        string
	versionKey string
	ttl        time.Duration
}

// NewRedisListCache connects to addr and verifies the connection with PING.
func NewRedisListCache(ctx context.Context, addr string, ttl time.Duration) (*RedisListCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisListCache{client: client, key: DefaultKey, versionKey: DefaultVersionKey, ttl: ttl}, nil
}

func (c *RedisListCache) Get(ctx context.Context) ([]models.User, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	users := []models.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal users json: %w", err)
	}
	return users, true, nil
}

// Version returns the current invalidation counter; 0 before the first
// invalidation.
func (c *RedisListCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, c.versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get version failed: %w", err)
	}
	return v, nil
}

// Set stores users when the counter still equals version. The check and
// the write run in one WATCH/MULTI transaction; losing the race is not an
// error.
func (c *RedisListCache) Set(ctx context.Context, version int64, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, c.versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, c.key, data, c.ttl)
			return nil
		})
		return err
	}, c.versionKey)

	switch {
	case err == nil, errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("redis set failed: %w", err)
	}
}

// Invalidate drops the cached list and advances the version atomically.
func (c *RedisListCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, c.versionKey)
		p.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate failed: %w", err)
	}
	return nil
}

func (c *RedisListCache) Close() error {
	return c.client.Close()
}
