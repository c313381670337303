package redis_adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "wareland:revoked:"

// keyValueStore is the subset of *redis.Client used here.
type keyValueStore interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RevokedTokenStore caches revocations in Redis in front of a durable store.
// Keys expire together with the token, so Redis never needs pruning.
// Any Redis failure falls through to the durable store.
type RevokedTokenStore struct {
	client  keyValueStore
	next    port.RevokedTokenStorePort
	timeout time.Duration
	now     func() time.Time
}

func NewRevokedTokenStore(client *redis.Client, next port.RevokedTokenStorePort) (*RevokedTokenStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return newRevokedTokenStore(client, next)
}

func newRevokedTokenStore(client keyValueStore, next port.RevokedTokenStorePort) (*RevokedTokenStore, error) {
	if next == nil {
		return nil, fmt.Errorf("durable revoked token store cannot be nil")
	}
	return &RevokedTokenStore{
		client:  client,
		next:    next,
		timeout: 250 * time.Millisecond,
		now:     time.Now,
	}, nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (s *RevokedTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	cacheCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.client.Exists(cacheCtx, tokenKey(token)).Result()
	if err == nil && n > 0 {
		return true, nil
	}
	if err != nil {
		s.logRedisError(ctx, "exists", err)
	}
	return s.next.Exists(ctx, token)
}

func (s *RevokedTokenStore) Revoke(ctx context.Context, token domain.RevokedToken) error {
	err := s.next.Revoke(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrRevokedTokenExists) {
		return err
	}

	ttl := token.ExpiresAt.Sub(s.now())
	if ttl > 0 {
		cacheCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if setErr := s.client.Set(cacheCtx, tokenKey(token.Token), token.RevokedAt.Unix(), ttl).Err(); setErr != nil {
			s.logRedisError(ctx, "set", setErr)
		}
	}
	return err
}

func (s *RevokedTokenStore) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.next.PruneExpired(ctx, now)
}

func (s *RevokedTokenStore) logRedisError(ctx context.Context, op string, err error) {
	contextkeys.LoggerFromContext(ctx).Warn("Redis revocation cache unavailable, using durable store", port.Fields{
		"component": "RedisRevokedTokenStore",
		"op":        op,
		"error":     err.Error(),
	})
}
