package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/corray333/storefront/internal/service/models/cart"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const defaultTTL = 24 * time.Hour

// RedisCartStore keeps each session's cart as one JSON blob in Redis.
// The whole cart is written on every mutation: commit is explicit, there is
// no dirty tracking. Keys expire so abandoned carts clean themselves up.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a new Redis cart store.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	ttl := defaultTTL
	if minutes := viper.GetInt("redis.cart_ttl_minutes"); minutes > 0 {
		ttl = time.Duration(minutes) * time.Minute
	}

	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

// Get loads the session's cart. A missing key yields an empty cart.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if c.Lines == nil {
		c.Lines = map[int64]int{}
	}

	return &c, nil
}

// Save commits the cart blob, refreshing the session TTL.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Delete removes the session's cart.
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
