package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boinvit/booking-service/internal/domain"
)

// ErrCacheMiss is returned when a key is absent or a stored value cannot be
// decoded (the entry is dropped in that case)
var ErrCacheMiss = errors.New("cache: miss")

const businessTTL = 5 * time.Minute

// BusinessCache is a read-through cache for business profiles. Public booking
// pages hammer the same business row, so it sits in front of the repository.
type BusinessCache struct {
	client *redis.Client
}

// NewBusinessCache connects to redis and verifies the connection
func NewBusinessCache(addr, password string, db int) (*BusinessCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache.NewBusinessCache: %w", err)
	}

	return &BusinessCache{client: client}, nil
}

func businessKey(businessID string) string {
	return fmt.Sprintf("business:%s", businessID)
}

// Get fetches a cached business, returning ErrCacheMiss when absent
func (c *BusinessCache) Get(ctx context.Context, businessID string) (*domain.Business, error) {
	raw, err := c.client.Get(ctx, businessKey(businessID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache.Get: %w", err)
	}

	var business domain.Business
	if err := json.Unmarshal(raw, &business); err != nil {
		// stale or corrupt entry, drop it and refetch from storage
		c.client.Del(ctx, businessKey(businessID))
		return nil, ErrCacheMiss
	}
	return &business, nil
}

// Set stores a business under its id with the standard TTL
func (c *BusinessCache) Set(ctx context.Context, business *domain.Business) error {
	raw, err := json.Marshal(business)
	if err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	if err := c.client.Set(ctx, businessKey(business.ID), raw, businessTTL).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

// Invalidate drops a business from the cache after profile or hours updates
func (c *BusinessCache) Invalidate(ctx context.Context, businessID string) error {
	if err := c.client.Del(ctx, businessKey(businessID)).Err(); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}
	return nil
}

// Close releases the redis connection
func (c *BusinessCache) Close() error {
	return c.client.Close()
}
