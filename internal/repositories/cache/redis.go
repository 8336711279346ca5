// Package cache is the Redis-backed cache for provider catalog responses
// (bank lists, biller catalogs, government service providers) which change
// rarely but are fetched on every client session.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// CacheService wraps the Redis client with JSON marshalling and a default TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

// GetJSON loads a cached value into out. Returns false on a miss.
func (s *CacheService) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under the default TTL.
func (s *CacheService) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Delete removes one key.
func (s *CacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// DeleteTenant removes every cached entry for a tenant.
func (s *CacheService) DeleteTenant(ctx context.Context, tenantID string) error {
	keys, err := s.client.Keys(ctx, fmt.Sprintf("tenant:%s:*", tenantID)).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// BanksKey is the cache key for a tenant's participant bank list.
func BanksKey(tenantID string) string {
	return fmt.Sprintf("tenant:%s:banks", tenantID)
}

// BillersKey is the cache key for a tenant's biller catalog per category.
func BillersKey(tenantID, category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("tenant:%s:billers:%s", tenantID, category)
}

// GovernmentServicesKey is the cache key for a tenant's service providers.
func GovernmentServicesKey(tenantID string) string {
	return fmt.Sprintf("tenant:%s:gov-services", tenantID)
}
