package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vkarpenko/flightgate/config"
	"github.com/vkarpenko/flightgate/internal/domain"
)

// RedisCache holds upstream location lookups for a short TTL so repeated
// autocomplete queries and destination fetches do not burn Amadeus quota.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetAirports(ctx context.Context, keyword string) ([]domain.Airport, error) {
	data, err := c.client.Get(ctx, airportsKey(keyword)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, keyword string, airports []domain.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airportsKey(keyword), payload, c.ttl).Err()
}

func (c *RedisCache) GetDestinations(ctx context.Context) ([]domain.Destination, error) {
	data, err := c.client.Get(ctx, destinationsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var destinations []domain.Destination
	if err := json.Unmarshal(data, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *RedisCache) SetDestinations(ctx context.Context, destinations []domain.Destination) error {
	payload, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, destinationsKey(), payload, c.ttl).Err()
}

func airportsKey(keyword string) string {
	return "cache:airports:" + strings.ToLower(keyword)
}

func destinationsKey() string {
	return "cache:destinations"
}
