package slotcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slots:occupied:"

// Cache хранит занятые слоты дня в Redis. Короткий TTL ограничивает
// устаревание, инвалидация при изменении заказа убирает его совсем.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetOccupied(ctx context.Context, date string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+date).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("slot cache get: %w", err)
	}

	var times []string
	err = json.Unmarshal([]byte(raw), &times)
	if err != nil {
		return nil, false, fmt.Errorf("slot cache decode: %w", err)
	}

	return times, true, nil
}

func (c *Cache) SetOccupied(ctx context.Context, date string, times []string) error {
	raw, err := json.Marshal(times)
	if err != nil {
		return fmt.Errorf("slot cache encode: %w", err)
	}

	err = c.client.Set(ctx, keyPrefix+date, raw, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("slot cache set: %w", err)
	}

	return nil
}

func (c *Cache) InvalidateOccupied(ctx context.Context, date string) error {
	err := c.client.Del(ctx, keyPrefix+date).Err()
	if err != nil {
		return fmt.Errorf("slot cache invalidate: %w", err)
	}

	return nil
}
