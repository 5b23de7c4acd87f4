package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avykhor/airport-api/config"
	"github.com/avykhor/airport-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// InvalidateFlights drops the cached flight list. Called after any
// mutation that changes seat availability.
func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireSeatLock takes a short-lived fast-path lock on one seat of a
// flight. The tickets unique constraint stays authoritative; the lock
// only rejects obvious collisions before a transaction is opened.
func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightID, row, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error {
	return c.client.Del(ctx, seatLockKey(flightID, row, seat)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func seatLockKey(flightID int64, row, seat int) string {
	return fmt.Sprintf("lock:flight:%d:seat:%d:%d", flightID, row, seat)
}
