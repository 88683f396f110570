// Package redisstats keeps per-driver daily delivery counters and earnings
// in Redis. Stats live outside the transactional store on purpose: they are
// advisory dashboard numbers, incremented after a delivery commits.
package redisstats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"grabngo/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// statsTTL keeps daily keys around long enough for weekly summaries before
// they expire on their own.
const statsTTL = 14 * 24 * time.Hour

const (
	deliveriesField = "deliveries"
	earningsField   = "earnings"
)

// RedisStatsRepository implements DriverStatsRepository on a Redis hash per
// driver and day.
type RedisStatsRepository struct {
	client *redis.Client
}

// NewRedisStatsRepository creates a stats repository and verifies the
// connection.
func NewRedisStatsRepository(addr, password string, db int) (*RedisStatsRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStatsRepository{client: client}, nil
}

// Close releases the underlying Redis connection.
func (r *RedisStatsRepository) Close() error {
	return r.client.Close()
}

// RecordDelivery increments the driver's delivery counter and earnings for
// the given day. Both increments ride one pipeline so a delivery never
// shows up in one number but not the other.
func (r *RedisStatsRepository) RecordDelivery(
	ctx context.Context,
	driverEmail string,
	earnings float64,
	day time.Time,
) error {
	key := statsKey(driverEmail, day)

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, deliveriesField, 1)
	pipe.HIncrByFloat(ctx, key, earningsField, earnings)
	pipe.Expire(ctx, key, statsTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// GetDailyStats returns the driver's stats for the given day. A driver with
// no completed deliveries gets zero values, not an error.
func (r *RedisStatsRepository) GetDailyStats(
	ctx context.Context,
	driverEmail string,
	day time.Time,
) (ports.DriverDailyStats, error) {
	fields, err := r.client.HGetAll(ctx, statsKey(driverEmail, day)).Result()
	if err != nil {
		return ports.DriverDailyStats{}, err
	}

	var stats ports.DriverDailyStats
	if raw, ok := fields[deliveriesField]; ok {
		if stats.Deliveries, err = strconv.Atoi(raw); err != nil {
			return ports.DriverDailyStats{}, fmt.Errorf("corrupt deliveries counter %q: %w", raw, err)
		}
	}
	if raw, ok := fields[earningsField]; ok {
		if stats.Earnings, err = strconv.ParseFloat(raw, 64); err != nil {
			return ports.DriverDailyStats{}, fmt.Errorf("corrupt earnings counter %q: %w", raw, err)
		}
	}

	return stats, nil
}

func statsKey(driverEmail string, day time.Time) string {
	return fmt.Sprintf("driver:stats:%s:%s", driverEmail, day.UTC().Format("2006-01-02"))
}
