package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ikkim/matjip-backend/config"
	"github.com/ikkim/matjip-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// AnalyticsCache 식당 분석 결과 캐시. 키는 (식당 ID, 조회 기간)
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalyticsCache creates an analytics cache backed by the given client.
// client가 nil이면 캐시는 비활성화된다 (테스트 등)
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{client: client, ttl: ttl}
}

func analyticsKey(restaurantID uint, days int) string {
	return fmt.Sprintf("analytics:premium:%d:%d", restaurantID, days)
}

// Get loads a cached analytics payload into dest. Returns false on miss.
func (c *AnalyticsCache) Get(ctx context.Context, restaurantID uint, days int, dest interface{}) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, analyticsKey(restaurantID, days)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to read analytics cache", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores an analytics payload with the configured TTL.
func (c *AnalyticsCache) Set(ctx context.Context, restaurantID uint, days int, payload interface{}) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, analyticsKey(restaurantID, days), data, c.ttl).Err(); err != nil {
		logger.Error("Failed to write analytics cache", err, map[string]interface{}{
			"restaurant_id": restaurantID,
		})
		return err
	}
	return nil
}
