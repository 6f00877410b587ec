package cache

import (
	"context"
	"encoding/json"
	"time"

	"appraisalhub-properties/pkg/logger"
	"appraisalhub-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// store a value in the cache with the given key and expiration time.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, true)
	}
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, false)
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into the destination.
// A missing key returns redis.Nil through the CacheError chain.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return NewCacheError("get", err, false)
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return NewCacheError("get", err, false)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		return NewCacheError("unmarshal", err, false)
	}
	return nil
}

// delete a key from the cache.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("del", err, false)
	}
	return nil
}
