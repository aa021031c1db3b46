package utils

import (
	"context"
	"log"
	"time"

	"salonbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient caches catalog reads.
	CacheClient *redis.Client
	// CartClient is the dedicated client for cart sessions.
	CartClient *redis.Client
)

// InitCache initializes the Redis client used for catalog caching.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the catalog cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitCartCache initializes the Redis client holding cart sessions.
func InitCartCache() {
	CartClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart): %v", err)
	}
}

// GetCartClient returns the Redis client holding cart sessions.
func GetCartClient() *redis.Client {
	if CartClient == nil {
		InitCartCache()
	}
	return CartClient
}
