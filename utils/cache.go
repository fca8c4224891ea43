// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tripdesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CatalogCacheClient caches rate-catalog snapshots.
	CatalogCacheClient *redis.Client
	// LeaseClient is the dedicated client for fulfillment leases.
	LeaseClient *redis.Client
)

// InitCatalogCache initializes the Redis client used for catalog snapshot caching.
func InitCatalogCache() {
	CatalogCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CatalogCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Catalog Cache): %v", err)
	}
}

// GetCatalogCacheClient returns the catalog cache client.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		InitCatalogCache()
	}
	return CatalogCacheClient
}

// InitLeaseClient initializes the Redis client used for per-quote fulfillment leases.
func InitLeaseClient() {
	LeaseClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeaseDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LeaseClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Fulfillment Lease): %v", err)
	}
}

// GetLeaseClient returns the Redis client for fulfillment leases.
func GetLeaseClient() *redis.Client {
	if LeaseClient == nil {
		InitLeaseClient()
	}
	return LeaseClient
}
