package utils

import (
	"context"
	"log"
	"time"

	"github.com/Present111/Hotel-Booking/config"
	"github.com/go-redis/redis/v8"
)

// LockClient is the Redis client holding payment intent locks.
var LockClient *redis.Client

// InitLockCache initializes the Redis client used for intent locks (REDIS_LOCK_DB).
func InitLockCache() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Lock): %v", err)
	}
}

// GetLockClient returns the intent lock client.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockCache()
	}
	return LockClient
}
