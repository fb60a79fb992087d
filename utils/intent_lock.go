package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisIntentLocker serialises reconciliation of a single payment intent across instances.
type RedisIntentLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIntentLocker(client *redis.Client, ttl time.Duration) *RedisIntentLocker {
	if ttl <= 0 {
		ttl = DefaultIntentLockTTL
	}
	return &RedisIntentLocker{Client: client, TTL: ttl}
}

// Acquire takes the lock for intentID. ok is false when another holder has it.
// The returned release func is always safe to call.
func (l *RedisIntentLocker) Acquire(ctx context.Context, intentID string) (release func(), ok bool, err error) {
	key := IntentLockPrefix + intentID
	token := uuid.NewString()

	ok, err = l.Client.SetNX(ctx, key, token, l.TTL).Result()
	if err != nil {
		return func() {}, false, fmt.Errorf("acquire intent lock: %w", err)
	}
	if !ok {
		return func() {}, false, nil
	}

	release = func() {
		// Fresh context: the request context may already be cancelled.
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, l.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			GetLogger().Sugar().Warnf("failed to release intent lock %s: %v", intentID, err)
		}
	}
	return release, true, nil
}
