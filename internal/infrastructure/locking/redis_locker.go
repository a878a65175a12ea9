// Package locking provides the per-key mutual exclusion used to serialize
// quotation generation for one policy.
package locking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aseguraopen/internal/usecase/interfaces"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

const defaultPollInterval = 50 * time.Millisecond

// ErrLockAcquire is returned when Redis refuses the lock request.
var ErrLockAcquire = errors.New("failed to acquire distributed lock")

// releaseScript deletes the key only while it still holds our token, so an
// expired holder cannot release a lock someone else took since.
var releaseScript = backend.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker implements interfaces.ILocker with SET NX PX, for deployments
// running more than one replica.
type RedisLocker struct {
	client       backend.UniversalClient
	prefix       string
	pollInterval time.Duration
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(client backend.UniversalClient, prefix string) *RedisLocker {
	return &RedisLocker{
		client:       client,
		prefix:       prefix,
		pollInterval: defaultPollInterval,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (interfaces.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %v", ErrLockAcquire, err)
		}
		if ok {
			return func(ctx context.Context) error {
				return releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
