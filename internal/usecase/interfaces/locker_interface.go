package interfaces

import (
	"context"
	"time"
)

// UnlockFunc releases a lock obtained from ILocker.
type UnlockFunc func(ctx context.Context) error

// ILocker serializes work on a key. Lock blocks until the key is free or ctx
// is done; ttl bounds how long a crashed holder can keep it.
type ILocker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
