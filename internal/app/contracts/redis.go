package contracts

import (
	"context"
	"time"
)

// RedisRepository is the key-value surface behind the redis session store
// and the session lock. Values are JSON encoded on the way in.
type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key in one round trip, and only while it still
	// holds value. found is false when the key had already expired.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (found bool, deleted bool, err error)
}
