package locker

import (
	"context"
	"errors"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"time"
)

const retryInterval = 20 * time.Millisecond

var errLockNotOwned = errors.New(constvars.ErrDevLockNotOwned)

// Acquire retries TryLock until the lock is held, the context ends or the
// lock expiration has elapsed, whichever comes first.
func Acquire(ctx context.Context, locker contracts.LockerService, key string, expiration time.Duration) (string, error) {
	deadline := time.Now().Add(expiration)
	for {
		acquired, lockValue, err := locker.TryLock(ctx, key, expiration)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}
		if time.Now().After(deadline) {
			return "", exceptions.ErrSessionLockNotAcquired(nil)
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrSessionLockNotAcquired(ctx.Err())
		case <-time.After(retryInterval):
		}
	}
}
