package contracts

import (
	"context"
	"time"
)

// LockerService serialises the steps of one verification session. TryLock
// hands back the owner token Unlock must present; an expired lock is free.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
