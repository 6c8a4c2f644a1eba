package locker

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"sync"
	"time"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

// NewMemoryLocker returns a lock that only serializes callers inside this process.
func NewMemoryLocker() contracts.LockerService {
	return &memoryLocker{
		locks: make(map[string]heldLock),
		now:   time.Now,
	}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.locks[key]; ok && now.Before(held.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	l.locks[key] = heldLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	held, ok := l.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		return errLockNotOwned
	}
	delete(l.locks, key)
	return nil
}

// Sweep forgets locks that expired without being released.
func (l *memoryLocker) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, held := range l.locks {
		if !now.Before(held.expiresAt) {
			delete(l.locks, key)
			removed++
		}
	}
	return removed
}
