package contracts

import "time"

// Sweeper drops expired entries from an in-process store.
type Sweeper interface {
	Sweep(now time.Time) int
}
