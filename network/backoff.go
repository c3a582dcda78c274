// File: network/backoff.go
// Author: theMoor9
// License: Apache-2.0
//
// Doubling backoff schedule in [min, max] for connection retries.

package network

import "time"

// Backoff yields the wait before the next retry attempt.
type Backoff interface {
	Next() time.Duration
	Reset()
}

type doublingBackoff struct {
	d   time.Duration // doubles per call
	min time.Duration
	max time.Duration
}

// NewBackoff builds a doubling backoff bounded by [min, max]. Zero values
// fall back to 500ms and 30s.
func NewBackoff(min, max time.Duration) Backoff {
	if min <= 0 {
		min = 500 * time.Millisecond
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	if min > max {
		min = max
	}
	return &doublingBackoff{min: min, max: max}
}

func (b *doublingBackoff) Next() time.Duration {
	switch {
	case b.d == 0:
		b.d = b.min
	case b.d >= b.max/2:
		b.d = b.max
	default:
		b.d *= 2
	}
	return b.d
}

func (b *doublingBackoff) Reset() {
	b.d = 0
}
