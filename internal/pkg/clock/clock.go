// Package clock abstracts time for run sessions and journal stamps
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dungeon-runner/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time
type Real struct{}

// Now returns the current UTC time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a real clock
func New() Clock {
	return &Real{}
}

// Manual is a clock that only moves when told to
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a clock stopped at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the stopped time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
