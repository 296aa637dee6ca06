// Package clock abstracts the wall clock so frame cadence (firing, spawning)
// can be driven deterministically in tests and in the headless runner.
package clock

import (
	"sync"
	"time"
)

// Clock is the time source the simulation reads once per frame.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func NewReal() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

// Manual is a controllable clock. It only moves when told to.
type Manual struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set jumps to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
