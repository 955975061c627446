package testutil

import (
	"sync"
	"time"
)

// Epoch is the first instant a SteppingClock reports.
var Epoch = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// SteppingClock is a deterministic wall clock for tests.
//
// Each call to Now returns Epoch plus one second per previous call, so
// timestamps written during a test are predictable and strictly increasing.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu    sync.Mutex
	ticks int64
}

// NewSteppingClock creates a clock whose first Now() returns Epoch.
func NewSteppingClock() *SteppingClock {
	return &SteppingClock{}
}

// Now returns the current instant and advances the clock by one second.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := Epoch.Add(time.Duration(c.ticks) * time.Second)
	c.ticks++
	return t
}

// Reset rewinds the clock so the next Now() returns Epoch again.
func (c *SteppingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = 0
}
