package domain

import (
	"sync"
	"time"
)

// SystemClock reports real wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// OverrideClock reports real time until an override is set, after which
// every validity comparison in the core sees the override instead. Last
// write wins; Clear returns to real time. The admin date-override endpoint
// uses this to exercise expiry without waiting out a validity window.
type OverrideClock struct {
	mu       sync.RWMutex
	override *time.Time
}

func NewOverrideClock() *OverrideClock { return &OverrideClock{} }

func (c *OverrideClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.override != nil {
		return *c.override
	}
	return time.Now()
}

func (c *OverrideClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = &t
}

func (c *OverrideClock) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.override = nil
}

// Overridden reports whether an override is currently active.
func (c *OverrideClock) Overridden() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.override != nil
}
