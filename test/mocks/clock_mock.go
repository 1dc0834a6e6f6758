package mocks

import (
	"sync"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// MockClock reports a fixed instant so expiry arithmetic is deterministic.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

var _ ports.Clock = (*MockClock)(nil)

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) SetNow(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
