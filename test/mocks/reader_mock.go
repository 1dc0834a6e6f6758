package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// MockCardReader implements ports.CardReader. Seed it with UIDs to hand
// out in order; set ReadError to simulate timeouts and device failures.
type MockCardReader struct {
	mu sync.Mutex

	uids []string

	// ReadError is returned instead of a UID when set.
	ReadError error

	ReadCalls int
	// Timeouts records the timeout value of each call.
	Timeouts []time.Duration
}

var _ ports.CardReader = (*MockCardReader)(nil)

func NewMockCardReader(uids ...string) *MockCardReader {
	return &MockCardReader{uids: uids}
}

func (m *MockCardReader) ReadUID(ctx context.Context, timeout time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadCalls++
	m.Timeouts = append(m.Timeouts, timeout)

	if m.ReadError != nil {
		return "", m.ReadError
	}
	if len(m.uids) == 0 {
		return "", domain.ErrReadTimeout
	}
	uid := m.uids[0]
	if len(m.uids) > 1 {
		m.uids = m.uids[1:]
	}
	return uid, nil
}

// QueueUIDs replaces the pending UID sequence.
func (m *MockCardReader) QueueUIDs(uids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uids = uids
}
