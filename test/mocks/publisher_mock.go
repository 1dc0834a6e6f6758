package mocks

import (
	"context"
	"sync"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// MockPassEventPublisher implements ports.PassEventPublisher so the outbox
// relay can be tested without a real RabbitMQ connection.
type MockPassEventPublisher struct {
	mu sync.RWMutex

	PublishedEvents []ports.PassIssuedEvent

	// Error injection for testing error scenarios
	PublishError error

	PublishCallCount int
}

var _ ports.PassEventPublisher = (*MockPassEventPublisher)(nil)

func NewMockPassEventPublisher() *MockPassEventPublisher {
	return &MockPassEventPublisher{
		PublishedEvents: make([]ports.PassIssuedEvent, 0),
	}
}

func (m *MockPassEventPublisher) PublishPassIssued(ctx context.Context, evt ports.PassIssuedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCallCount++

	if m.PublishError != nil {
		return m.PublishError
	}

	m.PublishedEvents = append(m.PublishedEvents, evt)
	return nil
}

// GetPublishedEvents returns a copy of the captured events.
func (m *MockPassEventPublisher) GetPublishedEvents() []ports.PassIssuedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ports.PassIssuedEvent, len(m.PublishedEvents))
	copy(out, m.PublishedEvents)
	return out
}

// Reset clears captured events and injected errors.
func (m *MockPassEventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishedEvents = nil
	m.PublishError = nil
	m.PublishCallCount = 0
}
