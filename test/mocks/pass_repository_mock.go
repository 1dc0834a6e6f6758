// Package mocks provides in-memory implementations of the port interfaces
// so services can be tested without Postgres, Redis, RabbitMQ, or a serial
// reader attached.
package mocks

import (
	"context"
	"sync"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

type passKey struct {
	kind domain.Kind
	id   string
}

// MockPassRepository implements ports.PassRepository with in-memory
// storage, call tracking, and error injection.
type MockPassRepository struct {
	mu sync.RWMutex

	passes    map[passKey]*domain.Pass
	BusPasses []domain.BusPass

	// Outbox payloads captured from UpdateApproval, in call order.
	OutboxPayloads [][]byte

	// Call tracking for verification
	GetCalls            []string
	UpdateCalls         []string
	UpdateApprovalCalls []string
	CreateCalls         []string

	// Error injection
	GetError            error
	FindByUIDError      error
	CreateError         error
	UpdateError         error
	UpdateApprovalError error
	CreateBusPassError  error
	ListError           error
}

var _ ports.PassRepository = (*MockPassRepository)(nil)

func NewMockPassRepository() *MockPassRepository {
	return &MockPassRepository{
		passes: make(map[passKey]*domain.Pass),
	}
}

// SeedPass adds a pass for test setup.
func (m *MockPassRepository) SeedPass(pass domain.Pass) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := pass
	m.passes[passKey{pass.Kind, pass.ID}] = &p
}

// PassState returns a copy of the stored record, for assertions.
func (m *MockPassRepository) PassState(kind domain.Kind, id string) (domain.Pass, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passes[passKey{kind, id}]
	if !ok {
		return domain.Pass{}, false
	}
	return *p, true
}

func (m *MockPassRepository) Get(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, id)
	m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passes[passKey{kind, id}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *MockPassRepository) FindByUID(ctx context.Context, kind domain.Kind, uid string) (*domain.Pass, error) {
	if m.FindByUIDError != nil {
		return nil, m.FindByUIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.passes {
		if p.Kind == kind && p.RFIDUID != "" && p.RFIDUID == uid {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockPassRepository) Create(ctx context.Context, pass domain.Pass) (*domain.Pass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, pass.ID)

	if m.CreateError != nil {
		return nil, m.CreateError
	}

	p := pass
	m.passes[passKey{pass.Kind, pass.ID}] = &p
	return &p, nil
}

func (m *MockPassRepository) Update(ctx context.Context, pass domain.Pass) (*domain.Pass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls = append(m.UpdateCalls, pass.ID)

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	key := passKey{pass.Kind, pass.ID}
	if _, ok := m.passes[key]; !ok {
		return nil, domain.ErrNotFound
	}
	p := pass
	m.passes[key] = &p
	return &p, nil
}

func (m *MockPassRepository) UpdateApproval(ctx context.Context, pass domain.Pass, outboxPayload []byte) (*domain.Pass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateApprovalCalls = append(m.UpdateApprovalCalls, pass.ID)

	if m.UpdateApprovalError != nil {
		return nil, m.UpdateApprovalError
	}

	key := passKey{pass.Kind, pass.ID}
	if _, ok := m.passes[key]; !ok {
		return nil, domain.ErrNotFound
	}
	p := pass
	m.passes[key] = &p
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	return &p, nil
}

func (m *MockPassRepository) ListByStatus(ctx context.Context, kind domain.Kind, status domain.Status) ([]domain.Pass, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Pass
	for _, p := range m.passes {
		if p.Kind == kind && p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *MockPassRepository) CreateBusPass(ctx context.Context, entry domain.BusPass) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateBusPassError != nil {
		return m.CreateBusPassError
	}
	m.BusPasses = append(m.BusPasses, entry)
	return nil
}

// Reset clears stored data and call tracking between tests.
func (m *MockPassRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passes = make(map[passKey]*domain.Pass)
	m.BusPasses = nil
	m.OutboxPayloads = nil
	m.GetCalls = nil
	m.UpdateCalls = nil
	m.UpdateApprovalCalls = nil
	m.CreateCalls = nil
	m.GetError = nil
	m.FindByUIDError = nil
	m.CreateError = nil
	m.UpdateError = nil
	m.UpdateApprovalError = nil
	m.CreateBusPassError = nil
	m.ListError = nil
}
