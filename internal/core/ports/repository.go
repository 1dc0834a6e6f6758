package ports

import (
	"context"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
)

// PassRepository is the persistence port for pass records and the BusPass
// ledger. Lookups that find nothing return domain.ErrNotFound.
type PassRepository interface {
	Get(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error)
	FindByUID(ctx context.Context, kind domain.Kind, uid string) (*domain.Pass, error)
	Create(ctx context.Context, pass domain.Pass) (*domain.Pass, error)
	Update(ctx context.Context, pass domain.Pass) (*domain.Pass, error)

	// UpdateApproval persists the approval fields and the outbox event in a
	// single transaction, so the pass.issued event is exactly as durable as
	// the approval itself.
	UpdateApproval(ctx context.Context, pass domain.Pass, outboxPayload []byte) (*domain.Pass, error)

	ListByStatus(ctx context.Context, kind domain.Kind, status domain.Status) ([]domain.Pass, error)

	CreateBusPass(ctx context.Context, entry domain.BusPass) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
}
