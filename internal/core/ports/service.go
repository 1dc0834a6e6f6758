package ports

import (
	"context"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
)

type ApproveOptions struct {
	// Simulate bypasses the physical reader and binds a placeholder UID.
	Simulate bool
	// Force overrides the card-already-bound conflict check.
	Force bool
}

type ApproveResult struct {
	Record       *domain.Pass       `json:"record"`
	UniquePassID string             `json:"unique_pass_id"`
	RFIDUID      string             `json:"rfid_uid"`
	Card         domain.CardPayload `json:"card"`
}

type LifecycleService interface {
	Approve(ctx context.Context, kind domain.Kind, id string, opts ApproveOptions) (*ApproveResult, error)
	Decline(ctx context.Context, kind domain.Kind, id, reason string) (*domain.Pass, error)
	EraseCard(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error)
	Hide(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error)
	RequestRenewal(ctx context.Context, kind domain.Kind, id string) (*domain.Pass, error)
}

// ValidationResult is what the conductor panel shows after a tap. A blank
// or unknown card is a normal result, never an error.
type ValidationResult struct {
	Valid      bool            `json:"valid"`
	Reason     string          `json:"reason,omitempty"`
	HolderName string          `json:"holder_name,omitempty"`
	PassType   domain.PassType `json:"pass_type,omitempty"`
	PassNumber string          `json:"pass_number,omitempty"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Status     string          `json:"status,omitempty"`
	Remaining  string          `json:"remaining,omitempty"`
}

type ValidationService interface {
	ScanAndValidate(ctx context.Context) (*ValidationResult, error)
}

type RegisterStudentInput struct {
	HolderName string `json:"holder_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Age        int    `json:"age"`
	College    string `json:"college"`
	RollNumber string `json:"roll_number"`
}

type ApplyPassengerInput struct {
	HolderName   string          `json:"holder_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Age          int             `json:"age"`
	PassType     domain.PassType `json:"pass_type"`
	DocumentFile string          `json:"document_file"`
	PhotoFile    string          `json:"photo_file"`
}

type RegistrationService interface {
	RegisterStudent(ctx context.Context, in RegisterStudentInput) (*domain.Pass, error)
	ApplyPassenger(ctx context.Context, in ApplyPassengerInput) (*domain.Pass, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}
