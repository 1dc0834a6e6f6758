package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// RegistrationService creates pending pass records: manual student entry
// by a college or admin, and passenger self-service applications.
type RegistrationService struct {
	passes ports.PassRepository
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(passes ports.PassRepository) *RegistrationService {
	return &RegistrationService{passes: passes}
}

func (s *RegistrationService) RegisterStudent(
	ctx context.Context,
	in ports.RegisterStudentInput,
) (*domain.Pass, error) {
	if err := validateContact(in.HolderName, in.Phone, in.Age); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.College) == "" {
		return nil, fmt.Errorf("%w: college is required", domain.ErrValidation)
	}

	pass := domain.Pass{
		ID:         uuid.NewString(),
		Kind:       domain.KindStudent,
		HolderName: strings.TrimSpace(in.HolderName),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Age:        in.Age,
		PassType:   domain.PassTypeStudent,
		Status:     domain.StatusPending,
		College:    strings.TrimSpace(in.College),
		RollNumber: strings.TrimSpace(in.RollNumber),
		CreatedAt:  time.Now(),
	}
	return s.passes.Create(ctx, pass)
}

func (s *RegistrationService) ApplyPassenger(
	ctx context.Context,
	in ports.ApplyPassengerInput,
) (*domain.Pass, error) {
	if err := validateContact(in.HolderName, in.Phone, in.Age); err != nil {
		return nil, err
	}
	switch in.PassType {
	case domain.PassTypeDay, domain.PassTypeWeekly, domain.PassTypeMonthly, domain.PassTypeOther:
	default:
		return nil, fmt.Errorf("%w: unsupported pass type %q", domain.ErrValidation, in.PassType)
	}

	pass := domain.Pass{
		ID:           uuid.NewString(),
		Kind:         domain.KindPassenger,
		HolderName:   strings.TrimSpace(in.HolderName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Age:          in.Age,
		PassType:     in.PassType,
		Status:       domain.StatusPending,
		DocumentFile: in.DocumentFile,
		PhotoFile:    in.PhotoFile,
		CreatedAt:    time.Now(),
	}
	return s.passes.Create(ctx, pass)
}

// validateContact enforces the edge rules: a name, an age of 5-120,
// and a 10-digit phone number.
func validateContact(name, phone string, age int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: holder name is required", domain.ErrValidation)
	}
	if age < 5 || age > 120 {
		return fmt.Errorf("%w: age must be between 5 and 120", domain.ErrValidation)
	}
	phone = strings.TrimSpace(phone)
	if len(phone) != 10 {
		return fmt.Errorf("%w: phone must be 10 digits", domain.ErrValidation)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: phone must be 10 digits", domain.ErrValidation)
		}
	}
	return nil
}
