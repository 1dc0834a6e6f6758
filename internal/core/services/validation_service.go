package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
	"github.com/harshangowda84/Harish-sub000/internal/metrics"
)

// scanReadTimeout is deliberately long: the holder needs time to find and
// tap their card at the conductor's reader.
const scanReadTimeout = 30 * time.Second

// ValidationService resolves a tapped card to a pass and reports live
// validity. A blank, unknown, or absent card is a normal result, never an
// error: scanning strangers' cards is the conductor's day job.
type ValidationService struct {
	passes ports.PassRepository
	reader ports.CardReader
	clock  ports.Clock
}

var _ ports.ValidationService = (*ValidationService)(nil)

func NewValidationService(
	passes ports.PassRepository,
	reader ports.CardReader,
	clock ports.Clock,
) *ValidationService {
	return &ValidationService{passes: passes, reader: reader, clock: clock}
}

func (s *ValidationService) ScanAndValidate(ctx context.Context) (*ports.ValidationResult, error) {
	uid, err := s.reader.ReadUID(ctx, scanReadTimeout)
	if err != nil {
		log.Printf("validation: card read failed: %v", err)
		metrics.ScansTotal.WithLabelValues("no_card").Inc()
		return &ports.ValidationResult{Valid: false, Reason: "no card detected"}, nil
	}

	rec, err := s.lookupApproved(ctx, uid)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		metrics.ScansTotal.WithLabelValues("not_registered").Inc()
		return &ports.ValidationResult{Valid: false, Reason: "card not registered"}, nil
	}

	now := s.clock.Now()
	expired := rec.Expired(now)

	status := "active"
	outcome := "valid"
	if expired {
		status = "expired"
		outcome = "expired"
	}
	metrics.ScansTotal.WithLabelValues(outcome).Inc()

	result := &ports.ValidationResult{
		Valid:      !expired,
		HolderName: rec.HolderName,
		PassType:   rec.PassType,
		PassNumber: rec.UniquePassID,
		ValidUntil: rec.PassValidity,
		Status:     status,
	}
	if rec.PassValidity != nil {
		result.Remaining = FormatRemaining(rec.PassValidity.Sub(now))
	} else {
		result.Remaining = FormatRemaining(-1)
	}
	return result, nil
}

// lookupApproved resolves a UID to an approved pass. At most one unexpired
// pass should hold a UID; if the data disagrees, the student match wins.
func (s *ValidationService) lookupApproved(ctx context.Context, uid string) (*domain.Pass, error) {
	for _, kind := range []domain.Kind{domain.KindStudent, domain.KindPassenger} {
		rec, err := s.passes.FindByUID(ctx, kind, uid)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if rec.Status == domain.StatusApproved {
			return rec, nil
		}
	}
	return nil, nil
}

// FormatRemaining renders the time left on a pass for the conductor
// display: "2d 3h 5m", "3h 5m", "45m", or "Expired".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "Expired"
	}
	mins := int(d / time.Minute)
	days := mins / (24 * 60)
	hours := (mins / 60) % 24
	m := mins % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, m)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
