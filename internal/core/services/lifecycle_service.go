package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
	"github.com/harshangowda84/Harish-sub000/internal/metrics"
)

// approveReadTimeout bounds how long an approval waits for the admin to
// hold a card against the reader.
const approveReadTimeout = 12 * time.Second

// LifecycleService drives every state transition of a pass record and its
// binding to a physical card UID. All repository writes happen last: a
// reader timeout, device error, or binding conflict leaves the record in
// its pre-operation state.
type LifecycleService struct {
	passes    ports.PassRepository
	reader    ports.CardReader
	simulator ports.CardReader
	clock     ports.Clock

	// uidLocks serializes the conflict-check-then-persist sequence per
	// card UID so two concurrent approvals cannot both bind the same card.
	mu       sync.Mutex
	uidLocks map[string]*sync.Mutex
}

var _ ports.LifecycleService = (*LifecycleService)(nil)

func NewLifecycleService(
	passes ports.PassRepository,
	reader ports.CardReader,
	simulator ports.CardReader,
	clock ports.Clock,
) *LifecycleService {
	return &LifecycleService{
		passes:    passes,
		reader:    reader,
		simulator: simulator,
		clock:     clock,
		uidLocks:  make(map[string]*sync.Mutex),
	}
}

// Approve runs the full approval flow: first approval assigns the pass
// number and validity window; re-approval of an already-approved record
// ("regenerate") reuses both and only rebinds the card; an approval of a
// renewal-requested record opens a fresh validity window.
func (s *LifecycleService) Approve(
	ctx context.Context,
	kind domain.Kind,
	id string,
	opts ports.ApproveOptions,
) (*ports.ApproveResult, error) {
	rec, err := s.passes.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	isRegenerate := rec.Status == domain.StatusApproved
	renewing := rec.RenewalRequested

	rec.Status = domain.StatusApproved
	rec.DeclineReason = ""

	if rec.UniquePassID == "" {
		rec.UniquePassID = NewPassNumber()
	}

	now := s.clock.Now()
	switch {
	case renewing:
		v := now.Add(domain.ValidityDuration(kind, rec.PassType))
		rec.PassValidity = &v
		rec.RenewalRequested = false
	case !isRegenerate && rec.PassValidity == nil:
		v := now.Add(domain.ValidityDuration(kind, rec.PassType))
		rec.PassValidity = &v
	case rec.PassValidity == nil:
		// Regenerate on a record that somehow never got a window; fall
		// back to now so we never persist a null validity.
		v := now
		rec.PassValidity = &v
	}

	card := domain.NewCardPayload(rec, now)

	reader := s.reader
	if opts.Simulate {
		reader = s.simulator
	}
	uid, err := reader.ReadUID(ctx, approveReadTimeout)
	if err != nil {
		if errors.Is(err, domain.ErrReadTimeout) {
			metrics.ReaderFailuresTotal.WithLabelValues("timeout").Inc()
		} else {
			metrics.ReaderFailuresTotal.WithLabelValues("device").Inc()
		}
		return nil, err
	}

	unlock := s.lockUID(uid)
	defer unlock()

	if !opts.Force {
		if bindErr := s.checkCardFree(ctx, uid, kind, id, now); bindErr != nil {
			return nil, bindErr
		}
	}

	rec.RFIDUID = uid

	evt := ports.PassIssuedEvent{
		PassID:       rec.ID,
		Kind:         string(rec.Kind),
		UniquePassID: rec.UniquePassID,
		HolderName:   rec.HolderName,
		PassType:     string(rec.PassType),
		RFIDUID:      uid,
		ValidUntil:   rec.PassValidity.UTC().Format(time.RFC3339),
	}
	outboxPayload, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	updated, err := s.passes.UpdateApproval(ctx, *rec, outboxPayload)
	if err != nil {
		return nil, err
	}

	if kind == domain.KindStudent {
		entry := domain.BusPass{
			PassNumber: NewPassNumber(),
			ExpiryDate: *updated.PassValidity,
			RFIDUID:    uid,
			Status:     domain.BusPassActive,
			CreatedAt:  now,
		}
		// Best-effort: the approval is the primary side effect.
		if err := s.passes.CreateBusPass(ctx, entry); err != nil {
			log.Printf("lifecycle: bus pass ledger write failed for %s: %v", updated.ID, err)
		}
	}

	metrics.ApprovalsTotal.WithLabelValues(string(kind)).Inc()

	return &ports.ApproveResult{
		Record:       updated,
		UniquePassID: updated.UniquePassID,
		RFIDUID:      uid,
		Card:         card,
	}, nil
}

// checkCardFree searches both record kinds for another record already
// bound to uid with an unexpired validity window. Students are checked
// first so the conflict report is deterministic.
func (s *LifecycleService) checkCardFree(
	ctx context.Context,
	uid string,
	kind domain.Kind,
	id string,
	now time.Time,
) error {
	for _, k := range []domain.Kind{domain.KindStudent, domain.KindPassenger} {
		other, err := s.passes.FindByUID(ctx, k, uid)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if other.Kind == kind && other.ID == id {
			continue
		}
		if other.Expired(now) {
			continue
		}
		metrics.CardConflictsTotal.Inc()
		return &domain.CardBoundError{
			UID:        uid,
			HolderName: other.HolderName,
			Kind:       other.Kind,
			PassType:   other.PassType,
			Expiry:     *other.PassValidity,
		}
	}
	return nil
}

func (s *LifecycleService) Decline(
	ctx context.Context,
	kind domain.Kind,
	id, reason string,
) (*domain.Pass, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: decline reason is required", domain.ErrValidation)
	}

	rec, err := s.passes.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	rec.Status = domain.StatusDeclined
	rec.DeclineReason = reason

	updated, err := s.passes.Update(ctx, *rec)
	if err != nil {
		return nil, err
	}
	metrics.DeclinesTotal.WithLabelValues(string(kind)).Inc()
	return updated, nil
}

// EraseCard clears the card binding so the same logical pass can be
// rebound to a new physical card. Status and validity are untouched.
func (s *LifecycleService) EraseCard(
	ctx context.Context,
	kind domain.Kind,
	id string,
) (*domain.Pass, error) {
	rec, err := s.passes.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	rec.RFIDUID = ""
	return s.passes.Update(ctx, *rec)
}

// Hide soft-deletes a record: it drops off active dashboards but history
// is preserved.
func (s *LifecycleService) Hide(
	ctx context.Context,
	kind domain.Kind,
	id string,
) (*domain.Pass, error) {
	rec, err := s.passes.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	rec.Status = domain.StatusArchived
	return s.passes.Update(ctx, *rec)
}

// RequestRenewal flags an expired, approved pass for renewal. The record
// stays approved so the holder keeps dashboard visibility; the fresh
// validity window opens on the next Approve.
func (s *LifecycleService) RequestRenewal(
	ctx context.Context,
	kind domain.Kind,
	id string,
) (*domain.Pass, error) {
	rec, err := s.passes.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: only an approved pass can request renewal", domain.ErrValidation)
	}
	if !rec.Expired(s.clock.Now()) {
		return nil, fmt.Errorf("%w: pass is still valid", domain.ErrValidation)
	}
	rec.RenewalRequested = true
	return s.passes.Update(ctx, *rec)
}

func (s *LifecycleService) lockUID(uid string) func() {
	s.mu.Lock()
	l, ok := s.uidLocks[uid]
	if !ok {
		l = &sync.Mutex{}
		s.uidLocks[uid] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// NewPassNumber generates a human-readable pass identifier.
func NewPassNumber() string {
	return "BUS-" + strings.ToUpper(uuid.NewString()[:8])
}
