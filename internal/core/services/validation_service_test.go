package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
	"github.com/harshangowda84/Harish-sub000/test/mocks"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"days_hours_minutes", 2*24*time.Hour + 3*time.Hour + 5*time.Minute, "2d 3h 5m"},
		{"hours_minutes", 3*time.Hour + 5*time.Minute, "3h 5m"},
		{"minutes_only", 45 * time.Minute, "45m"},
		{"zero_is_expired", 0, "Expired"},
		{"negative_is_expired", -time.Hour, "Expired"},
		{"sub_minute_rounds_down", 30 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.FormatRemaining(tt.d); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func approvedPass(kind domain.Kind, id, uid string, validity time.Time) domain.Pass {
	return domain.Pass{
		ID:           id,
		Kind:         kind,
		HolderName:   "Ravi Kumar",
		PassType:     domain.PassTypeMonthly,
		Status:       domain.StatusApproved,
		UniquePassID: "BUS-ABCD1234",
		RFIDUID:      uid,
		PassValidity: &validity,
	}
}

func TestScanAndValidate_NoCard(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	reader := mocks.NewMockCardReader()
	reader.ReadError = domain.ErrReadTimeout
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("a timed out scan is not an error, got %v", err)
	}
	if result.Valid || result.Reason != "no card detected" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestScanAndValidate_UnknownCard(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	reader := mocks.NewMockCardReader("CARD-STRANGER")
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid || result.Reason != "card not registered" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestScanAndValidate_ActivePass(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	validity := testNow.Add(10*24*time.Hour + 2*time.Hour + 30*time.Minute)
	repo.SeedPass(approvedPass(domain.KindPassenger, "p1", "CARD-OK", validity))

	reader := mocks.NewMockCardReader("CARD-OK")
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected a valid pass: %+v", result)
	}
	if result.Status != "active" {
		t.Errorf("expected status active, got %q", result.Status)
	}
	if result.HolderName != "Ravi Kumar" || result.PassNumber != "BUS-ABCD1234" {
		t.Errorf("holder details missing: %+v", result)
	}
	if result.Remaining != "10d 2h 30m" {
		t.Errorf("expected remaining 10d 2h 30m, got %q", result.Remaining)
	}
}

func TestScanAndValidate_ExpiredPass(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	validity := testNow.Add(-time.Hour)
	repo.SeedPass(approvedPass(domain.KindPassenger, "p1", "CARD-OLD", validity))

	reader := mocks.NewMockCardReader("CARD-OLD")
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected an expired pass to be invalid")
	}
	if result.Status != "expired" || result.Remaining != "Expired" {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.HolderName != "Ravi Kumar" {
		t.Errorf("expired scans still report the holder: %+v", result)
	}
}

func TestScanAndValidate_PendingPassNotRecognised(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	validity := testNow.Add(time.Hour)
	p := approvedPass(domain.KindPassenger, "p1", "CARD-PENDING", validity)
	p.Status = domain.StatusPending
	repo.SeedPass(p)

	reader := mocks.NewMockCardReader("CARD-PENDING")
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid || result.Reason != "card not registered" {
		t.Errorf("only approved passes validate: %+v", result)
	}
}

func TestScanAndValidate_StudentMatchWinsTieBreak(t *testing.T) {
	repo := mocks.NewMockPassRepository()
	validity := testNow.Add(time.Hour)

	student := approvedPass(domain.KindStudent, "s1", "CARD-DUP", validity)
	student.HolderName = "Student Holder"
	repo.SeedPass(student)

	passenger := approvedPass(domain.KindPassenger, "p1", "CARD-DUP", validity)
	passenger.HolderName = "Passenger Holder"
	repo.SeedPass(passenger)

	reader := mocks.NewMockCardReader("CARD-DUP")
	svc := services.NewValidationService(repo, reader, mocks.NewMockClock(testNow))

	result, err := svc.ScanAndValidate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HolderName != "Student Holder" {
		t.Errorf("student record should win the lookup, got %q", result.HolderName)
	}
}
