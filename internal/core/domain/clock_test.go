package domain_test

import (
	"testing"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
)

func TestOverrideClock(t *testing.T) {
	clock := domain.NewOverrideClock()

	if clock.Overridden() {
		t.Fatalf("fresh clock must not report an override")
	}
	if d := time.Since(clock.Now()); d < 0 || d > time.Second {
		t.Errorf("unoverridden clock should track real time, drift %v", d)
	}

	frozen := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(frozen)
	if !clock.Overridden() {
		t.Errorf("Set must activate the override")
	}
	if !clock.Now().Equal(frozen) {
		t.Errorf("expected %v, got %v", frozen, clock.Now())
	}

	// Last write wins.
	later := frozen.Add(48 * time.Hour)
	clock.Set(later)
	if !clock.Now().Equal(later) {
		t.Errorf("expected %v after second Set, got %v", later, clock.Now())
	}

	clock.Clear()
	if clock.Overridden() {
		t.Errorf("Clear must drop the override")
	}
	if d := time.Since(clock.Now()); d < 0 || d > time.Second {
		t.Errorf("cleared clock should track real time again, drift %v", d)
	}
}

func TestPassExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		validity *time.Time
		want     bool
	}{
		{"nil_validity_is_expired", nil, true},
		{"future_validity_is_live", timePtr(now.Add(time.Hour)), false},
		{"past_validity_is_expired", timePtr(now.Add(-time.Minute)), true},
		{"exact_boundary_still_live", timePtr(now), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Pass{PassValidity: tt.validity}
			if got := p.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidityDuration(t *testing.T) {
	tests := []struct {
		kind     domain.Kind
		passType domain.PassType
		want     time.Duration
	}{
		{domain.KindStudent, domain.PassTypeStudent, 365 * 24 * time.Hour},
		{domain.KindPassenger, domain.PassTypeDay, 24 * time.Hour},
		{domain.KindPassenger, domain.PassTypeWeekly, 7 * 24 * time.Hour},
		{domain.KindPassenger, domain.PassTypeMonthly, 30 * 24 * time.Hour},
		{domain.KindPassenger, domain.PassTypeOther, 365 * 24 * time.Hour},
	}

	for _, tt := range tests {
		if got := domain.ValidityDuration(tt.kind, tt.passType); got != tt.want {
			t.Errorf("ValidityDuration(%s, %s) = %v, want %v", tt.kind, tt.passType, got, tt.want)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
