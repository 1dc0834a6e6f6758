package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
	"github.com/harshangowda84/Harish-sub000/test/mocks"
)

func validStudentInput() ports.RegisterStudentInput {
	return ports.RegisterStudentInput{
		HolderName: "Asha Rao",
		Email:      "asha@college.edu",
		Phone:      "9876543210",
		Age:        19,
		College:    "Govt Engineering College",
		RollNumber: "CS-042",
	}
}

func validPassengerInput() ports.ApplyPassengerInput {
	return ports.ApplyPassengerInput{
		HolderName:   "Ravi Kumar",
		Email:        "ravi@example.com",
		Phone:        "9123456780",
		Age:          34,
		PassType:     domain.PassTypeWeekly,
		DocumentFile: "doc-1.pdf",
		PhotoFile:    "photo-1.jpg",
	}
}

func TestRegisterStudent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ports.RegisterStudentInput)
		wantErr bool
	}{
		{"valid", func(in *ports.RegisterStudentInput) {}, false},
		{"missing_name", func(in *ports.RegisterStudentInput) { in.HolderName = "  " }, true},
		{"missing_college", func(in *ports.RegisterStudentInput) { in.College = "" }, true},
		{"age_too_young", func(in *ports.RegisterStudentInput) { in.Age = 4 }, true},
		{"age_too_old", func(in *ports.RegisterStudentInput) { in.Age = 121 }, true},
		{"phone_too_short", func(in *ports.RegisterStudentInput) { in.Phone = "12345" }, true},
		{"phone_not_numeric", func(in *ports.RegisterStudentInput) { in.Phone = "98765abcde" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPassRepository()
			svc := services.NewRegistrationService(repo)

			in := validStudentInput()
			tt.mutate(&in)

			rec, err := svc.RegisterStudent(context.Background(), in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if len(repo.CreateCalls) != 0 {
					t.Errorf("rejected input must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Kind != domain.KindStudent || rec.PassType != domain.PassTypeStudent {
				t.Errorf("student records carry the student pass type: %+v", rec)
			}
			if rec.Status != domain.StatusPending {
				t.Errorf("new records start pending, got %s", rec.Status)
			}
			if rec.ID == "" {
				t.Errorf("expected a generated id")
			}
		})
	}
}

func TestApplyPassenger(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ports.ApplyPassengerInput)
		wantErr bool
	}{
		{"valid_weekly", func(in *ports.ApplyPassengerInput) {}, false},
		{"valid_day", func(in *ports.ApplyPassengerInput) { in.PassType = domain.PassTypeDay }, false},
		{"valid_monthly", func(in *ports.ApplyPassengerInput) { in.PassType = domain.PassTypeMonthly }, false},
		{"valid_other", func(in *ports.ApplyPassengerInput) { in.PassType = domain.PassTypeOther }, false},
		{"student_type_rejected", func(in *ports.ApplyPassengerInput) { in.PassType = domain.PassTypeStudent }, true},
		{"unknown_type_rejected", func(in *ports.ApplyPassengerInput) { in.PassType = "annual" }, true},
		{"missing_name", func(in *ports.ApplyPassengerInput) { in.HolderName = "" }, true},
		{"bad_phone", func(in *ports.ApplyPassengerInput) { in.Phone = "12" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPassRepository()
			svc := services.NewRegistrationService(repo)

			in := validPassengerInput()
			tt.mutate(&in)

			rec, err := svc.ApplyPassenger(context.Background(), in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Kind != domain.KindPassenger || rec.Status != domain.StatusPending {
				t.Errorf("unexpected record: %+v", rec)
			}
			if rec.DocumentFile != in.DocumentFile || rec.PhotoFile != in.PhotoFile {
				t.Errorf("uploads not carried onto the record: %+v", rec)
			}
		})
	}
}
