package domain

import "time"

// Kind discriminates the two pass record variants. Both share the same
// lifecycle fields; kind-specific fields are populated only for their kind.
type Kind string

const (
	KindStudent   Kind = "student"
	KindPassenger Kind = "passenger"
)

type PassType string

const (
	PassTypeStudent PassType = "student"
	PassTypeDay     PassType = "day"
	PassTypeWeekly  PassType = "weekly"
	PassTypeMonthly PassType = "monthly"
	PassTypeOther   PassType = "other"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	StatusArchived Status = "archived"
)

type Pass struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	HolderName string `json:"holder_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Age        int    `json:"age"`

	PassType      PassType `json:"pass_type"`
	Status        Status   `json:"status"`
	DeclineReason string   `json:"decline_reason,omitempty"`

	// UniquePassID is assigned exactly once, at first approval.
	UniquePassID string `json:"unique_pass_id,omitempty"`

	// RFIDUID is the physical card bound to this record; empty until a card
	// is tapped during approval, and cleared again by an erase-card action.
	RFIDUID string `json:"rfid_uid,omitempty"`

	// PassValidity marks expiry. Set at first approval; later approvals
	// (card regeneration) reuse the existing value.
	PassValidity *time.Time `json:"pass_validity,omitempty"`

	RenewalRequested bool `json:"renewal_requested"`

	// Student kind only.
	College    string `json:"college,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`

	// Passenger kind only. Filenames assigned by the upload middleware;
	// document content never reaches the core.
	DocumentFile string `json:"document_file,omitempty"`
	PhotoFile    string `json:"photo_file,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the pass validity lies before now.
// A pass that never received a validity window counts as expired.
func (p *Pass) Expired(now time.Time) bool {
	if p.PassValidity == nil {
		return true
	}
	return p.PassValidity.Before(now)
}

// ValidityDuration returns the validity window granted at first approval.
// Students always get a year; passengers get a window matching their pass
// type, with a one-year default for unrecognized types.
func ValidityDuration(kind Kind, passType PassType) time.Duration {
	if kind == KindStudent {
		return 365 * 24 * time.Hour
	}
	switch passType {
	case PassTypeDay:
		return 24 * time.Hour
	case PassTypeWeekly:
		return 7 * 24 * time.Hour
	case PassTypeMonthly:
		return 30 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}

// BusPass is the denormalized ledger entry written alongside a student
// approval. Its write is best-effort: a ledger failure never rolls back
// the approval itself.
type BusPass struct {
	PassNumber string    `json:"pass_number"`
	ExpiryDate time.Time `json:"expiry_date"`
	RFIDUID    string    `json:"rfid_uid"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

const BusPassActive = "active"

// CardPayload is the logical record written to the card during approval.
type CardPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Valid  string `json:"valid"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Issued string `json:"issued"`
}

// NewCardPayload builds the card record for a pass at issuance time.
func NewCardPayload(p *Pass, issued time.Time) CardPayload {
	valid := ""
	if p.PassValidity != nil {
		valid = p.PassValidity.UTC().Format(time.RFC3339)
	}
	return CardPayload{
		ID:     p.UniquePassID,
		Name:   p.HolderName,
		Type:   string(p.PassType),
		Valid:  valid,
		Email:  p.Email,
		Phone:  p.Phone,
		Issued: issued.UTC().Format(time.RFC3339),
	}
}
