package ports

import (
	"context"
)

// PassIssuedEvent is written to the outbox alongside an approval and
// relayed to the message broker for downstream consumers (college
// dashboards, notifications).
type PassIssuedEvent struct {
	PassID       string `json:"pass_id"`
	Kind         string `json:"kind"`
	UniquePassID string `json:"unique_pass_id"`
	HolderName   string `json:"holder_name"`
	PassType     string `json:"pass_type"`
	RFIDUID      string `json:"rfid_uid"`
	ValidUntil   string `json:"valid_until"`
}

type PassEventPublisher interface {
	PublishPassIssued(ctx context.Context, evt PassIssuedEvent) error
}
