package models

import "time"

type AuditAction string

const (
	ActionCreated  AuditAction = "CREATED"
	ActionFetched  AuditAction = "FETCHED"
	ActionAccepted AuditAction = "ACCEPTED"
	ActionRevoked  AuditAction = "REVOKED"
	ActionExpired  AuditAction = "EXPIRED"
)

// AuditEntry is one append-only row of the share audit log.
type AuditEntry struct {
	ID          string
	ShareID     string
	ShareKind   ShareKind
	Action      AuditAction
	PerformedBy string
	At          time.Time
}
