package models

import (
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/envelope"
)

// Permission is carried outside the encrypted payload so the server can
// enforce it.
type Permission = envelope.Permission

// Status is the lifecycle state of a share.
type Status string

const (
	StatusActive   Status = "ACTIVE" // Direct shares before anything happens
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRevoked  Status = "REVOKED"
	StatusExpired  Status = "EXPIRED"
)

// Open reports whether the share still waits for the recipient.
func (s Status) Open() bool {
	return s == StatusActive || s == StatusPending
}

// Live reports whether the share can still be read.
func (s Status) Live() bool {
	return s.Open() || s == StatusAccepted
}

// InitialStatus is the state a freshly created share starts in.
func InitialStatus(m Mode) Status {
	if IsBroadcast(m) {
		return StatusActive
	}
	return StatusPending
}

// Share is a record of one shared entry.
type Share struct {
	ID          string
	Mode        Mode
	FromID      string
	PasswordRef string
	// Payload is the serialized envelope. Opaque to the server.
	Payload    []byte
	Permission Permission
	Status     Status
	CreatedAt  time.Time
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	RevokedAt  *time.Time
}

// ToID is the addressed recipient, empty for broadcast shares.
func (s *Share) ToID() string {
	return s.Mode.Recipient()
}

// ContactShare is a share restricted to an accepted friend.
type ContactShare struct {
	ID          string
	FromID      string
	ToID        string
	PasswordRef string
	Payload     []byte
	Permission  Permission
	Status      Status
	CreatedAt   time.Time
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	RevokedAt   *time.Time
}

// ShareKind tells the two share tables apart in audit rows and listings.
type ShareKind string

const (
	KindShare        ShareKind = "share"
	KindContactShare ShareKind = "contact_share"
)

// ShareSummary is a listing row. It never carries the payload.
type ShareSummary struct {
	Kind        ShareKind
	ID          string
	Mode        ModeKind
	FromID      string
	ToID        string
	PasswordRef string
	Permission  Permission
	Status      Status
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func (s *Share) Summary() ShareSummary {
	return ShareSummary{
		Kind:        KindShare,
		ID:          s.ID,
		Mode:        s.Mode.Kind(),
		FromID:      s.FromID,
		ToID:        s.ToID(),
		PasswordRef: s.PasswordRef,
		Permission:  s.Permission,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
}

func (c *ContactShare) Summary() ShareSummary {
	return ShareSummary{
		Kind:        KindContactShare,
		ID:          c.ID,
		FromID:      c.FromID,
		ToID:        c.ToID,
		PasswordRef: c.PasswordRef,
		Permission:  c.Permission,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		ExpiresAt:   c.ExpiresAt,
	}
}

// Transition describes a compare-and-set status change.
type Transition struct {
	ID   string
	From []Status
	To   Status
	At   time.Time
}
