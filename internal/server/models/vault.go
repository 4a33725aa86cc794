package models

import "time"

// VaultBlob is the opaque encrypted vault as a client uploads it. The
// server never interprets any of these bytes.
type VaultBlob struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
	KDFSalt    []byte
}

// Vault is the single encrypted vault of one identity.
type Vault struct {
	ID      string
	OwnerID string
	VaultBlob
	// Version starts at 1 and grows by one per successful write.
	Version      int64
	LastSyncedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SyncStatus tells which branch of the sync protocol produced an outcome.
type SyncStatus string

const (
	SyncApplied  SyncStatus = "applied"
	SyncConflict SyncStatus = "conflict"
)

// SyncOutcome is the result of a sync attempt. A conflict is a normal
// outcome, not an error: the client is expected to merge ServerSnapshot and
// push again.
type SyncOutcome struct {
	Status SyncStatus

	// Set when Status is SyncApplied.
	NewVersion int64

	// Set when Status is SyncConflict.
	ServerVersion  int64
	ClientVersion  int64
	ServerSnapshot *Vault
}

func Applied(newVersion int64) *SyncOutcome {
	return &SyncOutcome{Status: SyncApplied, NewVersion: newVersion}
}

func Conflict(server *Vault, clientVersion int64) *SyncOutcome {
	return &SyncOutcome{
		Status:         SyncConflict,
		ServerVersion:  server.Version,
		ClientVersion:  clientVersion,
		ServerSnapshot: server,
	}
}

func (o *SyncOutcome) IsConflict() bool {
	return o.Status == SyncConflict
}
