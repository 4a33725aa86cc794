package audit

import (
	"context"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// Repository is the append-only share audit log.
type Repository interface {
	Append(ctx context.Context, e *models.AuditEntry) error
	// ListByShare returns the entries of one share, oldest first.
	ListByShare(ctx context.Context, shareID string) ([]*models.AuditEntry, error)
	// DeleteBySender removes the entries of every share and contact share
	// sent by fromID. It must run before those shares are deleted.
	DeleteBySender(ctx context.Context, fromID string) (int64, error)
}
