package shares

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// Repository stores mode-based share records.
type Repository interface {
	// Create inserts s; common.ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, s *models.Share) error
	// Get returns the share or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Share, error)
	// Transition moves a share to t.To if its status is one of t.From,
	// stamping the matching timestamp. It reports whether the row changed.
	Transition(ctx context.Context, t models.Transition) (bool, error)
	ListByFrom(ctx context.Context, fromID string) ([]*models.Share, error)
	ListByTo(ctx context.Context, toID string) ([]*models.Share, error)
	// ListActiveBroadcast returns ACTIVE direct shares not created by excluding.
	ListActiveBroadcast(ctx context.Context, excluding string) ([]*models.Share, error)
	// ListExpiring returns open shares whose expiry is before now.
	ListExpiring(ctx context.Context, now time.Time) ([]*models.Share, error)
	// DeleteByFrom removes every share sent by fromID.
	DeleteByFrom(ctx context.Context, fromID string) (int64, error)
}

// ContactRepository stores friend-restricted share records.
type ContactRepository interface {
	Create(ctx context.Context, s *models.ContactShare) error
	Get(ctx context.Context, id string) (*models.ContactShare, error)
	Transition(ctx context.Context, t models.Transition) (bool, error)
	ListByFrom(ctx context.Context, fromID string) ([]*models.ContactShare, error)
	ListByTo(ctx context.Context, toID string) ([]*models.ContactShare, error)
	ListExpiring(ctx context.Context, now time.Time) ([]*models.ContactShare, error)
	DeleteByFrom(ctx context.Context, fromID string) (int64, error)
	// ExistsLive reports whether fromID already has an unexpired PENDING or
	// ACCEPTED share of passwordRef with toID.
	ExistsLive(ctx context.Context, fromID, toID, passwordRef string, now time.Time) (bool, error)
	// CreateUnlessLive inserts c unless ExistsLive holds for its sender,
	// recipient and password ref, in which case it returns
	// common.ErrAlreadyExists. Check and insert are atomic with respect to
	// other CreateUnlessLive calls for the same triple.
	CreateUnlessLive(ctx context.Context, c *models.ContactShare, now time.Time) error
}
