package services

import (
	"fmt"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// access is the part of a share record the lifecycle rules look at. Both
// share kinds reduce to it.
type access struct {
	from, to   string // to is empty for broadcast shares
	permission models.Permission
	status     models.Status
}

func shareAccess(s *models.Share) access {
	return access{from: s.FromID, to: s.ToID(), permission: s.Permission, status: s.Status}
}

func contactAccess(c *models.ContactShare) access {
	return access{from: c.FromID, to: c.ToID, permission: c.Permission, status: c.Status}
}

func (a access) broadcast() bool { return a.to == "" }

// statusError maps a non-open status to the error a caller sees.
func statusError(s models.Status) error {
	switch s {
	case models.StatusExpired:
		return common.ErrExpired
	case models.StatusRevoked:
		return common.ErrRevoked
	case models.StatusAccepted:
		return common.ErrAlreadyAccepted
	case models.StatusActive, models.StatusPending:
		return nil
	default:
		return fmt.Errorf("%w: unknown status %q", common.ErrInvalidState, s)
	}
}

// checkRead: addressed shares are readable by the recipient and the sender,
// broadcast shares by anyone. Expired and revoked shares are not readable.
func (a access) checkRead(requester string) error {
	if !a.broadcast() && requester != a.to && requester != a.from {
		return common.ErrAccessDenied
	}
	if a.status == models.StatusAccepted {
		return nil
	}
	return statusError(a.status)
}

// checkAccept: only the recipient (anyone but the sender for broadcast
// shares), only with the save permission, only while open. Expired and
// revoked win over a missing save permission.
func (a access) checkAccept(requester string) error {
	if requester == a.from || (!a.broadcast() && requester != a.to) {
		return common.ErrAccessDenied
	}
	switch a.status {
	case models.StatusExpired, models.StatusRevoked:
		return statusError(a.status)
	}
	if !a.permission.CanSave {
		return common.ErrSaveNotAllowed
	}
	return statusError(a.status)
}

// checkRevoke reports done=true when the share is already revoked.
func (a access) checkRevoke(requester string) (done bool, err error) {
	if requester != a.from {
		return false, common.ErrAccessDenied
	}
	if !a.permission.IsRevocable {
		return false, common.ErrNotRevocable
	}
	switch a.status {
	case models.StatusRevoked:
		return true, nil
	case models.StatusExpired:
		return false, common.ErrExpired
	}
	return false, nil
}

func (a access) checkHistory(requester string) error {
	if requester != a.from && (a.broadcast() || requester != a.to) {
		return common.ErrAccessDenied
	}
	return nil
}

var (
	openStatuses      = []models.Status{models.StatusActive, models.StatusPending}
	revocableStatuses = []models.Status{models.StatusActive, models.StatusPending, models.StatusAccepted}
)
