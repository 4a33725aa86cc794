package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// recorder performs the side effects that follow a committed transition:
// the audit append and the notification. Neither may undo the transition,
// so both run detached from the caller's cancellation and only log.
type recorder struct {
	tx       dbx.Transactor
	repos    repomanager.RepositoryManager
	notifier notify.Notifier
	logger   logging.Logger
	opts     options
}

func (r *recorder) audit(ctx context.Context, kind models.ShareKind, shareID string, action models.AuditAction, actor string, at time.Time) {
	ctx = context.WithoutCancel(ctx)
	entry := &models.AuditEntry{
		ID:          uuid.NewString(),
		ShareID:     shareID,
		ShareKind:   kind,
		Action:      action,
		PerformedBy: actor,
		At:          at,
	}

	repo := r.repos.Audit(r.tx.Conn())
	var err error
	for attempt := 1; attempt <= r.opts.auditAttempts; attempt++ {
		if err = repo.Append(ctx, entry); err == nil {
			return
		}
		if attempt < r.opts.auditAttempts {
			time.Sleep(time.Duration(attempt) * r.opts.auditBackoff)
		}
	}
	r.logger.Error(ctx, "audit append failed",
		"share_id", shareID, "action", string(action), "attempts", r.opts.auditAttempts, "error", err)
}

func (r *recorder) notify(ctx context.Context, target, eventType string, kind models.ShareKind, shareID, actor string, at time.Time) {
	if r.notifier == nil || target == "" {
		return
	}
	err := r.notifier.Notify(context.WithoutCancel(ctx), target, notify.Event{
		Type:      eventType,
		ShareID:   shareID,
		ShareKind: kind,
		Actor:     actor,
		At:        at,
	})
	if err != nil {
		level := r.logger.Warn
		if !errors.Is(err, notify.ErrDropped) {
			level = r.logger.Error
		}
		level(ctx, "notification failed", "share_id", shareID, "event", eventType, "target", target, "error", err)
	}
}
