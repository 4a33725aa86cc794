package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// SweepResult counts the shares one sweep expired.
type SweepResult struct {
	Shares        int
	ContactShares int
}

// ExpirySweeper moves open shares past their expiry to EXPIRED. Only the
// sweep changes status; readers rely on the status, not on the timestamp.
type ExpirySweeper struct {
	rec recorder
}

func NewExpirySweeper(tx dbx.Transactor, repos repomanager.RepositoryManager, notifier notify.Notifier, logger logging.Logger, opts ...Option) *ExpirySweeper {
	return &ExpirySweeper{rec: recorder{
		tx:       tx,
		repos:    repos,
		notifier: notifier,
		logger:   logger.With("module", "sweeper"),
		opts:     buildOptions(opts),
	}}
}

// Sweep expires everything due before now. Each share is moved with a
// compare-and-set, so concurrent sweeps and racing accepts or revokes are
// safe: whoever loses simply skips the share.
func (s *ExpirySweeper) Sweep(ctx context.Context, now time.Time) (SweepResult, error) {
	var (
		res  SweepResult
		errs []error
	)
	conn := s.rec.tx.Conn()

	due, err := s.rec.repos.Shares(conn).ListExpiring(ctx, now)
	if err != nil {
		return res, err
	}
	for _, sh := range due {
		ok, err := s.rec.repos.Shares(conn).Transition(ctx, models.Transition{ID: sh.ID, From: openStatuses, To: models.StatusExpired, At: now})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		res.Shares++
		s.expired(ctx, models.KindShare, sh.ID, sh.FromID, notifyTarget(sh.Mode), now)
	}

	dueContacts, err := s.rec.repos.ContactShares(conn).ListExpiring(ctx, now)
	if err != nil {
		return res, errors.Join(append(errs, err)...)
	}
	for _, cs := range dueContacts {
		ok, err := s.rec.repos.ContactShares(conn).Transition(ctx, models.Transition{
			ID: cs.ID, From: []models.Status{models.StatusPending}, To: models.StatusExpired, At: now,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		res.ContactShares++
		s.expired(ctx, models.KindContactShare, cs.ID, cs.FromID, cs.ToID, now)
	}

	return res, errors.Join(errs...)
}

func (s *ExpirySweeper) expired(ctx context.Context, kind models.ShareKind, id, from, to string, now time.Time) {
	s.rec.audit(ctx, kind, id, models.ActionExpired, common.SystemActor, now)
	s.rec.notify(ctx, from, notify.ShareExpired, kind, id, common.SystemActor, now)
	if to != notify.Broadcast {
		s.rec.notify(ctx, to, notify.ShareExpired, kind, id, common.SystemActor, now)
	}
}

// Run sweeps every interval until ctx is done.
func (s *ExpirySweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.rec.logger.Info(ctx, "expiry sweeper started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			s.rec.logger.Info(ctx, "expiry sweeper stopped")
			return
		case <-ticker.C:
			res, err := s.Sweep(ctx, s.rec.opts.clock())
			if err != nil {
				s.rec.logger.Error(ctx, "expiry sweep failed", "error", err)
			}
			if res.Shares > 0 || res.ContactShares > 0 {
				s.rec.logger.Info(ctx, "shares expired", "shares", res.Shares, "contact_shares", res.ContactShares)
			}
		}
	}
}
