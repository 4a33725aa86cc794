package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type ShareRepository struct{ s *Store }

func cloneShare(sh *models.Share) *models.Share {
	c := *sh
	c.AcceptedAt = cloneTime(sh.AcceptedAt)
	c.RevokedAt = cloneTime(sh.RevokedAt)
	return &c
}

func (r *ShareRepository) Create(_ context.Context, sh *models.Share) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.shares[sh.ID]; ok {
		return common.ErrAlreadyExists
	}
	r.s.shares[sh.ID] = cloneShare(sh)
	r.s.sharesByFrom[sh.FromID] = append(r.s.sharesByFrom[sh.FromID], sh.ID)
	if to := sh.ToID(); to != "" {
		r.s.sharesByTo[to] = append(r.s.sharesByTo[to], sh.ID)
	} else {
		r.s.broadcast = append(r.s.broadcast, sh.ID)
	}
	return nil
}

func (r *ShareRepository) Get(_ context.Context, id string) (*models.Share, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.shares[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneShare(sh), nil
}

func (r *ShareRepository) Transition(_ context.Context, t models.Transition) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sh, ok := r.s.shares[t.ID]
	if !ok || !slices.Contains(t.From, sh.Status) {
		return false, nil
	}
	next := cloneShare(sh)
	next.Status = t.To
	stamp(t, &next.AcceptedAt, &next.RevokedAt)
	r.s.shares[t.ID] = next
	return true, nil
}

func (r *ShareRepository) ListByFrom(_ context.Context, fromID string) ([]*models.Share, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(r.s.sharesByFrom[fromID], nil), nil
}

func (r *ShareRepository) ListByTo(_ context.Context, toID string) ([]*models.Share, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(r.s.sharesByTo[toID], nil), nil
}

func (r *ShareRepository) ListActiveBroadcast(_ context.Context, excluding string) ([]*models.Share, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(r.s.broadcast, func(sh *models.Share) bool {
		return sh.Status == models.StatusActive && sh.FromID != excluding
	}), nil
}

func (r *ShareRepository) ListExpiring(_ context.Context, now time.Time) ([]*models.Share, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.Share
	for _, sh := range r.s.shares {
		if sh.Status.Open() && sh.ExpiresAt.Before(now) {
			out = append(out, cloneShare(sh))
		}
	}
	slices.SortFunc(out, func(a, b *models.Share) int { return a.ExpiresAt.Compare(b.ExpiresAt) })
	return out, nil
}

func (r *ShareRepository) DeleteByFrom(_ context.Context, fromID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.sharesByFrom[fromID]
	for _, id := range ids {
		sh := r.s.shares[id]
		if to := sh.ToID(); to != "" {
			r.s.sharesByTo[to] = removeID(r.s.sharesByTo[to], id)
		} else {
			r.s.broadcast = removeID(r.s.broadcast, id)
		}
		delete(r.s.shares, id)
	}
	delete(r.s.sharesByFrom, fromID)
	return int64(len(ids)), nil
}

// collect resolves ids newest first. Caller holds the lock.
func (r *ShareRepository) collect(ids []string, keep func(*models.Share) bool) []*models.Share {
	out := make([]*models.Share, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		sh := r.s.shares[ids[i]]
		if keep == nil || keep(sh) {
			out = append(out, cloneShare(sh))
		}
	}
	slices.SortStableFunc(out, func(a, b *models.Share) int { return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano()) })
	return out
}

func stamp(t models.Transition, accepted, revoked **time.Time) {
	at := t.At
	switch t.To {
	case models.StatusAccepted:
		*accepted = &at
	case models.StatusRevoked:
		*revoked = &at
	}
}
