package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type ContactShareRepository struct{ s *Store }

func cloneContact(c *models.ContactShare) *models.ContactShare {
	out := *c
	out.AcceptedAt = cloneTime(c.AcceptedAt)
	out.RevokedAt = cloneTime(c.RevokedAt)
	return &out
}

func (r *ContactShareRepository) Create(_ context.Context, c *models.ContactShare) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.insert(c)
}

func (r *ContactShareRepository) insert(c *models.ContactShare) error {
	if _, ok := r.s.contacts[c.ID]; ok {
		return common.ErrAlreadyExists
	}
	r.s.contacts[c.ID] = cloneContact(c)
	r.s.contactsByFrom[c.FromID] = append(r.s.contactsByFrom[c.FromID], c.ID)
	r.s.contactsByTo[c.ToID] = append(r.s.contactsByTo[c.ToID], c.ID)
	return nil
}

func (r *ContactShareRepository) Get(_ context.Context, id string) (*models.ContactShare, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contacts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneContact(c), nil
}

func (r *ContactShareRepository) Transition(_ context.Context, t models.Transition) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contacts[t.ID]
	if !ok || !slices.Contains(t.From, c.Status) {
		return false, nil
	}
	next := cloneContact(c)
	next.Status = t.To
	stamp(t, &next.AcceptedAt, &next.RevokedAt)
	r.s.contacts[t.ID] = next
	return true, nil
}

func (r *ContactShareRepository) ListByFrom(_ context.Context, fromID string) ([]*models.ContactShare, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(r.s.contactsByFrom[fromID]), nil
}

func (r *ContactShareRepository) ListByTo(_ context.Context, toID string) ([]*models.ContactShare, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(r.s.contactsByTo[toID]), nil
}

func (r *ContactShareRepository) ListExpiring(_ context.Context, now time.Time) ([]*models.ContactShare, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.ContactShare
	for _, c := range r.s.contacts {
		if c.Status == models.StatusPending && c.ExpiresAt.Before(now) {
			out = append(out, cloneContact(c))
		}
	}
	slices.SortFunc(out, func(a, b *models.ContactShare) int { return a.ExpiresAt.Compare(b.ExpiresAt) })
	return out, nil
}

func (r *ContactShareRepository) DeleteByFrom(_ context.Context, fromID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.contactsByFrom[fromID]
	for _, id := range ids {
		c := r.s.contacts[id]
		r.s.contactsByTo[c.ToID] = removeID(r.s.contactsByTo[c.ToID], id)
		delete(r.s.contacts, id)
	}
	delete(r.s.contactsByFrom, fromID)
	return int64(len(ids)), nil
}

func (r *ContactShareRepository) ExistsLive(_ context.Context, fromID, toID, passwordRef string, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.existsLive(fromID, toID, passwordRef, now), nil
}

func (r *ContactShareRepository) CreateUnlessLive(_ context.Context, c *models.ContactShare, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.existsLive(c.FromID, c.ToID, c.PasswordRef, now) {
		return fmt.Errorf("%w: a live share of this entry to this contact exists", common.ErrAlreadyExists)
	}
	return r.insert(c)
}

func (r *ContactShareRepository) existsLive(fromID, toID, passwordRef string, now time.Time) bool {
	for _, id := range r.s.contactsByFrom[fromID] {
		c := r.s.contacts[id]
		if c.ToID == toID && c.PasswordRef == passwordRef &&
			(c.Status == models.StatusPending || c.Status == models.StatusAccepted) &&
			c.ExpiresAt.After(now) {
			return true
		}
	}
	return false
}

func (r *ContactShareRepository) collect(ids []string) []*models.ContactShare {
	out := make([]*models.ContactShare, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, cloneContact(r.s.contacts[ids[i]]))
	}
	slices.SortStableFunc(out, func(a, b *models.ContactShare) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out
}
