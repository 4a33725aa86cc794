package memory

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type AuditRepository struct{ s *Store }

func (r *AuditRepository) Append(_ context.Context, e *models.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *e
	r.s.audit = append(r.s.audit, &c)
	return nil
}

func (r *AuditRepository) ListByShare(_ context.Context, shareID string) ([]*models.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*models.AuditEntry
	for _, e := range r.s.audit {
		if e.ShareID == shareID {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *AuditRepository) DeleteBySender(_ context.Context, fromID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owned := make(map[string]bool)
	for _, id := range r.s.sharesByFrom[fromID] {
		owned[id] = true
	}
	for _, id := range r.s.contactsByFrom[fromID] {
		owned[id] = true
	}

	before := len(r.s.audit)
	r.s.audit = slices.DeleteFunc(r.s.audit, func(e *models.AuditEntry) bool { return owned[e.ShareID] })
	return int64(before - len(r.s.audit)), nil
}
