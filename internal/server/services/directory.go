package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// ShareDirectory answers "what did I send" and "what can I open" across
// both share kinds, newest first. It reads the same rows the lifecycle
// writes, so every transition is visible immediately.
type ShareDirectory struct {
	tx    dbx.Transactor
	repos repomanager.RepositoryManager
}

func NewShareDirectory(tx dbx.Transactor, repos repomanager.RepositoryManager) *ShareDirectory {
	return &ShareDirectory{tx: tx, repos: repos}
}

// ListSent returns every share and contact share sent by identity.
func (d *ShareDirectory) ListSent(ctx context.Context, identity string) ([]models.ShareSummary, error) {
	conn := d.tx.Conn()

	sent, err := d.repos.Shares(conn).ListByFrom(ctx, identity)
	if err != nil {
		return nil, err
	}
	contacts, err := d.repos.ContactShares(conn).ListByFrom(ctx, identity)
	if err != nil {
		return nil, err
	}

	out := make([]models.ShareSummary, 0, len(sent)+len(contacts))
	for _, s := range sent {
		out = append(out, s.Summary())
	}
	for _, c := range contacts {
		out = append(out, c.Summary())
	}
	sortNewestFirst(out)
	return out, nil
}

// ListReceived returns the shares addressed to identity, the contact shares
// sent to it and the active broadcast shares of other identities.
func (d *ShareDirectory) ListReceived(ctx context.Context, identity string) ([]models.ShareSummary, error) {
	conn := d.tx.Conn()
	repo := d.repos.Shares(conn)

	addressed, err := repo.ListByTo(ctx, identity)
	if err != nil {
		return nil, err
	}
	broadcast, err := repo.ListActiveBroadcast(ctx, identity)
	if err != nil {
		return nil, err
	}
	contacts, err := d.repos.ContactShares(conn).ListByTo(ctx, identity)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(addressed)+len(broadcast))
	out := make([]models.ShareSummary, 0, len(addressed)+len(broadcast)+len(contacts))
	for _, s := range slices.Concat(addressed, broadcast) {
		if seen[s.ID] || s.FromID == identity {
			continue
		}
		seen[s.ID] = true
		out = append(out, s.Summary())
	}
	for _, c := range contacts {
		out = append(out, c.Summary())
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(list []models.ShareSummary) {
	slices.SortStableFunc(list, func(a, b models.ShareSummary) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
