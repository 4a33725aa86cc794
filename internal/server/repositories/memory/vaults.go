package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type VaultRepository struct{ s *Store }

func cloneVault(v *models.Vault) *models.Vault {
	c := *v
	return &c
}

func (r *VaultRepository) Get(_ context.Context, ownerID string) (*models.Vault, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vaults[ownerID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneVault(v), nil
}

func (r *VaultRepository) Create(_ context.Context, v *models.Vault) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vaults[v.OwnerID]; ok {
		return common.ErrAlreadyExists
	}
	r.s.vaults[v.OwnerID] = cloneVault(v)
	return nil
}

func (r *VaultRepository) CompareAndSwap(_ context.Context, ownerID string, expected int64, blob models.VaultBlob, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vaults[ownerID]
	if !ok || v.Version != expected {
		return false, nil
	}
	next := cloneVault(v)
	next.VaultBlob = blob
	next.Version = expected + 1
	next.LastSyncedAt = at
	next.UpdatedAt = at
	r.s.vaults[ownerID] = next
	return true, nil
}

func (r *VaultRepository) Delete(_ context.Context, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.vaults, ownerID)
	return nil
}
