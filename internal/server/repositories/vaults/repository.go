package vaults

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type Repository interface {
	// Get returns the vault of ownerID or common.ErrNotFound.
	Get(ctx context.Context, ownerID string) (*models.Vault, error)
	// Create inserts a new vault; common.ErrAlreadyExists if the owner has one.
	Create(ctx context.Context, v *models.Vault) error
	// CompareAndSwap writes blob as version expected+1 if the stored version
	// is still expected. It reports whether the write happened.
	CompareAndSwap(ctx context.Context, ownerID string, expected int64, blob models.VaultBlob, at time.Time) (bool, error)
	// Delete removes the vault of ownerID. Deleting nothing is not an error.
	Delete(ctx context.Context, ownerID string) error
}
