// Package vaults provides storage of the per-identity encrypted vault.
package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// PostgresRepository implements vault storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string) (*models.Vault, error) {
	query := `SELECT id, owner_id, ciphertext, iv, auth_tag, kdf_salt, version, last_synced_at, created_at, updated_at
		FROM vaults WHERE owner_id = $1`

	var v models.Vault
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&v.ID, &v.OwnerID, &v.Ciphertext, &v.IV, &v.AuthTag, &v.KDFSalt,
		&v.Version, &v.LastSyncedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select vault: %w", dbx.Unavailable(err))
	}
	return &v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vault) error {
	query := `INSERT INTO vaults (id, owner_id, ciphertext, iv, auth_tag, kdf_salt, version, last_synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.OwnerID, v.Ciphertext, v.IV, v.AuthTag, v.KDFSalt,
		v.Version, v.LastSyncedAt, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("insert vault: %w", dbx.Unavailable(err))
	}
	return nil
}

func (r *PostgresRepository) CompareAndSwap(ctx context.Context, ownerID string, expected int64, blob models.VaultBlob, at time.Time) (bool, error) {
	query := `UPDATE vaults
		SET ciphertext = $3, iv = $4, auth_tag = $5, kdf_salt = $6,
			version = version + 1, last_synced_at = $7, updated_at = $7
		WHERE owner_id = $1 AND version = $2`

	res, err := r.db.ExecContext(ctx, query,
		ownerID, expected, blob.Ciphertext, blob.IV, blob.AuthTag, blob.KDFSalt, at)
	if err != nil {
		return false, fmt.Errorf("update vault: %w", dbx.Unavailable(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", dbx.Unavailable(err))
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vaults WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("delete vault: %w", dbx.Unavailable(err))
	}
	return nil
}
