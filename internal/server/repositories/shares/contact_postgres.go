package shares

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

const contactColumns = `id, from_id, to_id, password_ref, payload, can_view, can_save, is_revocable,
	status, created_at, expires_at, accepted_at, revoked_at`

// ContactPostgresRepository implements ContactRepository over a dbx.DBTX.
type ContactPostgresRepository struct {
	db dbx.DBTX
}

func NewContactPostgresRepository(db dbx.DBTX) *ContactPostgresRepository {
	return &ContactPostgresRepository{db: db}
}

func (r *ContactPostgresRepository) Create(ctx context.Context, c *models.ContactShare) error {
	query := `INSERT INTO contact_shares (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.FromID, c.ToID, c.PasswordRef, c.Payload,
		c.Permission.CanView, c.Permission.CanSave, c.Permission.IsRevocable,
		string(c.Status), c.CreatedAt, c.ExpiresAt, nullTime(c.AcceptedAt), nullTime(c.RevokedAt),
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("insert contact share: %w", dbx.Unavailable(err))
	}
	return nil
}

func (r *ContactPostgresRepository) Get(ctx context.Context, id string) (*models.ContactShare, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_shares WHERE id = $1`
	c, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select contact share: %w", dbx.Unavailable(err))
	}
	return c, nil
}

func (r *ContactPostgresRepository) Transition(ctx context.Context, t models.Transition) (bool, error) {
	return transition(ctx, r.db, "contact_shares", t)
}

func (r *ContactPostgresRepository) ListByFrom(ctx context.Context, fromID string) ([]*models.ContactShare, error) {
	return r.list(ctx, `SELECT `+contactColumns+` FROM contact_shares WHERE from_id = $1 ORDER BY created_at DESC`, fromID)
}

func (r *ContactPostgresRepository) ListByTo(ctx context.Context, toID string) ([]*models.ContactShare, error) {
	return r.list(ctx, `SELECT `+contactColumns+` FROM contact_shares WHERE to_id = $1 ORDER BY created_at DESC`, toID)
}

func (r *ContactPostgresRepository) ListExpiring(ctx context.Context, now time.Time) ([]*models.ContactShare, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_shares
		WHERE status = 'PENDING' AND expires_at < $1 ORDER BY expires_at`
	return r.list(ctx, query, now)
}

func (r *ContactPostgresRepository) DeleteByFrom(ctx context.Context, fromID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_shares WHERE from_id = $1`, fromID)
	if err != nil {
		return 0, fmt.Errorf("delete contact shares: %w", dbx.Unavailable(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", dbx.Unavailable(err))
	}
	return n, nil
}

func (r *ContactPostgresRepository) ExistsLive(ctx context.Context, fromID, toID, passwordRef string, now time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM contact_shares
		WHERE from_id = $1 AND to_id = $2 AND password_ref = $3
			AND status IN ('PENDING', 'ACCEPTED') AND expires_at > $4)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, fromID, toID, passwordRef, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("check live contact share: %w", dbx.Unavailable(err))
	}
	return exists, nil
}

// CreateUnlessLive must run inside a transaction: the advisory lock it takes
// on (from, to, password_ref) is held until commit or rollback.
func (r *ContactPostgresRepository) CreateUnlessLive(ctx context.Context, c *models.ContactShare, now time.Time) error {
	lock := `SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2 || ':' || $3))`
	if _, err := r.db.ExecContext(ctx, lock, c.FromID, c.ToID, c.PasswordRef); err != nil {
		return fmt.Errorf("lock contact share: %w", dbx.Unavailable(err))
	}

	live, err := r.ExistsLive(ctx, c.FromID, c.ToID, c.PasswordRef, now)
	if err != nil {
		return err
	}
	if live {
		return fmt.Errorf("%w: a live share of this entry to this contact exists", common.ErrAlreadyExists)
	}
	return r.Create(ctx, c)
}

func (r *ContactPostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.ContactShare, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select contact shares: %w", dbx.Unavailable(err))
	}
	defer rows.Close()

	var result []*models.ContactShare
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Unavailable(err)
	}
	return result, nil
}

func scanContact(row scanner) (*models.ContactShare, error) {
	var (
		c                 models.ContactShare
		status            string
		accepted, revoked sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.FromID, &c.ToID, &c.PasswordRef, &c.Payload,
		&c.Permission.CanView, &c.Permission.CanSave, &c.Permission.IsRevocable,
		&status, &c.CreatedAt, &c.ExpiresAt, &accepted, &revoked,
	); err != nil {
		return nil, err
	}
	c.Status = models.Status(status)
	c.AcceptedAt = timePtr(accepted)
	c.RevokedAt = timePtr(revoked)
	return &c, nil
}
