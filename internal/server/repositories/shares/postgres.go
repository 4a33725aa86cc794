// Package shares provides storage of share records and contact share
// records.
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

const shareColumns = `id, mode, from_id, to_id, password_ref, payload, can_view, can_save, is_revocable,
	status, created_at, expires_at, accepted_at, revoked_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Share) error {
	query := `INSERT INTO share_records (` + shareColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var to sql.NullString
	if rcpt := s.ToID(); rcpt != "" {
		to = sql.NullString{String: rcpt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		s.ID, string(s.Mode.Kind()), s.FromID, to, s.PasswordRef, s.Payload,
		s.Permission.CanView, s.Permission.CanSave, s.Permission.IsRevocable,
		string(s.Status), s.CreatedAt, s.ExpiresAt, nullTime(s.AcceptedAt), nullTime(s.RevokedAt),
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("insert share: %w", dbx.Unavailable(err))
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM share_records WHERE id = $1`
	s, err := scanShare(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("select share: %w", dbx.Unavailable(err))
	}
	return s, nil
}

func (r *PostgresRepository) Transition(ctx context.Context, t models.Transition) (bool, error) {
	return transition(ctx, r.db, "share_records", t)
}

func (r *PostgresRepository) ListByFrom(ctx context.Context, fromID string) ([]*models.Share, error) {
	return r.list(ctx, `SELECT `+shareColumns+` FROM share_records WHERE from_id = $1 ORDER BY created_at DESC`, fromID)
}

func (r *PostgresRepository) ListByTo(ctx context.Context, toID string) ([]*models.Share, error) {
	return r.list(ctx, `SELECT `+shareColumns+` FROM share_records WHERE to_id = $1 ORDER BY created_at DESC`, toID)
}

func (r *PostgresRepository) ListActiveBroadcast(ctx context.Context, excluding string) ([]*models.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM share_records
		WHERE mode = 'DIRECT' AND status = 'ACTIVE' AND from_id <> $1 ORDER BY created_at DESC`
	return r.list(ctx, query, excluding)
}

func (r *PostgresRepository) ListExpiring(ctx context.Context, now time.Time) ([]*models.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM share_records
		WHERE status IN ('ACTIVE', 'PENDING') AND expires_at < $1 ORDER BY expires_at`
	return r.list(ctx, query, now)
}

func (r *PostgresRepository) DeleteByFrom(ctx context.Context, fromID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM share_records WHERE from_id = $1`, fromID)
	if err != nil {
		return 0, fmt.Errorf("delete shares: %w", dbx.Unavailable(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", dbx.Unavailable(err))
	}
	return n, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Share, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", dbx.Unavailable(err))
	}
	defer rows.Close()

	var result []*models.Share
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Unavailable(err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShare(row scanner) (*models.Share, error) {
	var (
		s                 models.Share
		kind, status      string
		to                sql.NullString
		accepted, revoked sql.NullTime
	)
	if err := row.Scan(
		&s.ID, &kind, &s.FromID, &to, &s.PasswordRef, &s.Payload,
		&s.Permission.CanView, &s.Permission.CanSave, &s.Permission.IsRevocable,
		&status, &s.CreatedAt, &s.ExpiresAt, &accepted, &revoked,
	); err != nil {
		return nil, err
	}

	mode, err := models.NewMode(models.ModeKind(kind), to.String)
	if err != nil {
		return nil, fmt.Errorf("share %s: %w", s.ID, err)
	}
	s.Mode = mode
	s.Status = models.Status(status)
	s.AcceptedAt = timePtr(accepted)
	s.RevokedAt = timePtr(revoked)
	return &s, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
