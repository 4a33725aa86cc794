// Package audit provides the share audit log.
package audit

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, e *models.AuditEntry) error {
	query := `INSERT INTO share_audit_log (id, share_id, share_kind, action, performed_by, at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ShareID, string(e.ShareKind), string(e.Action), e.PerformedBy, e.At)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", dbx.Unavailable(err))
	}
	return nil
}

func (r *PostgresRepository) ListByShare(ctx context.Context, shareID string) ([]*models.AuditEntry, error) {
	query := `SELECT id, share_id, share_kind, action, performed_by, at
		FROM share_audit_log WHERE share_id = $1 ORDER BY at, id`
	rows, err := r.db.QueryContext(ctx, query, shareID)
	if err != nil {
		return nil, fmt.Errorf("failed to select audit entries: %w", dbx.Unavailable(err))
	}
	defer rows.Close()

	var result []*models.AuditEntry
	for rows.Next() {
		var (
			e            models.AuditEntry
			kind, action string
		)
		if err := rows.Scan(&e.ID, &e.ShareID, &kind, &action, &e.PerformedBy, &e.At); err != nil {
			return nil, err
		}
		e.ShareKind = models.ShareKind(kind)
		e.Action = models.AuditAction(action)
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Unavailable(err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteBySender(ctx context.Context, fromID string) (int64, error) {
	query := `DELETE FROM share_audit_log
		WHERE share_id IN (SELECT id FROM share_records WHERE from_id = $1)
			OR share_id IN (SELECT id FROM contact_shares WHERE from_id = $1)`
	res, err := r.db.ExecContext(ctx, query, fromID)
	if err != nil {
		return 0, fmt.Errorf("delete audit entries: %w", dbx.Unavailable(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", dbx.Unavailable(err))
	}
	return n, nil
}
