package shares

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// transitionQuery builds the compare-and-set UPDATE shared by both share
// tables.
func transitionQuery(table string, t models.Transition) (string, []any, error) {
	if len(t.From) == 0 {
		return "", nil, fmt.Errorf("%w: transition without source states", common.ErrValidation)
	}

	var b strings.Builder
	args := []any{t.ID, string(t.To)}
	fmt.Fprintf(&b, "UPDATE %s SET status = $2", table)

	switch t.To {
	case models.StatusAccepted:
		args = append(args, t.At)
		fmt.Fprintf(&b, ", accepted_at = $%d", len(args))
	case models.StatusRevoked:
		args = append(args, t.At)
		fmt.Fprintf(&b, ", revoked_at = $%d", len(args))
	}

	b.WriteString(" WHERE id = $1 AND status IN (")
	for i, s := range t.From {
		if i > 0 {
			b.WriteString(", ")
		}
		args = append(args, string(s))
		fmt.Fprintf(&b, "$%d", len(args))
	}
	b.WriteString(")")
	return b.String(), args, nil
}

func transition(ctx context.Context, db dbx.DBTX, table string, t models.Transition) (bool, error) {
	query, args, err := transitionQuery(table, t)
	if err != nil {
		return false, err
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", table, dbx.Unavailable(err))
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
