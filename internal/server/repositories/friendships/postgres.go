// Package friendships reads the accepted-friend relation maintained by the
// friend subsystem.
package friendships

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
)

// StatusAccepted is the friendships.status value of an accepted edge.
const StatusAccepted = "ACCEPTED"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) IsAcceptedFriend(ctx context.Context, a, b string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM friendships
		WHERE status = $3
			AND ((requester_id = $1 AND addressee_id = $2) OR (requester_id = $2 AND addressee_id = $1)))`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, a, b, StatusAccepted).Scan(&ok); err != nil {
		return false, fmt.Errorf("check friendship: %w", dbx.Unavailable(err))
	}
	return ok, nil
}
