package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/audit"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/friendships"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/shares"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to a database handle, so a
// service can get the same repositories inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Vaults(db dbx.DBTX) vaults.Repository
	Shares(db dbx.DBTX) shares.Repository
	ContactShares(db dbx.DBTX) shares.ContactRepository
	Audit(db dbx.DBTX) audit.Repository
	Friendships(db dbx.DBTX) friendships.Oracle
}
