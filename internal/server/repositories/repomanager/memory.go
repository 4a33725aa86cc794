package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/audit"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/friendships"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/memory"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/shares"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/vaults"
)

// MemoryRepositoryManager vends repositories over one in-memory store. The
// handle argument is ignored; pair it with dbx.Passthrough.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager(store *memory.Store) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: store}
}

// Store exposes the backing store, e.g. to seed friendships.
func (m *MemoryRepositoryManager) Store() *memory.Store {
	return m.store
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Vaults(dbx.DBTX) vaults.Repository { return m.store.Vaults() }

func (m *MemoryRepositoryManager) Shares(dbx.DBTX) shares.Repository { return m.store.Shares() }

func (m *MemoryRepositoryManager) ContactShares(dbx.DBTX) shares.ContactRepository {
	return m.store.ContactShares()
}

func (m *MemoryRepositoryManager) Audit(dbx.DBTX) audit.Repository { return m.store.Audit() }

func (m *MemoryRepositoryManager) Friendships(dbx.DBTX) friendships.Oracle {
	return m.store.Friendships()
}
