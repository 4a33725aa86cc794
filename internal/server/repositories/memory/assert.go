package memory

import (
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/audit"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/friendships"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/shares"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/vaults"
)

var (
	_ vaults.Repository        = (*VaultRepository)(nil)
	_ shares.Repository        = (*ShareRepository)(nil)
	_ shares.ContactRepository = (*ContactShareRepository)(nil)
	_ audit.Repository         = (*AuditRepository)(nil)
	_ friendships.Oracle       = (*Friendships)(nil)
)
