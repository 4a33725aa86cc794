package services

import (
	"context"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// AccountService removes everything the server holds for an identity.
type AccountService struct {
	tx     dbx.Transactor
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewAccountService(tx dbx.Transactor, repos repomanager.RepositoryManager, logger logging.Logger) *AccountService {
	return &AccountService{tx: tx, repos: repos, logger: logger.With("module", "accounts")}
}

// Erase deletes the vault of identity, every share and contact share it
// sent and their audit rows, in one transaction. Shares others sent to the
// identity are left to their senders.
func (s *AccountService) Erase(ctx context.Context, identity string) error {
	if identity == "" {
		return common.ErrUnauthenticated
	}

	var auditRows, shareRows, contactRows int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if auditRows, err = s.repos.Audit(tx).DeleteBySender(ctx, identity); err != nil {
			return err
		}
		if shareRows, err = s.repos.Shares(tx).DeleteByFrom(ctx, identity); err != nil {
			return err
		}
		if contactRows, err = s.repos.ContactShares(tx).DeleteByFrom(ctx, identity); err != nil {
			return err
		}
		return s.repos.Vaults(tx).Delete(ctx, identity)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "account erased", "identity", identity,
		"shares", shareRows, "contact_shares", contactRows, "audit_entries", auditRows)
	return nil
}
