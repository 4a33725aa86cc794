package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/archive"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// VaultService implements the vault synchronization protocol: one
// encrypted blob per identity, versioned with optimistic concurrency.
type VaultService struct {
	tx      dbx.Transactor
	repos   repomanager.RepositoryManager
	archive archive.Archive
	logger  logging.Logger
	opts    options
}

func NewVaultService(tx dbx.Transactor, repos repomanager.RepositoryManager, arch archive.Archive, logger logging.Logger, opts ...Option) *VaultService {
	if arch == nil {
		arch = archive.Disabled{}
	}
	return &VaultService{
		tx:      tx,
		repos:   repos,
		archive: arch,
		logger:  logger.With("module", "vaults"),
		opts:    buildOptions(opts),
	}
}

// Get returns the caller's vault or common.ErrNotFound.
func (s *VaultService) Get(ctx context.Context, identity string) (*models.Vault, error) {
	if identity == "" {
		return nil, common.ErrUnauthenticated
	}
	return s.repos.Vaults(s.tx.Conn()).Get(ctx, identity)
}

// Initialize creates the caller's vault at version 1.
func (s *VaultService) Initialize(ctx context.Context, identity string, blob models.VaultBlob) (*models.Vault, error) {
	if identity == "" {
		return nil, common.ErrUnauthenticated
	}
	v := s.newVault(identity, blob)
	if err := s.repos.Vaults(s.tx.Conn()).Create(ctx, v); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "vault initialized", "owner", identity)
	return v, nil
}

// Sync pushes blob as the caller's vault.
//
// Without a stored vault the blob becomes version 1 whatever clientVersion
// says. A client behind the server gets a conflict carrying the server copy
// unless force is set. Otherwise the blob is written as serverVersion+1 with
// a compare-and-set on the version that was read; a lost race re-reads and
// re-applies these rules.
func (s *VaultService) Sync(ctx context.Context, identity string, blob models.VaultBlob, clientVersion int64, force bool) (*models.SyncOutcome, error) {
	if identity == "" {
		return nil, common.ErrUnauthenticated
	}
	if clientVersion < 0 {
		return nil, fmt.Errorf("%w: negative client version", common.ErrValidation)
	}

	repo := s.repos.Vaults(s.tx.Conn())

	for attempt := 0; attempt < s.opts.syncAttempts; attempt++ {
		current, err := repo.Get(ctx, identity)
		if errors.Is(err, common.ErrNotFound) {
			v := s.newVault(identity, blob)
			err := repo.Create(ctx, v)
			if errors.Is(err, common.ErrAlreadyExists) {
				continue
			}
			if err != nil {
				return nil, err
			}
			return models.Applied(v.Version), nil
		}
		if err != nil {
			return nil, err
		}

		if clientVersion < current.Version && !force {
			return models.Conflict(current, clientVersion), nil
		}

		ok, err := repo.CompareAndSwap(ctx, identity, current.Version, blob, s.opts.clock())
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Debug(ctx, "vault sync lost race, retrying", "owner", identity, "read_version", current.Version)
			continue
		}

		if force && clientVersion < current.Version {
			s.archiveDisplaced(ctx, current, clientVersion)
		}
		return models.Applied(current.Version + 1), nil
	}

	return nil, fmt.Errorf("%w: vault sync retries exhausted", common.ErrStoreUnavailable)
}

// Delete removes the caller's vault. Deleting a missing vault succeeds.
func (s *VaultService) Delete(ctx context.Context, identity string) error {
	if identity == "" {
		return common.ErrUnauthenticated
	}
	return s.repos.Vaults(s.tx.Conn()).Delete(ctx, identity)
}

// ArchiveURL returns a download link for a vault version displaced by a
// forced sync.
func (s *VaultService) ArchiveURL(ctx context.Context, identity string, version int64) (string, error) {
	if identity == "" {
		return "", common.ErrUnauthenticated
	}
	if version < 1 {
		return "", fmt.Errorf("%w: version must be positive", common.ErrValidation)
	}
	url, err := s.archive.URL(ctx, identity, version)
	if errors.Is(err, archive.ErrDisabled) {
		return "", fmt.Errorf("%w: %v", common.ErrNotFound, err)
	}
	return url, err
}

func (s *VaultService) archiveDisplaced(ctx context.Context, displaced *models.Vault, clientVersion int64) {
	key, err := s.archive.Store(context.WithoutCancel(ctx), displaced)
	switch {
	case errors.Is(err, archive.ErrDisabled):
		s.logger.Debug(ctx, "forced sync discarded unseen version", "owner", displaced.OwnerID, "version", displaced.Version)
	case err != nil:
		s.logger.Warn(ctx, "archiving displaced vault failed", "owner", displaced.OwnerID, "version", displaced.Version, "error", err)
	default:
		s.logger.Info(ctx, "displaced vault archived", "owner", displaced.OwnerID, "version", displaced.Version,
			"client_version", clientVersion, "key", key)
	}
}

func (s *VaultService) newVault(identity string, blob models.VaultBlob) *models.Vault {
	now := s.opts.clock()
	return &models.Vault{
		ID:           uuid.NewString(),
		OwnerID:      identity,
		VaultBlob:    blob,
		Version:      1,
		LastSyncedAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
