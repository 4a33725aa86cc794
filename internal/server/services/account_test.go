package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

func TestAccountService_Erase(t *testing.T) {
	h := newHarness()
	h.store.Friendships().Befriend("alice", "bob")
	ctx := context.Background()

	vaults := NewVaultService(dbx.Passthrough{}, h.repos, nil, logging.Nop{}, h.opts...)
	_, err := vaults.Initialize(ctx, "alice", models.VaultBlob{Ciphertext: []byte("c")})
	require.NoError(t, err)

	sent := createShare(t, h.shares(), "alice", models.ModeUserToUser, "bob", fullPerm).Share
	cs, err := h.contacts().Create(ctx, "alice", contactRequest(t, "alice", "bob", "entry-1"))
	require.NoError(t, err)
	kept := createShare(t, h.shares(), "bob", models.ModeUserToUser, "alice", fullPerm).Share

	svc := NewAccountService(dbx.Passthrough{}, h.repos, logging.Nop{})
	assert.ErrorIs(t, svc.Erase(ctx, ""), common.ErrUnauthenticated)
	require.NoError(t, svc.Erase(ctx, "alice"))

	_, err = vaults.Get(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = h.store.Shares().Get(ctx, sent.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = h.store.ContactShares().Get(ctx, cs.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, h.actions(t, sent.ID))
	assert.Empty(t, h.actions(t, cs.ID))

	_, err = h.store.Shares().Get(ctx, kept.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, h.actions(t, kept.ID))

	// erasing twice is harmless
	assert.NoError(t, svc.Erase(ctx, "alice"))
}
