package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

func summaryIDs(list []models.ShareSummary) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestShareDirectory_Lists(t *testing.T) {
	h := newHarness()
	h.store.Friendships().Befriend("alice", "bob")
	shares, contacts, dir := h.shares(), h.contacts(), h.directory()
	ctx := context.Background()

	direct := createShare(t, shares, "alice", models.ModeDirect, "", fullPerm).Share
	h.clock.Advance(time.Minute)
	u2u := createShare(t, shares, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	h.clock.Advance(time.Minute)
	cs, err := contacts.Create(ctx, "alice", contactRequest(t, "alice", "bob", "entry-9"))
	require.NoError(t, err)
	h.clock.Advance(time.Minute)
	bobs := createShare(t, shares, "bob", models.ModeDirect, "", fullPerm).Share
	h.clock.Advance(time.Minute)
	toCarol := createShare(t, shares, "alice", models.ModeNearby, "carol", fullPerm).Share

	sent, err := dir.ListSent(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{toCarol.ID, cs.ID, u2u.ID, direct.ID}, summaryIDs(sent))
	assert.Equal(t, models.KindContactShare, sent[1].Kind)

	received, err := dir.ListReceived(ctx, "bob")
	require.NoError(t, err)
	// bob's own broadcast is not something he received
	assert.Equal(t, []string{cs.ID, u2u.ID, direct.ID}, summaryIDs(received))
	assert.NotContains(t, summaryIDs(received), bobs.ID)

	// an accepted broadcast share is no longer offered to others
	_, err = shares.Accept(ctx, direct.ID, "carol")
	require.NoError(t, err)
	received, err = dir.ListReceived(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{cs.ID, u2u.ID}, summaryIDs(received))

	// transitions are visible immediately
	require.NoError(t, shares.Revoke(ctx, u2u.ID, "alice"))
	received, err = dir.ListReceived(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, models.StatusRevoked, received[1].Status)
}
