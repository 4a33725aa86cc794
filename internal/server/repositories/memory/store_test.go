package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func share(id, from string, mode models.Mode, created time.Time) *models.Share {
	return &models.Share{
		ID: id, Mode: mode, FromID: from, PasswordRef: "ref", Payload: []byte("p"),
		Status: models.InitialStatus(mode), CreatedAt: created, ExpiresAt: created.Add(time.Hour),
	}
}

func TestVaults_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	r := NewStore().Vaults()

	_, err := r.Get(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.Create(ctx, &models.Vault{ID: "v", OwnerID: "alice", Version: 1}))
	assert.ErrorIs(t, r.Create(ctx, &models.Vault{ID: "v2", OwnerID: "alice", Version: 1}), common.ErrAlreadyExists)

	ok, err := r.CompareAndSwap(ctx, "alice", 2, models.VaultBlob{Ciphertext: []byte("x")}, t0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.CompareAndSwap(ctx, "alice", 1, models.VaultBlob{Ciphertext: []byte("x")}, t0)
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Version)
	assert.Equal(t, []byte("x"), v.Ciphertext)
	assert.Equal(t, t0, v.LastSyncedAt)

	require.NoError(t, r.Delete(ctx, "alice"))
	require.NoError(t, r.Delete(ctx, "alice"))
	_, err = r.Get(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestVaults_ConcurrentCASOneWinner(t *testing.T) {
	ctx := context.Background()
	r := NewStore().Vaults()
	require.NoError(t, r.Create(ctx, &models.Vault{ID: "v", OwnerID: "alice", Version: 1}))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := r.CompareAndSwap(ctx, "alice", 1, models.VaultBlob{}, t0)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestShares_IndicesAndOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	r := s.Shares()

	require.NoError(t, r.Create(ctx, share("d1", "alice", models.Direct{}, t0)))
	require.NoError(t, r.Create(ctx, share("u1", "alice", models.UserToUser{To: "bob"}, t0.Add(time.Minute))))
	require.NoError(t, r.Create(ctx, share("n1", "carol", models.Nearby{To: "bob"}, t0.Add(2*time.Minute))))
	require.NoError(t, r.Create(ctx, share("d2", "bob", models.Direct{}, t0.Add(3*time.Minute))))
	assert.ErrorIs(t, r.Create(ctx, share("d1", "x", models.Direct{}, t0)), common.ErrAlreadyExists)

	sent, _ := r.ListByFrom(ctx, "alice")
	assert.Equal(t, []string{"u1", "d1"}, ids(sent))

	to, _ := r.ListByTo(ctx, "bob")
	assert.Equal(t, []string{"n1", "u1"}, ids(to))

	bc, _ := r.ListActiveBroadcast(ctx, "bob")
	assert.Equal(t, []string{"d1"}, ids(bc))

	ok, err := r.Transition(ctx, models.Transition{ID: "d1", From: []models.Status{models.StatusActive}, To: models.StatusRevoked, At: t0})
	require.NoError(t, err)
	assert.True(t, ok)

	bc, _ = r.ListActiveBroadcast(ctx, "bob")
	assert.Empty(t, bc)

	got, _ := r.Get(ctx, "d1")
	require.NotNil(t, got.RevokedAt)
	assert.Nil(t, got.AcceptedAt)

	ok, _ = r.Transition(ctx, models.Transition{ID: "d1", From: []models.Status{models.StatusActive}, To: models.StatusAccepted, At: t0})
	assert.False(t, ok)

	n, _ := r.DeleteByFrom(ctx, "alice")
	assert.Equal(t, int64(2), n)
	to, _ = r.ListByTo(ctx, "bob")
	assert.Equal(t, []string{"n1"}, ids(to))
}

func TestShares_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewStore().Shares()
	require.NoError(t, r.Create(ctx, share("u1", "alice", models.UserToUser{To: "bob"}, t0)))

	got, _ := r.Get(ctx, "u1")
	got.Status = models.StatusExpired

	again, _ := r.Get(ctx, "u1")
	assert.Equal(t, models.StatusPending, again.Status)
}

func TestShares_ListExpiring(t *testing.T) {
	ctx := context.Background()
	r := NewStore().Shares()
	require.NoError(t, r.Create(ctx, share("a", "alice", models.Direct{}, t0)))
	require.NoError(t, r.Create(ctx, share("b", "alice", models.UserToUser{To: "bob"}, t0.Add(-time.Hour))))
	require.NoError(t, r.Create(ctx, share("c", "alice", models.UserToUser{To: "bob"}, t0.Add(2*time.Hour))))

	got, _ := r.ListExpiring(ctx, t0.Add(90*time.Minute))
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	r := NewStore().ContactShares()

	c := &models.ContactShare{ID: "c1", FromID: "alice", ToID: "bob", PasswordRef: "ref", Status: models.StatusPending, CreatedAt: t0, ExpiresAt: t0.Add(time.Hour)}
	require.NoError(t, r.Create(ctx, c))

	live, _ := r.ExistsLive(ctx, "alice", "bob", "ref", t0)
	assert.True(t, live)
	live, _ = r.ExistsLive(ctx, "alice", "bob", "ref", t0.Add(2*time.Hour))
	assert.False(t, live)
	live, _ = r.ExistsLive(ctx, "alice", "bob", "other", t0)
	assert.False(t, live)

	ok, _ := r.Transition(ctx, models.Transition{ID: "c1", From: []models.Status{models.StatusPending}, To: models.StatusAccepted, At: t0})
	assert.True(t, ok)
	got, _ := r.Get(ctx, "c1")
	assert.NotNil(t, got.AcceptedAt)

	expiring, _ := r.ListExpiring(ctx, t0.Add(2*time.Hour))
	assert.Empty(t, expiring)

	to, _ := r.ListByTo(ctx, "bob")
	assert.Len(t, to, 1)

	n, _ := r.DeleteByFrom(ctx, "alice")
	assert.Equal(t, int64(1), n)
	to, _ = r.ListByTo(ctx, "bob")
	assert.Empty(t, to)
}

func TestAudit_DeleteBySender(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Shares().Create(ctx, share("s1", "alice", models.Direct{}, t0)))
	require.NoError(t, s.Shares().Create(ctx, share("s2", "bob", models.Direct{}, t0)))

	a := s.Audit()
	require.NoError(t, a.Append(ctx, &models.AuditEntry{ID: "1", ShareID: "s1", Action: models.ActionCreated}))
	require.NoError(t, a.Append(ctx, &models.AuditEntry{ID: "2", ShareID: "s2", Action: models.ActionCreated}))
	require.NoError(t, a.Append(ctx, &models.AuditEntry{ID: "3", ShareID: "s1", Action: models.ActionFetched}))

	got, _ := a.ListByShare(ctx, "s1")
	require.Len(t, got, 2)
	assert.Equal(t, models.ActionFetched, got[1].Action)

	n, _ := a.DeleteBySender(ctx, "alice")
	assert.Equal(t, int64(2), n)
	got, _ = a.ListByShare(ctx, "s2")
	assert.Len(t, got, 1)
}

func TestFriendships_Symmetric(t *testing.T) {
	ctx := context.Background()
	f := NewStore().Friendships()

	ok, _ := f.IsAcceptedFriend(ctx, "alice", "bob")
	assert.False(t, ok)

	f.Befriend("bob", "alice")
	ok, _ = f.IsAcceptedFriend(ctx, "alice", "bob")
	assert.True(t, ok)

	f.Unfriend("alice", "bob")
	ok, _ = f.IsAcceptedFriend(ctx, "bob", "alice")
	assert.False(t, ok)
}

func ids(list []*models.Share) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestContacts_CreateUnlessLiveIsAtomic(t *testing.T) {
	ctx := context.Background()
	r := NewStore().ContactShares()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dups    int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := &models.ContactShare{
				ID: "c" + string(rune('A'+i)), FromID: "alice", ToID: "bob", PasswordRef: "ref",
				Status: models.StatusPending, CreatedAt: t0, ExpiresAt: t0.Add(time.Hour),
			}
			err := r.CreateUnlessLive(ctx, c, t0)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, common.ErrAlreadyExists):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, dups)
	sent, _ := r.ListByFrom(ctx, "alice")
	assert.Len(t, sent, 1)

	// an expired live share no longer blocks
	later := &models.ContactShare{ID: "late", FromID: "alice", ToID: "bob", PasswordRef: "ref", Status: models.StatusPending, CreatedAt: t0, ExpiresAt: t0.Add(3 * time.Hour)}
	require.NoError(t, r.CreateUnlessLive(ctx, later, t0.Add(2*time.Hour)))
}
