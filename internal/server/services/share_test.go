package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/envelope"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
)

func createShare(t *testing.T, svc *ShareService, sender string, kind models.ModeKind, to string, perm envelope.Permission) *CreatedShare {
	t.Helper()
	out, err := svc.Create(context.Background(), sender, CreateShareRequest{
		Mode:        kind,
		RecipientID: to,
		PasswordRef: "entry-1",
		Envelope:    newEnvelope(t, sender, perm),
	})
	require.NoError(t, err)
	return out
}

func TestShareService_CreateInitialStatus(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.ModeKind
		to        string
		want      models.Status
		withToken bool
		notified  string
	}{
		{name: "direct", kind: models.ModeDirect, want: models.StatusActive, withToken: true, notified: notify.Broadcast},
		{name: "user to user", kind: models.ModeUserToUser, to: "bob", want: models.StatusPending, notified: "bob"},
		{name: "nearby", kind: models.ModeNearby, to: "bob", want: models.StatusPending, notified: "bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			out := createShare(t, h.shares(), "alice", tt.kind, tt.to, fullPerm)

			assert.Equal(t, tt.want, out.Share.Status)
			assert.Equal(t, t0, out.Share.CreatedAt)
			assert.Equal(t, t0.Add(common.DefaultShareTTL), out.Share.ExpiresAt)
			assert.Equal(t, tt.withToken, out.Token != "")
			assert.Equal(t, []models.AuditAction{models.ActionCreated}, h.actions(t, out.Share.ID))
			assert.Equal(t, []string{notify.ShareCreated}, h.notifier.types(tt.notified))
		})
	}
}

func TestShareService_CreateRejects(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	tests := []struct {
		name   string
		sender string
		req    func() CreateShareRequest
		want   error
	}{
		{
			name: "self share", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeUserToUser, RecipientID: "alice", PasswordRef: "p", Envelope: newEnvelope(t, "alice", fullPerm)}
			},
		},
		{
			name: "direct with recipient", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, RecipientID: "bob", PasswordRef: "p", Envelope: newEnvelope(t, "alice", fullPerm)}
			},
		},
		{
			name: "nearby without recipient", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeNearby, PasswordRef: "p", Envelope: newEnvelope(t, "alice", fullPerm)}
			},
		},
		{
			name: "missing password ref", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, Envelope: newEnvelope(t, "alice", fullPerm)}
			},
		},
		{
			name: "envelope of another sender", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Envelope: newEnvelope(t, "mallory", fullPerm)}
			},
		},
		{
			name: "missing envelope", sender: "alice", want: common.ErrShape,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p"}
			},
		},
		{
			name: "malformed payload", sender: "alice", want: common.ErrShape,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Payload: []byte(`{"version":1}`)}
			},
		},
		{
			name: "negative ttl", sender: "alice", want: common.ErrValidation,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Envelope: newEnvelope(t, "alice", fullPerm), TTL: -time.Second}
			},
		},
		{
			name: "anonymous", sender: "", want: common.ErrUnauthenticated,
			req: func() CreateShareRequest {
				return CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Envelope: newEnvelope(t, "", fullPerm)}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.sender, tt.req())
			assert.ErrorIs(t, err, tt.want)
		})
	}

	list, err := h.store.Shares().ListByFrom(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShareService_CreateFromPayloadAndDuplicateID(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	e := newEnvelope(t, "alice", fullPerm)
	raw, err := envelope.Serialize(e)
	require.NoError(t, err)

	out, err := svc.Create(ctx, "alice", CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Payload: raw, TTL: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, raw, out.Share.Payload)
	assert.Equal(t, t0.Add(time.Hour), out.Share.ExpiresAt)

	_, err = svc.Create(ctx, "alice", CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Payload: raw})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestShareService_SignedEnvelope(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	pk, sk, err := mldsa65.GenerateKey(nil)
	require.NoError(t, err)
	pub, err := pk.MarshalBinary()
	require.NoError(t, err)

	sign := func(e *envelope.Envelope) {
		e.SignerPublicKey = pub
		transcript, err := envelope.Transcript(e)
		require.NoError(t, err)
		sig := make([]byte, mldsa65.SignatureSize)
		require.NoError(t, mldsa65.SignTo(sk, transcript, nil, false, sig))
		e.Signature = sig
	}

	good := newEnvelope(t, "alice", fullPerm)
	sign(good)
	_, err = svc.Create(ctx, "alice", CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Envelope: good})
	require.NoError(t, err)

	tampered := newEnvelope(t, "alice", fullPerm)
	sign(tampered)
	tampered.Permission.CanSave = false
	_, err = svc.Create(ctx, "alice", CreateShareRequest{Mode: models.ModeDirect, PasswordRef: "p", Envelope: tampered})
	assert.ErrorIs(t, err, common.ErrShape)
}

func TestShareService_FetchAccess(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	u2u := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	direct := createShare(t, svc, "alice", models.ModeDirect, "", fullPerm).Share

	_, err := svc.Fetch(ctx, u2u.ID, "bob")
	assert.NoError(t, err)
	_, err = svc.Fetch(ctx, u2u.ID, "alice")
	assert.NoError(t, err)
	_, err = svc.Fetch(ctx, u2u.ID, "carol")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	got, err := svc.Fetch(ctx, direct.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, direct.Payload, got.Payload)

	_, err = svc.Fetch(ctx, "not-a-uuid", "bob")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.Equal(t, []models.AuditAction{models.ActionCreated, models.ActionFetched, models.ActionFetched}, h.actions(t, u2u.ID))
}

func TestShareService_AcceptOnce(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	sh := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share

	_, err := svc.Accept(ctx, sh.ID, "carol")
	assert.ErrorIs(t, err, common.ErrAccessDenied)
	_, err = svc.Accept(ctx, sh.ID, "alice")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	h.clock.Advance(time.Minute)
	got, err := svc.Accept(ctx, sh.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)
	require.NotNil(t, got.AcceptedAt)
	assert.Equal(t, t0.Add(time.Minute), *got.AcceptedAt)

	_, err = svc.Accept(ctx, sh.ID, "bob")
	assert.ErrorIs(t, err, common.ErrAlreadyAccepted)
	assert.ErrorIs(t, err, common.ErrInvalidState)

	// accepted shares stay readable
	_, err = svc.Fetch(ctx, sh.ID, "bob")
	assert.NoError(t, err)

	assert.Equal(t, []string{notify.ShareAccepted}, h.notifier.types("alice"))
}

func TestShareService_AcceptRequiresSavePermission(t *testing.T) {
	h := newHarness()
	svc := h.shares()

	sh := createShare(t, svc, "alice", models.ModeNearby, "bob", envelope.Permission{CanView: true, IsRevocable: true}).Share
	_, err := svc.Accept(context.Background(), sh.ID, "bob")
	assert.ErrorIs(t, err, common.ErrSaveNotAllowed)
}

func TestShareService_AcceptViewOnlyAfterRevokeOrExpiry(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()
	viewOnly := envelope.Permission{CanView: true, IsRevocable: true}

	revoked := createShare(t, svc, "alice", models.ModeUserToUser, "bob", viewOnly).Share
	require.NoError(t, svc.Revoke(ctx, revoked.ID, "alice"))
	for range 2 {
		_, err := svc.Accept(ctx, revoked.ID, "bob")
		assert.ErrorIs(t, err, common.ErrRevoked)
	}

	expired := createShare(t, svc, "alice", models.ModeUserToUser, "bob", viewOnly).Share
	h.clock.Advance(common.DefaultShareTTL + time.Minute)
	_, err := h.sweeper().Sweep(ctx, h.clock.Now())
	require.NoError(t, err)
	_, err = svc.Accept(ctx, expired.ID, "bob")
	assert.ErrorIs(t, err, common.ErrExpired)
}

func TestShareService_ConcurrentAcceptOneWinner(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	sh := createShare(t, svc, "alice", models.ModeDirect, "", fullPerm).Share

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		won     int
		already int
	)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Accept(ctx, sh.ID, "user-"+string(rune('a'+i)))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won++
			case errors.Is(err, common.ErrAlreadyAccepted):
				already++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, already)
}

func TestShareService_Revoke(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	sh := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share

	assert.ErrorIs(t, svc.Revoke(ctx, sh.ID, "bob"), common.ErrAccessDenied)
	require.NoError(t, svc.Revoke(ctx, sh.ID, "alice"))
	require.NoError(t, svc.Revoke(ctx, sh.ID, "alice"))

	_, err := svc.Fetch(ctx, sh.ID, "bob")
	assert.ErrorIs(t, err, common.ErrRevoked)
	_, err = svc.Accept(ctx, sh.ID, "bob")
	assert.ErrorIs(t, err, common.ErrRevoked)

	assert.Equal(t, []models.AuditAction{models.ActionCreated, models.ActionRevoked}, h.actions(t, sh.ID))
	assert.Equal(t, []string{notify.ShareCreated, notify.ShareRevoked}, h.notifier.types("bob"))
}

func TestShareService_RevokeAcceptedAndNotRevocable(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	accepted := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	_, err := svc.Accept(ctx, accepted.ID, "bob")
	require.NoError(t, err)
	assert.NoError(t, svc.Revoke(ctx, accepted.ID, "alice"))

	fixed := createShare(t, svc, "alice", models.ModeUserToUser, "bob", envelope.Permission{CanView: true, CanSave: true}).Share
	assert.ErrorIs(t, svc.Revoke(ctx, fixed.ID, "alice"), common.ErrNotRevocable)
}

func TestShareService_TokenAndRedeem(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	out := createShare(t, svc, "alice", models.ModeDirect, "", fullPerm)

	tok, err := svc.Token(ctx, out.Share.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, out.Token, tok)
	_, err = svc.Token(ctx, out.Share.ID, "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	got, err := svc.Redeem(ctx, tok, "carol")
	require.NoError(t, err)
	assert.Equal(t, out.Share.ID, got.ID)

	png, err := svc.TokenQR(ctx, out.Share.ID, "alice", 256)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	// a token for an envelope the server never stored
	other := newEnvelope(t, "alice", fullPerm)
	other.ShareID = out.Share.ID
	forged, err := envelope.EncodeToken(other)
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, forged, "carol")
	assert.ErrorIs(t, err, common.ErrShape)

	u2u := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	_, err = svc.Token(ctx, u2u.ID, "alice")
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, svc.Revoke(ctx, out.Share.ID, "alice"))
	_, err = svc.Token(ctx, out.Share.ID, "alice")
	assert.ErrorIs(t, err, common.ErrRevoked)
	_, err = svc.Redeem(ctx, tok, "carol")
	assert.ErrorIs(t, err, common.ErrRevoked)
}

func TestShareService_History(t *testing.T) {
	h := newHarness()
	svc := h.shares()
	ctx := context.Background()

	sh := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	_, err := svc.Accept(ctx, sh.ID, "bob")
	require.NoError(t, err)

	entries, err := svc.History(ctx, sh.ID, "bob")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionAccepted, entries[1].Action)
	assert.Equal(t, "bob", entries[1].PerformedBy)

	_, err = svc.History(ctx, sh.ID, "carol")
	assert.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestShareService_SideEffectFailuresDoNotFail(t *testing.T) {
	h := newHarness()
	fa := &failingAudit{}
	h.repos = &auditOverride{RepositoryManager: h.repos, audit: fa}
	h.notifier.err = errors.New("hub down")
	svc := h.shares()
	ctx := context.Background()

	sh := createShare(t, svc, "alice", models.ModeUserToUser, "bob", fullPerm).Share
	_, err := svc.Accept(ctx, sh.ID, "bob")
	require.NoError(t, err)

	got, err := h.store.Shares().Get(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, got.Status)
	assert.Equal(t, 4, fa.calls)
}
