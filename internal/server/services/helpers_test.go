package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/envelope"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/audit"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/memory"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: t0} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recordingNotifier keeps every event per target.
type recordingNotifier struct {
	mu     sync.Mutex
	events map[string][]notify.Event
	err    error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: map[string][]notify.Event{}}
}

func (n *recordingNotifier) Notify(_ context.Context, target string, ev notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.events[target] = append(n.events[target], ev)
	return nil
}

func (n *recordingNotifier) types(target string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, ev := range n.events[target] {
		out = append(out, ev.Type)
	}
	return out
}

// failingAudit rejects every append.
type failingAudit struct {
	audit.Repository
	mu    sync.Mutex
	calls int
}

func (f *failingAudit) Append(context.Context, *models.AuditEntry) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return errors.New("audit store down")
}

type auditOverride struct {
	repomanager.RepositoryManager
	audit audit.Repository
}

func (m *auditOverride) Audit(dbx.DBTX) audit.Repository { return m.audit }

type harness struct {
	store    *memory.Store
	repos    repomanager.RepositoryManager
	clock    *fakeClock
	notifier *recordingNotifier
	opts     []Option
}

func newHarness() *harness {
	store := memory.NewStore()
	clock := newFakeClock()
	return &harness{
		store:    store,
		repos:    repomanager.NewMemoryRepositoryManager(store),
		clock:    clock,
		notifier: newRecordingNotifier(),
		opts:     []Option{WithClock(clock.Now), WithAuditRetry(2, 0)},
	}
}

func (h *harness) shares() *ShareService {
	return NewShareService(dbx.Passthrough{}, h.repos, h.notifier, logging.Nop{}, h.opts...)
}

func (h *harness) contacts() *ContactShareService {
	return NewContactShareService(dbx.Passthrough{}, h.repos, h.notifier, logging.Nop{}, h.opts...)
}

func (h *harness) directory() *ShareDirectory {
	return NewShareDirectory(dbx.Passthrough{}, h.repos)
}

func (h *harness) sweeper() *ExpirySweeper {
	return NewExpirySweeper(dbx.Passthrough{}, h.repos, h.notifier, logging.Nop{}, h.opts...)
}

func (h *harness) actions(t *testing.T, shareID string) []models.AuditAction {
	t.Helper()
	entries, err := h.store.Audit().ListByShare(context.Background(), shareID)
	require.NoError(t, err)
	var out []models.AuditAction
	for _, en := range entries {
		out = append(out, en.Action)
	}
	return out
}

var recipientKey = func() []byte {
	pk, _, err := mlkem768.Scheme().GenerateKeyPair()
	if err != nil {
		panic(err)
	}
	b, err := pk.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}()

func newEnvelope(t *testing.T, sender string, perm envelope.Permission) *envelope.Envelope {
	t.Helper()
	sk, err := envelope.NewSessionKey()
	require.NoError(t, err)
	fields, err := envelope.WrapFields(sk, map[string][]byte{envelope.FieldPassword: []byte("hunter2")})
	require.NoError(t, err)
	wrapped, err := envelope.WrapSessionKey(sk, recipientKey)
	require.NoError(t, err)
	return &envelope.Envelope{
		Version:           envelope.SchemaVersion,
		ShareID:           uuid.NewString(),
		SenderID:          sender,
		WrappedSessionKey: wrapped,
		Fields:            fields,
		Permission:        perm,
		ExpiresAt:         t0.Add(24 * time.Hour),
	}
}

var fullPerm = envelope.Permission{CanView: true, CanSave: true, IsRevocable: true}
