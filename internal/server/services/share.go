package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/dbx"
	"github.com/dmitrijs2005/vaultshare/internal/envelope"
	"github.com/dmitrijs2005/vaultshare/internal/logging"
	"github.com/dmitrijs2005/vaultshare/internal/server/models"
	"github.com/dmitrijs2005/vaultshare/internal/server/notify"
	"github.com/dmitrijs2005/vaultshare/internal/server/repositories/repomanager"
)

// CreateShareRequest describes a new mode-based share. Exactly one of
// Envelope and Payload (a serialized envelope) is expected.
type CreateShareRequest struct {
	Mode        models.ModeKind
	RecipientID string
	PasswordRef string
	Envelope    *envelope.Envelope
	Payload     []byte
	// TTL of zero means the configured default.
	TTL time.Duration
}

// CreatedShare is the result of ShareService.Create. Token is set for
// direct shares only.
type CreatedShare struct {
	Share *models.Share
	Token string
}

// ShareService runs the lifecycle of DIRECT, USER_TO_USER and NEARBY shares.
type ShareService struct {
	rec recorder
}

func NewShareService(tx dbx.Transactor, repos repomanager.RepositoryManager, notifier notify.Notifier, logger logging.Logger, opts ...Option) *ShareService {
	return &ShareService{rec: recorder{
		tx:       tx,
		repos:    repos,
		notifier: notifier,
		logger:   logger.With("module", "shares"),
		opts:     buildOptions(opts),
	}}
}

func (s *ShareService) Create(ctx context.Context, sender string, req CreateShareRequest) (*CreatedShare, error) {
	mode, err := models.NewMode(req.Mode, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if err := checkParties(sender, mode.Recipient(), req.PasswordRef); err != nil {
		return nil, err
	}
	ttl, err := s.rec.opts.ttl(req.TTL)
	if err != nil {
		return nil, err
	}
	env, payload, err := checkedPayload(sender, req.Envelope, req.Payload)
	if err != nil {
		return nil, err
	}

	now := s.rec.opts.clock()
	share := &models.Share{
		ID:          uuid.MustParse(env.ShareID).String(),
		Mode:        mode,
		FromID:      sender,
		PasswordRef: req.PasswordRef,
		Payload:     payload,
		Permission:  env.Permission,
		Status:      models.InitialStatus(mode),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
	if err := s.rec.repos.Shares(s.rec.tx.Conn()).Create(ctx, share); err != nil {
		return nil, err
	}

	s.rec.logger.Info(ctx, "share created", "share_id", share.ID, "mode", string(mode.Kind()), "from", sender)
	s.rec.audit(ctx, models.KindShare, share.ID, models.ActionCreated, sender, now)
	s.rec.notify(ctx, notifyTarget(mode), notify.ShareCreated, models.KindShare, share.ID, sender, now)

	out := &CreatedShare{Share: share}
	if models.IsBroadcast(mode) {
		out.Token = token(payload)
	}
	return out, nil
}

// Fetch returns a share to its recipient, its sender or, for broadcast
// shares, anyone.
func (s *ShareService) Fetch(ctx context.Context, id, requester string) (*models.Share, error) {
	share, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.read(ctx, share, requester)
}

func (s *ShareService) read(ctx context.Context, share *models.Share, requester string) (*models.Share, error) {
	if err := shareAccess(share).checkRead(requester); err != nil {
		return nil, err
	}
	s.rec.audit(ctx, models.KindShare, share.ID, models.ActionFetched, requester, s.rec.opts.clock())
	return share, nil
}

// Accept saves a share into the recipient's vault. Only the first accept
// wins; later ones get common.ErrAlreadyAccepted.
func (s *ShareService) Accept(ctx context.Context, id, requester string) (*models.Share, error) {
	repo := s.rec.repos.Shares(s.rec.tx.Conn())

	share, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := shareAccess(share).checkAccept(requester); err != nil {
		return nil, err
	}

	now := s.rec.opts.clock()
	ok, err := repo.Transition(ctx, models.Transition{ID: share.ID, From: openStatuses, To: models.StatusAccepted, At: now})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.lostRace(ctx, share.ID)
	}

	share.Status = models.StatusAccepted
	share.AcceptedAt = &now

	s.rec.audit(ctx, models.KindShare, share.ID, models.ActionAccepted, requester, now)
	s.rec.notify(ctx, share.FromID, notify.ShareAccepted, models.KindShare, share.ID, requester, now)
	return share, nil
}

// Revoke withdraws a share. Revoking a revoked share is a no-op.
func (s *ShareService) Revoke(ctx context.Context, id, requester string) error {
	repo := s.rec.repos.Shares(s.rec.tx.Conn())

	share, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	done, err := shareAccess(share).checkRevoke(requester)
	if err != nil || done {
		return err
	}

	now := s.rec.opts.clock()
	ok, err := repo.Transition(ctx, models.Transition{ID: share.ID, From: revocableStatuses, To: models.StatusRevoked, At: now})
	if err != nil {
		return err
	}
	if !ok {
		current, err := repo.Get(ctx, share.ID)
		if err != nil {
			return err
		}
		_, err = shareAccess(current).checkRevoke(requester)
		return err
	}

	s.rec.logger.Info(ctx, "share revoked", "share_id", share.ID)
	s.rec.audit(ctx, models.KindShare, share.ID, models.ActionRevoked, requester, now)
	s.rec.notify(ctx, notifyTarget(share.Mode), notify.ShareRevoked, models.KindShare, share.ID, requester, now)
	return nil
}

// Token re-issues the portable token of a direct or nearby share to its
// sender.
func (s *ShareService) Token(ctx context.Context, id, requester string) (string, error) {
	share, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	if requester != share.FromID {
		return "", common.ErrAccessDenied
	}
	if _, ok := share.Mode.(models.UserToUser); ok {
		return "", fmt.Errorf("%w: user-to-user shares have no token", common.ErrValidation)
	}
	if !share.Status.Live() {
		return "", statusError(share.Status)
	}
	return token(share.Payload), nil
}

// TokenQR renders Token as a PNG.
func (s *ShareService) TokenQR(ctx context.Context, id, requester string, size int) ([]byte, error) {
	tok, err := s.Token(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	return envelope.QRCode(tok, size)
}

// Redeem opens a share from its token. The token must match the stored
// envelope byte for byte.
func (s *ShareService) Redeem(ctx context.Context, tok, requester string) (*models.Share, error) {
	env, err := envelope.DecodeToken(tok)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(env.ShareID)
	if err != nil {
		return nil, fmt.Errorf("%w: share id must be a uuid", common.ErrShape)
	}
	share, err := s.rec.repos.Shares(s.rec.tx.Conn()).Get(ctx, id.String())
	if err != nil {
		return nil, err
	}
	canonical, err := envelope.Serialize(env)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, share.Payload) {
		return nil, fmt.Errorf("%w: token does not match share", common.ErrShape)
	}
	return s.read(ctx, share, requester)
}

// History returns the audit trail of a share to its sender or addressed
// recipient.
func (s *ShareService) History(ctx context.Context, id, requester string) ([]*models.AuditEntry, error) {
	share, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := shareAccess(share).checkHistory(requester); err != nil {
		return nil, err
	}
	return s.rec.repos.Audit(s.rec.tx.Conn()).ListByShare(ctx, share.ID)
}

func (s *ShareService) get(ctx context.Context, id string) (*models.Share, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	return s.rec.repos.Shares(s.rec.tx.Conn()).Get(ctx, id)
}

// lostRace explains why a transition matched no row: somebody else moved
// the share first.
func (s *ShareService) lostRace(ctx context.Context, id string) error {
	current, err := s.rec.repos.Shares(s.rec.tx.Conn()).Get(ctx, id)
	if err != nil {
		return err
	}
	if err := statusError(current.Status); err != nil {
		return err
	}
	return fmt.Errorf("%w: share changed concurrently", common.ErrStoreUnavailable)
}

func notifyTarget(m models.Mode) string {
	return models.MatchMode(m,
		func(models.Direct) string { return notify.Broadcast },
		func(u models.UserToUser) string { return u.To },
		func(n models.Nearby) string { return n.To },
	)
}

func token(payload []byte) string {
	return base64.RawURLEncoding.EncodeToString(payload)
}
