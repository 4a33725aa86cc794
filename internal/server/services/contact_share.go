package services

import (
	"context"
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

// CreateContactShareRequest describes a share to an accepted friend.
type CreateContactShareRequest struct {
	RecipientID string
	PasswordRef string
	Envelope    *envelope.Envelope
	Payload     []byte
	TTL         time.Duration
}

// ContactShareService runs the lifecycle of friend-restricted shares. Its
// guards match ShareService; creation additionally needs an accepted
// friendship and no live share of the same entry to the same friend.
type ContactShareService struct {
	rec recorder
}

func NewContactShareService(tx dbx.Transactor, repos repomanager.RepositoryManager, notifier notify.Notifier, logger logging.Logger, opts ...Option) *ContactShareService {
	return &ContactShareService{rec: recorder{
		tx:       tx,
		repos:    repos,
		notifier: notifier,
		logger:   logger.With("module", "contact_shares"),
		opts:     buildOptions(opts),
	}}
}

func (s *ContactShareService) Create(ctx context.Context, sender string, req CreateContactShareRequest) (*models.ContactShare, error) {
	if req.RecipientID == "" {
		return nil, fmt.Errorf("%w: contact share requires a recipient", common.ErrValidation)
	}
	if err := checkParties(sender, req.RecipientID, req.PasswordRef); err != nil {
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

	friends, err := s.rec.repos.Friendships(s.rec.tx.Conn()).IsAcceptedFriend(ctx, sender, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, common.ErrNotFriends
	}

	now := s.rec.opts.clock()
	cs := &models.ContactShare{
		ID:          uuid.MustParse(env.ShareID).String(),
		FromID:      sender,
		ToID:        req.RecipientID,
		PasswordRef: req.PasswordRef,
		Payload:     payload,
		Permission:  env.Permission,
		Status:      models.StatusPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	err = s.rec.tx.WithinTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.rec.repos.ContactShares(tx).CreateUnlessLive(ctx, cs, now)
	})
	if err != nil {
		return nil, err
	}

	s.rec.logger.Info(ctx, "contact share created", "share_id", cs.ID, "from", sender)
	s.rec.audit(ctx, models.KindContactShare, cs.ID, models.ActionCreated, sender, now)
	s.rec.notify(ctx, cs.ToID, notify.ShareCreated, models.KindContactShare, cs.ID, sender, now)
	return cs, nil
}

func (s *ContactShareService) Fetch(ctx context.Context, id, requester string) (*models.ContactShare, error) {
	cs, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := contactAccess(cs).checkRead(requester); err != nil {
		return nil, err
	}
	s.rec.audit(ctx, models.KindContactShare, cs.ID, models.ActionFetched, requester, s.rec.opts.clock())
	return cs, nil
}

func (s *ContactShareService) Accept(ctx context.Context, id, requester string) (*models.ContactShare, error) {
	cs, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := contactAccess(cs).checkAccept(requester); err != nil {
		return nil, err
	}

	repo := s.rec.repos.ContactShares(s.rec.tx.Conn())
	now := s.rec.opts.clock()
	ok, err := repo.Transition(ctx, models.Transition{ID: cs.ID, From: []models.Status{models.StatusPending}, To: models.StatusAccepted, At: now})
	if err != nil {
		return nil, err
	}
	if !ok {
		current, err := repo.Get(ctx, cs.ID)
		if err != nil {
			return nil, err
		}
		if err := statusError(current.Status); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: contact share changed concurrently", common.ErrStoreUnavailable)
	}

	cs.Status = models.StatusAccepted
	cs.AcceptedAt = &now

	s.rec.audit(ctx, models.KindContactShare, cs.ID, models.ActionAccepted, requester, now)
	s.rec.notify(ctx, cs.FromID, notify.ShareAccepted, models.KindContactShare, cs.ID, requester, now)
	return cs, nil
}

func (s *ContactShareService) Revoke(ctx context.Context, id, requester string) error {
	cs, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	done, err := contactAccess(cs).checkRevoke(requester)
	if err != nil || done {
		return err
	}

	repo := s.rec.repos.ContactShares(s.rec.tx.Conn())
	now := s.rec.opts.clock()
	ok, err := repo.Transition(ctx, models.Transition{
		ID: cs.ID, From: []models.Status{models.StatusPending, models.StatusAccepted}, To: models.StatusRevoked, At: now,
	})
	if err != nil {
		return err
	}
	if !ok {
		current, err := repo.Get(ctx, cs.ID)
		if err != nil {
			return err
		}
		_, err = contactAccess(current).checkRevoke(requester)
		return err
	}

	s.rec.logger.Info(ctx, "contact share revoked", "share_id", cs.ID)
	s.rec.audit(ctx, models.KindContactShare, cs.ID, models.ActionRevoked, requester, now)
	s.rec.notify(ctx, cs.ToID, notify.ShareRevoked, models.KindContactShare, cs.ID, requester, now)
	return nil
}

// History returns the audit trail to the sender or the recipient.
func (s *ContactShareService) History(ctx context.Context, id, requester string) ([]*models.AuditEntry, error) {
	cs, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := contactAccess(cs).checkHistory(requester); err != nil {
		return nil, err
	}
	return s.rec.repos.Audit(s.rec.tx.Conn()).ListByShare(ctx, cs.ID)
}

func (s *ContactShareService) get(ctx context.Context, id string) (*models.ContactShare, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	return s.rec.repos.ContactShares(s.rec.tx.Conn()).Get(ctx, id)
}
