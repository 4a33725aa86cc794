package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vaultshare/internal/common"
	"github.com/dmitrijs2005/vaultshare/internal/envelope"
)

// checkedPayload validates the envelope of a create request and returns it
// with its canonical serialization.
func checkedPayload(sender string, env *envelope.Envelope, raw []byte) (*envelope.Envelope, []byte, error) {
	var err error
	switch {
	case env != nil:
		if err = envelope.ValidateShape(env); err != nil {
			return nil, nil, err
		}
	case len(raw) > 0:
		if env, err = envelope.ValidateShapeJSON(raw); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("%w: missing envelope", common.ErrShape)
	}

	if err := envelope.VerifySignature(env); err != nil && !errors.Is(err, envelope.ErrUnsigned) {
		return nil, nil, err
	}
	if env.SenderID != sender {
		return nil, nil, fmt.Errorf("%w: envelope sender does not match caller", common.ErrValidation)
	}
	if _, err := uuid.Parse(env.ShareID); err != nil {
		return nil, nil, fmt.Errorf("%w: share id must be a uuid", common.ErrValidation)
	}

	payload, err := envelope.Serialize(env)
	if err != nil {
		return nil, nil, err
	}
	return env, payload, nil
}

func (o options) ttl(requested time.Duration) (time.Duration, error) {
	switch {
	case requested < 0:
		return 0, fmt.Errorf("%w: negative ttl", common.ErrValidation)
	case requested == 0:
		return o.defaultTTL, nil
	default:
		return requested, nil
	}
}

func checkParties(sender, recipient, passwordRef string) error {
	if sender == "" {
		return common.ErrUnauthenticated
	}
	if recipient != "" && recipient == sender {
		return fmt.Errorf("%w: cannot share with yourself", common.ErrValidation)
	}
	if passwordRef == "" {
		return fmt.Errorf("%w: password ref is required", common.ErrValidation)
	}
	return nil
}

// normalizeID turns a caller-supplied share id into its stored form. A
// value that is not a uuid cannot name any share.
func normalizeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", common.ErrNotFound
	}
	return u.String(), nil
}
