package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateErrors_MatchInvalidState(t *testing.T) {
	for _, err := range []error{ErrExpired, ErrRevoked, ErrAlreadyAccepted, ErrNotRevocable, ErrSaveNotAllowed} {
		assert.ErrorIs(t, err, ErrInvalidState, err.Error())
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrInvalidState)
	}
	assert.NotErrorIs(t, ErrRevoked, ErrExpired)
	assert.NotErrorIs(t, ErrNotFound, ErrInvalidState)
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrRevoked, "share_revoked"},
		{fmt.Errorf("x: %w", ErrAlreadyAccepted), "share_already_accepted"},
		{ErrNotFound, "not_found"},
		{ErrAlreadyExists, "already_exists"},
		{ErrAccessDenied, "access_denied"},
		{ErrNotFriends, "not_friends"},
		{fmt.Errorf("%w: missing password", ErrShape), "malformed_envelope"},
		{ErrValidation, "invalid_request"},
		{fmt.Errorf("%w: conn reset", ErrStoreUnavailable), "store_unavailable"},
		{ErrInvalidToken, "unauthenticated"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err))
	}
}
