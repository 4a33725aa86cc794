package client

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// ErrUnavailable is returned when the server cannot be reached.
var ErrUnavailable = errors.New("server unavailable")

var byCode = map[string]error{
	"not_found":              common.ErrNotFound,
	"already_exists":         common.ErrAlreadyExists,
	"version_conflict":       common.ErrConflict,
	"access_denied":          common.ErrAccessDenied,
	"not_friends":            common.ErrNotFriends,
	"malformed_envelope":     common.ErrShape,
	"invalid_request":        common.ErrValidation,
	"store_unavailable":      common.ErrStoreUnavailable,
	"unauthenticated":        common.ErrUnauthenticated,
	"share_expired":          common.ErrExpired,
	"share_revoked":          common.ErrRevoked,
	"share_already_accepted": common.ErrAlreadyAccepted,
	"share_not_revocable":    common.ErrNotRevocable,
	"share_save_not_allowed": common.ErrSaveNotAllowed,
}

// mapError turns a gRPC status back into the matching common error, so
// callers can use errors.Is on both sides of the wire.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if known, ok := byCode[st.Message()]; ok {
		return known
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return common.ErrUnauthenticated
	}
	return err
}
