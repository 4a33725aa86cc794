package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict is the error form of a vault version conflict. The sync
	// protocol reports conflicts as an outcome; this is only used where an
	// error value is required.
	ErrConflict = errors.New("version conflict")

	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState is the parent of every terminal-state violation.
	ErrInvalidState = errors.New("invalid state")

	ErrNotFriends = errors.New("not friends")

	// ErrShape marks a malformed share envelope.
	ErrShape = errors.New("malformed envelope")

	// ErrValidation marks a request that is wrong regardless of stored state.
	ErrValidation = errors.New("validation error")

	// ErrStoreUnavailable wraps transient storage failures; callers may retry
	// with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Auth errors (invalid or malformed token).
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
)

// Terminal-state violations. Each matches ErrInvalidState via errors.Is.
var (
	ErrExpired         = stateError("share_expired")
	ErrRevoked         = stateError("share_revoked")
	ErrAlreadyAccepted = stateError("share_already_accepted")
	ErrNotRevocable    = stateError("share_not_revocable")
	ErrSaveNotAllowed  = stateError("share_save_not_allowed")
)

type invalidStateError struct {
	code string
}

func stateError(code string) error {
	return &invalidStateError{code: code}
}

func (e *invalidStateError) Error() string {
	return e.code
}

func (e *invalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// Code returns the stable, client-facing code for err. Unknown errors map to
// "internal".
func Code(err error) string {
	var se *invalidStateError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.code
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrConflict):
		return "version_conflict"
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrNotFriends):
		return "not_friends"
	case errors.Is(err, ErrShape):
		return "malformed_envelope"
	case errors.Is(err, ErrValidation):
		return "invalid_request"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidToken):
		return "unauthenticated"
	default:
		return "internal"
	}
}
