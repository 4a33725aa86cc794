package models

import (
	"fmt"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// ModeKind is the persisted name of a transport mode.
type ModeKind string

const (
	ModeDirect     ModeKind = "DIRECT"
	ModeUserToUser ModeKind = "USER_TO_USER"
	ModeNearby     ModeKind = "NEARBY"
)

// Mode is how a share travels. The set is closed: Direct, UserToUser and
// Nearby are the only implementations.
type Mode interface {
	Kind() ModeKind
	// Recipient is the addressed identity, empty for Direct.
	Recipient() string
	isMode()
}

// Direct is a broadcast share: anyone holding the token may open it.
type Direct struct{}

// UserToUser is addressed to one identity over the network.
type UserToUser struct{ To string }

// Nearby is addressed to one identity and handed over in person.
type Nearby struct{ To string }

func (Direct) Kind() ModeKind     { return ModeDirect }
func (UserToUser) Kind() ModeKind { return ModeUserToUser }
func (Nearby) Kind() ModeKind     { return ModeNearby }

func (Direct) Recipient() string       { return "" }
func (m UserToUser) Recipient() string { return m.To }
func (m Nearby) Recipient() string     { return m.To }

func (Direct) isMode()     {}
func (UserToUser) isMode() {}
func (Nearby) isMode()     {}

// NewMode builds a Mode from its persisted form. Addressed modes need a
// recipient; Direct must not have one.
func NewMode(kind ModeKind, to string) (Mode, error) {
	switch kind {
	case ModeDirect:
		if to != "" {
			return nil, fmt.Errorf("%w: direct share cannot name a recipient", common.ErrValidation)
		}
		return Direct{}, nil
	case ModeUserToUser, ModeNearby:
		if to == "" {
			return nil, fmt.Errorf("%w: %s share requires a recipient", common.ErrValidation, kind)
		}
		if kind == ModeNearby {
			return Nearby{To: to}, nil
		}
		return UserToUser{To: to}, nil
	default:
		return nil, fmt.Errorf("%w: unknown share mode %q", common.ErrValidation, kind)
	}
}

// MatchMode dispatches on m. Adding a mode breaks every caller at compile
// time, which is the point.
func MatchMode[T any](m Mode, direct func(Direct) T, userToUser func(UserToUser) T, nearby func(Nearby) T) T {
	switch v := m.(type) {
	case Direct:
		return direct(v)
	case UserToUser:
		return userToUser(v)
	case Nearby:
		return nearby(v)
	default:
		panic(fmt.Sprintf("models: unknown mode %T", m))
	}
}

// IsBroadcast reports whether m is Direct.
func IsBroadcast(m Mode) bool {
	_, ok := m.(Direct)
	return ok
}
