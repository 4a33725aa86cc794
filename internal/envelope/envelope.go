package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// Permission is what the recipient may do with a share. It travels outside
// the encrypted fields and is therefore the only thing, together with the
// expiry, the server is allowed to branch on.
type Permission struct {
	CanView     bool `json:"can_view"`
	CanSave     bool `json:"can_save"`
	IsRevocable bool `json:"is_revocable"`
}

// Envelope is the wire container for one shared entry. Treat it as
// immutable once built; Clone before changing anything.
type Envelope struct {
	Version           int               `json:"version"`
	ShareID           string            `json:"share_id"`
	SenderID          string            `json:"sender_id"`
	WrappedSessionKey []byte            `json:"wrapped_session_key"`
	Fields            map[string][]byte `json:"fields"`
	Permission        Permission        `json:"permission"`
	ExpiresAt         time.Time         `json:"expires_at"`
	Signature         []byte            `json:"signature,omitempty"`
	SignerPublicKey   []byte            `json:"signer_public_key,omitempty"`
}

// Clone returns a deep copy of e.
func (e *Envelope) Clone() *Envelope {
	c := *e
	c.WrappedSessionKey = append([]byte(nil), e.WrappedSessionKey...)
	c.Signature = cloneBytes(e.Signature)
	c.SignerPublicKey = cloneBytes(e.SignerPublicKey)
	if e.Fields != nil {
		c.Fields = make(map[string][]byte, len(e.Fields))
		for k, v := range e.Fields {
			c.Fields[k] = append([]byte(nil), v...)
		}
	}
	return &c
}

// FieldNames lists the names of the encrypted fields.
func (e *Envelope) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for k := range maps.Keys(e.Fields) {
		names = append(names, k)
	}
	return names
}

// Serialize produces the canonical encoding: JSON with a fixed field order,
// sorted field names, standard padded base64 for binary values and the
// expiry in UTC.
func Serialize(e *Envelope) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil envelope", common.ErrShape)
	}
	c := *e
	c.ExpiresAt = e.ExpiresAt.UTC()
	b, err := json.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("serialize envelope: %w", err)
	}
	return b, nil
}

// Deserialize is the inverse of Serialize. Unknown keys are rejected so a
// decoded envelope re-serializes to the same bytes.
func Deserialize(b []byte) (*Envelope, error) {
	var e Envelope
	if err := strictUnmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrShape, err)
	}
	return &e, nil
}

// EncodeToken turns an envelope into the portable DIRECT share token:
// unpadded URL-safe base64 of the canonical serialization.
func EncodeToken(e *Envelope) (string, error) {
	b, err := Serialize(e)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeToken reverses EncodeToken.
func DecodeToken(token string) (*Envelope, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: token is not base64url: %v", common.ErrShape, err)
	}
	return Deserialize(b)
}

func strictUnmarshal(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after envelope")
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
