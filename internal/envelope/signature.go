package envelope

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// ErrUnsigned is returned by VerifySignature for an envelope without a
// signature.
var ErrUnsigned = errors.New("envelope is not signed")

// Transcript is the byte string the sender signs: the signature context
// followed by the canonical serialization with the signature cleared.
func Transcript(e *Envelope) ([]byte, error) {
	c := e.Clone()
	c.Signature = nil
	b, err := Serialize(c)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(SignatureContext)+len(b))
	out = append(out, SignatureContext...)
	return append(out, b...), nil
}

// VerifySignature checks the sender's ML-DSA-65 signature over the
// envelope. Unsigned envelopes return ErrUnsigned; callers decide whether
// that is acceptable.
func VerifySignature(e *Envelope) error {
	if len(e.Signature) == 0 {
		return ErrUnsigned
	}
	if len(e.SignerPublicKey) != mldsa65.PublicKeySize {
		return fmt.Errorf("%w: signer public key must be %d bytes", common.ErrShape, mldsa65.PublicKeySize)
	}

	var pk mldsa65.PublicKey
	if err := pk.UnmarshalBinary(e.SignerPublicKey); err != nil {
		return fmt.Errorf("%w: signer public key: %v", common.ErrShape, err)
	}

	transcript, err := Transcript(e)
	if err != nil {
		return err
	}
	if !mldsa65.Verify(&pk, transcript, nil, e.Signature) {
		return fmt.Errorf("%w: signature does not verify", common.ErrShape)
	}
	return nil
}
