package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"golang.org/x/crypto/hkdf"

	"github.com/dmitrijs2005/vaultshare/internal/common"
)

// randReader is replaced in tests that need deterministic nonces.
var randReader io.Reader = rand.Reader

// NewSessionKey returns a fresh random 256-bit symmetric key.
func NewSessionKey() ([]byte, error) {
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(randReader, key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	return key, nil
}

// WrapFields seals every plaintext field under sessionKey. The field name is
// bound as additional data, so a blob moved to another name fails to open.
func WrapFields(sessionKey []byte, fields map[string][]byte) (map[string][]byte, error) {
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: session key must be %d bytes, got %d", common.ErrValidation, SessionKeySize, len(sessionKey))
	}
	out := make(map[string][]byte, len(fields))
	for name, plain := range fields {
		sealed, err := seal(sessionKey, plain, []byte(name))
		if err != nil {
			return nil, fmt.Errorf("wrap field %q: %w", name, err)
		}
		out[name] = sealed
	}
	return out, nil
}

// WrapSessionKey encrypts sessionKey to the recipient's ML-KEM-768 public
// key. Only the holder of the matching private key can recover it.
func WrapSessionKey(sessionKey, recipientPublicKey []byte) ([]byte, error) {
	if len(sessionKey) != SessionKeySize {
		return nil, fmt.Errorf("%w: session key must be %d bytes, got %d", common.ErrValidation, SessionKeySize, len(sessionKey))
	}
	if len(recipientPublicKey) != KEMPublicKeySize {
		return nil, fmt.Errorf("%w: recipient public key must be %d bytes, got %d", common.ErrValidation, KEMPublicKeySize, len(recipientPublicKey))
	}

	scheme := mlkem768.Scheme()
	pk, err := scheme.UnmarshalBinaryPublicKey(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: recipient public key: %v", common.ErrValidation, err)
	}

	ctKem, sharedSecret, err := scheme.Encapsulate(pk)
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}

	key, err := DeriveWrapKey(sharedSecret, ctKem)
	if err != nil {
		return nil, err
	}

	sealed, err := seal(key, sessionKey, ctKem)
	if err != nil {
		return nil, fmt.Errorf("wrap session key: %w", err)
	}

	out := make([]byte, 0, len(ctKem)+len(sealed))
	out = append(out, ctKem...)
	return append(out, sealed...), nil
}

// DeriveWrapKey computes the AES key protecting a wrapped session key from
// the KEM shared secret. Clients use the same derivation after decapsulating.
func DeriveWrapKey(sharedSecret, ctKem []byte) ([]byte, error) {
	salt := sha256.Sum256(ctKem)
	r := hkdf.New(sha512.New, sharedSecret, salt[:], []byte(HKDFContext))
	key := make([]byte, SessionKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive wrap key: %w", err)
	}
	return key, nil
}

// seal returns nonce || ciphertext || tag.
func seal(key, plaintext, aad []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(randReader, out); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	return gcm.Seal(out, out[:NonceSize], plaintext, aad), nil
}
