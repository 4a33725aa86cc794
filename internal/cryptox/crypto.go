// Package cryptox seals a vault on the client before it is synced. The
// server only ever sees the resulting ciphertext, nonce, tag and salt.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the master key.
const (
	SaltSize    = 16
	KeySize     = 32
	NonceSize   = 12
	TagSize     = 16
	argonTime   = 1
	argonMemory = 64 * 1024
	argonLanes  = 4
)

// ErrOpen is returned when a sealed vault does not authenticate under the
// given key.
var ErrOpen = errors.New("vault does not open with this key")

var randReader io.Reader = rand.Reader

// Sealed is an encrypted vault as it travels to the server.
type Sealed struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
	KDFSalt    []byte
}

// NewSalt returns a fresh KDF salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonLanes, KeySize)
}

// SealVault encrypts plaintext with AES-256-GCM under key. salt is carried
// along so another device can derive the same key from the password.
func SealVault(key, salt, plaintext []byte) (*Sealed, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, err
	}

	out := aead.Seal(nil, nonce, plaintext, nil)
	split := len(out) - TagSize
	return &Sealed{
		Ciphertext: out[:split],
		IV:         nonce,
		AuthTag:    out[split:],
		KDFSalt:    salt,
	}, nil
}

// OpenVault reverses SealVault.
func OpenVault(key []byte, s *Sealed) ([]byte, error) {
	if len(s.IV) != NonceSize || len(s.AuthTag) != TagSize {
		return nil, ErrOpen
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(s.Ciphertext)+TagSize)
	sealed = append(sealed, s.Ciphertext...)
	sealed = append(sealed, s.AuthTag...)

	plain, err := aead.Open(nil, s.IV, sealed, nil)
	if err != nil {
		return nil, ErrOpen
	}
	return plain, nil
}

// WipeByteArray zeroes b. Use it on passwords and keys once done.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
