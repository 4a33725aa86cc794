package envelope

import "github.com/cloudflare/circl/kem/mlkem/mlkem768"

const (
	// SchemaVersion is the only envelope version this server accepts.
	SchemaVersion = 1

	// HKDFContext separates session-key wrapping from any other use of the
	// recipient's KEM key.
	HKDFContext = "vaultshare:share-key:v1"

	// SignatureContext prefixes the transcript covered by the optional
	// sender signature.
	SignatureContext = "vaultshare:envelope:v1"

	SessionKeySize = 32
	NonceSize      = 12
	TagSize        = 16

	// MinSealedSize is the smallest possible field blob (empty plaintext).
	MinSealedSize = NonceSize + TagSize

	KEMCiphertextSize = mlkem768.CiphertextSize
	KEMPublicKeySize  = mlkem768.PublicKeySize

	// FieldPassword must be present in every envelope.
	FieldPassword = "password"
)

// Well-known field names. Envelopes may carry others.
const (
	FieldTitle    = "title"
	FieldUsername = "username"
	FieldURL      = "url"
	FieldNotes    = "notes"
)
