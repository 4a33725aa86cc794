// Package envelope builds and checks the hybrid-encrypted container that
// moves one password entry between two parties.
//
// Everything here is safe to run on the server: the package can seal data
// to a public key and check the structure of an envelope, but no function
// accepts a private key or opens a ciphertext. Opening belongs to clients.
//
// Layout of the sealed pieces:
//
//	field blob          = nonce(12) || AES-256-GCM ciphertext || tag(16)
//	wrapped session key = ML-KEM-768 ciphertext(1088) || field blob of the session key
//
// The session key wrap derives its AES key with HKDF-SHA-512 from the KEM
// shared secret, salted with SHA-256 of the KEM ciphertext.
package envelope
