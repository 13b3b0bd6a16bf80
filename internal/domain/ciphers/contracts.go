package ciphers

// Session is a stateful AES cipher bound to one key schedule, one chaining
// mode and one evolving chain state. Encrypt and Decrypt may be called any
// number of times; the chain state advances as if all input had been
// processed in a single call. Calls on the same Session must be serialized by
// the caller, while distinct Sessions are fully independent.
type Session interface {
	// Encrypt enciphers plaintext and returns ciphertext of equal length,
	// advancing the chain state, along with any error encountered.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt deciphers ciphertext and returns plaintext of equal length,
	// advancing the chain state, along with any error encountered.
	Decrypt(ciphertext []byte) ([]byte, error)

	// CurrentIV returns a copy of the current chain state, or nil when the
	// mode keeps none. Feeding this value as the IV of a fresh session with
	// the same key and mode resumes processing at the current position.
	CurrentIV() []byte

	// BlockSize returns the cipher block size in bytes.
	BlockSize() int

	// KeySize returns the key length in bytes (16, 24 or 32).
	KeySize() int

	// Mode returns the chaining mode fixed at construction.
	Mode() Mode
}

// AESService defines methods for constructing AES cipher sessions and for
// generating random key material.
type AESService interface {
	// NewSession builds a cipher session from a raw key, chaining mode and IV.
	// The key length selects AES-128, AES-192 or AES-256. CBC, CFB and CTR
	// require a 16-byte IV; ECB takes none and ignores one if supplied.
	// It returns the session and any error encountered.
	NewSession(key []byte, mode Mode, iv []byte) (Session, error)

	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 bytes (AES-128), 24 bytes (AES-192) and
	// 32 bytes (AES-256). It returns the key and any error encountered.
	GenerateKey(keySize int) ([]byte, error)
}

// CipherSessionService defines methods for managing server side cipher
// sessions addressed by ID, so that callers can encrypt or decrypt in
// increments without holding the session themselves.
type CipherSessionService interface {
	// Create constructs a new session from a raw key, chaining mode and IV
	// and registers it under a generated ID. It returns the session info and
	// any error encountered.
	Create(key []byte, mode Mode, iv []byte) (*SessionInfo, error)

	// List returns info about all registered sessions and any error
	// encountered.
	List() ([]*SessionInfo, error)

	// GetByID returns info about the session with the given ID and any error
	// encountered.
	GetByID(sessionID string) (*SessionInfo, error)

	// Encrypt enciphers plaintext under the session with the given ID,
	// advancing its chain state. It returns the ciphertext and any error
	// encountered.
	Encrypt(sessionID string, plaintext []byte) ([]byte, error)

	// Decrypt deciphers ciphertext under the session with the given ID,
	// advancing its chain state. It returns the plaintext and any error
	// encountered.
	Decrypt(sessionID string, ciphertext []byte) ([]byte, error)

	// DeleteByID removes the session with the given ID and returns any error
	// encountered.
	DeleteByID(sessionID string) error
}
