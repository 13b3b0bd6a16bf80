package cryptography

import (
	"crypto/rand"
	"fmt"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/pkg/logger"
)

// Session is a stateful AES cipher: one key schedule, one chaining mode and
// one chain state advancing across calls. It implements ciphers.Session.
// Calls on the same Session must be serialized by the caller; the key
// schedule itself is read-only and shared safely.
type Session struct {
	block  *BlockCipher
	mode   ciphers.Mode
	driver modeDriver
}

// NewSession builds a cipher session from a raw key, chaining mode and IV.
// The key length selects AES-128, AES-192 or AES-256. CBC, CFB and CTR
// require a 16-byte IV seeding the feedback register or counter; ECB takes
// none and ignores one if supplied. Validation happens in order key, mode,
// IV, and a failed construction leaves nothing behind.
func NewSession(key []byte, mode ciphers.Mode, iv []byte) (*Session, error) {
	block, err := NewBlockCipher(key)
	if err != nil {
		return nil, err
	}
	switch mode {
	case ciphers.ModeECB, ciphers.ModeCBC, ciphers.ModeCFB, ciphers.ModeCTR:
	default:
		return nil, ciphers.UnsupportedModeError(string(mode))
	}
	if mode.RequiresIV() {
		if len(iv) == 0 {
			return nil, ciphers.ErrMissingIV
		}
		if len(iv) != ciphers.BlockSize {
			return nil, ciphers.IVSizeError(len(iv))
		}
	}
	driver, err := newModeDriver(block, mode, iv)
	if err != nil {
		return nil, err
	}
	return &Session{block: block, mode: mode, driver: driver}, nil
}

// Encrypt enciphers plaintext under the session's mode and returns ciphertext
// of equal length, advancing the chain state. ECB and CBC require the length
// to be a multiple of BlockSize; CFB and CTR accept any length, but a short
// final block ends the session's ability to take further input.
func (s *Session) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext := make([]byte, len(plaintext))
	if err := s.driver.encrypt(ciphertext, plaintext); err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// Decrypt deciphers ciphertext under the session's mode and returns plaintext
// of equal length, advancing the chain state. Length rules match Encrypt.
func (s *Session) Decrypt(ciphertext []byte) ([]byte, error) {
	plaintext := make([]byte, len(ciphertext))
	if err := s.driver.decrypt(plaintext, ciphertext); err != nil {
		return nil, err
	}
	return plaintext, nil
}

// CurrentIV returns a copy of the chain state reflecting every block
// processed so far, or nil for ECB. A fresh session constructed with this
// value as its IV resumes processing exactly where this one stands.
func (s *Session) CurrentIV() []byte {
	state := s.driver.state()
	if state == nil {
		return nil
	}
	iv := make([]byte, len(state))
	copy(iv, state)
	return iv
}

// BlockSize returns the cipher block size in bytes.
func (s *Session) BlockSize() int { return ciphers.BlockSize }

// KeySize returns the session key length in bytes.
func (s *Session) KeySize() int { return s.block.KeySize() }

// Mode returns the chaining mode fixed at construction.
func (s *Session) Mode() ciphers.Mode { return s.mode }

// aesService provides AES session construction and random key generation on
// top of Session and crypto/rand.
type aesService struct {
	logger logger.Logger
}

// NewAESService creates and returns a new instance of aesService.
func NewAESService(logger logger.Logger) (ciphers.AESService, error) {
	return &aesService{logger: logger}, nil
}

// NewSession builds a cipher session from a raw key, chaining mode and IV.
func (s *aesService) NewSession(key []byte, mode ciphers.Mode, iv []byte) (ciphers.Session, error) {
	session, err := NewSession(key, mode, iv)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher session: %w", err)
	}
	return session, nil
}

// GenerateKey generates a random AES key of the specified size.
// Supported key sizes: 16 bytes (AES-128), 24 bytes (AES-192) and 32 bytes
// (AES-256).
func (s *aesService) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case ciphers.AESKeySize128, ciphers.AESKeySize192, ciphers.AESKeySize256:
	default:
		return nil, ciphers.KeySizeError(keySize)
	}
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	s.logger.Info("Generated AES key of size ", keySize, " bytes")
	return key, nil
}

// GenerateIV returns a random initialization vector of one block length.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, ciphers.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}
