//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
)

// MockCipherSessionService is a mock implementation of CipherSessionService
type MockCipherSessionService struct {
	mock.Mock
}

func (m *MockCipherSessionService) Create(key []byte, mode ciphers.Mode, iv []byte) (*ciphers.SessionInfo, error) {
	args := m.Called(key, mode, iv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ciphers.SessionInfo), args.Error(1)
}

func (m *MockCipherSessionService) List() ([]*ciphers.SessionInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ciphers.SessionInfo), args.Error(1)
}

func (m *MockCipherSessionService) GetByID(sessionID string) (*ciphers.SessionInfo, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ciphers.SessionInfo), args.Error(1)
}

func (m *MockCipherSessionService) Encrypt(sessionID string, plaintext []byte) ([]byte, error) {
	args := m.Called(sessionID, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherSessionService) Decrypt(sessionID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(sessionID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherSessionService) DeleteByID(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

// MockCipherKeyGenerationService is a mock implementation of CipherKeyGenerationService
type MockCipherKeyGenerationService struct {
	mock.Mock
}

func (m *MockCipherKeyGenerationService) Generate(ctx context.Context, keySize uint32) (*keys.CipherKeyMeta, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CipherKeyMeta), args.Error(1)
}

// MockCipherKeyMetadataService is a mock implementation of CipherKeyMetadataService
type MockCipherKeyMetadataService struct {
	mock.Mock
}

func (m *MockCipherKeyMetadataService) List(ctx context.Context, query *keys.CipherKeyQuery) ([]*keys.CipherKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CipherKeyMeta), args.Error(1)
}

func (m *MockCipherKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CipherKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CipherKeyMeta), args.Error(1)
}

func (m *MockCipherKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCipherKeyDownloadService is a mock implementation of CipherKeyDownloadService
type MockCipherKeyDownloadService struct {
	mock.Mock
}

func (m *MockCipherKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
