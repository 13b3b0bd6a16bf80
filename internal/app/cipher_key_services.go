package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/pkg/logger"
)

// cipherKeyGenerationService implements the CipherKeyGenerationService
// interface for creating and persisting AES keys.
type cipherKeyGenerationService struct {
	cipherKeyRepo keys.CipherKeyRepository
	aesService    ciphers.AESService
	logger        logger.Logger
}

// NewCipherKeyGenerationService creates a new cipherKeyGenerationService instance
func NewCipherKeyGenerationService(
	cipherKeyRepo keys.CipherKeyRepository,
	aesService ciphers.AESService,
	logger logger.Logger,
) (keys.CipherKeyGenerationService, error) {
	return &cipherKeyGenerationService{
		cipherKeyRepo: cipherKeyRepo,
		aesService:    aesService,
		logger:        logger,
	}, nil
}

// Generate creates a random AES key of keySize bits and stores its metadata
// together with the raw material.
// It returns the CipherKeyMeta and any error encountered during the
// generation process.
func (s *cipherKeyGenerationService) Generate(ctx context.Context, keySize uint32) (*keys.CipherKeyMeta, error) {
	var keySizeInBytes int
	switch keySize {
	case 128:
		keySizeInBytes = ciphers.AESKeySize128
	case 192:
		keySizeInBytes = ciphers.AESKeySize192
	case 256:
		keySizeInBytes = ciphers.AESKeySize256
	default:
		return nil, fmt.Errorf("key size %v not supported for AES", keySize)
	}

	material, err := s.aesService.GenerateKey(keySizeInBytes)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	cipherKeyMeta := &keys.CipherKeyMeta{
		ID:              uuid.New().String(),
		Algorithm:       ciphers.AlgorithmAES,
		KeySize:         keySize,
		DateTimeCreated: time.Now(),
	}

	if err := s.cipherKeyRepo.Create(ctx, cipherKeyMeta, material); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cipherKeyMeta, nil
}

// cipherKeyMetadataService implements the CipherKeyMetadataService interface
// to manage stored key metadata.
type cipherKeyMetadataService struct {
	cipherKeyRepo keys.CipherKeyRepository
	logger        logger.Logger
}

// NewCipherKeyMetadataService creates a new cipherKeyMetadataService instance
func NewCipherKeyMetadataService(cipherKeyRepo keys.CipherKeyRepository, logger logger.Logger) (keys.CipherKeyMetadataService, error) {
	return &cipherKeyMetadataService{
		cipherKeyRepo: cipherKeyRepo,
		logger:        logger,
	}, nil
}

// List retrieves all key metadata based on a query.
func (s *cipherKeyMetadataService) List(ctx context.Context, query *keys.CipherKeyQuery) ([]*keys.CipherKeyMeta, error) {
	cipherKeyMetas, err := s.cipherKeyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cipherKeyMetas, nil
}

// GetByID retrieves the metadata of a key by its ID.
func (s *cipherKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CipherKeyMeta, error) {
	cipherKeyMeta, err := s.cipherKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return cipherKeyMeta, nil
}

// DeleteByID deletes a key's metadata and material by its ID.
func (s *cipherKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if _, err := s.GetByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to get key metadata: %w", err)
	}

	if err := s.cipherKeyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}

// cipherKeyDownloadService implements the CipherKeyDownloadService interface
// to hand out raw key material.
type cipherKeyDownloadService struct {
	cipherKeyRepo keys.CipherKeyRepository
	logger        logger.Logger
}

// NewCipherKeyDownloadService creates a new cipherKeyDownloadService instance
func NewCipherKeyDownloadService(cipherKeyRepo keys.CipherKeyRepository, logger logger.Logger) (keys.CipherKeyDownloadService, error) {
	return &cipherKeyDownloadService{
		cipherKeyRepo: cipherKeyRepo,
		logger:        logger,
	}, nil
}

// DownloadByID retrieves the raw key material of a key by its ID.
func (s *cipherKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	material, err := s.cipherKeyRepo.GetMaterialByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return material, nil
}
