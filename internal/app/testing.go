//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/cryptography"
	"aes_cipher_service/internal/infrastructure/persistence"
	pkgTesting "aes_cipher_service/internal/pkg/testing"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Cipher key services
	CipherKeyGenerationService keys.CipherKeyGenerationService
	CipherKeyMetadataService   keys.CipherKeyMetadataService
	CipherKeyDownloadService   keys.CipherKeyDownloadService

	// Cipher session service
	CipherSessionService ciphers.CipherSessionService

	// Infrastructure
	AESService ciphers.AESService
	DBContext  *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup the AES cipher backend
	aesService, err := cryptography.NewAESService(logger)
	require.NoError(t, err, "Failed to create AES service")

	// Initialize cipher key services
	cipherKeyGenerationService, err := NewCipherKeyGenerationService(
		dbContext.CipherKeyRepo,
		aesService,
		logger,
	)
	require.NoError(t, err, "Failed to create CipherKeyGenerationService")

	cipherKeyMetadataService, err := NewCipherKeyMetadataService(
		dbContext.CipherKeyRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create CipherKeyMetadataService")

	cipherKeyDownloadService, err := NewCipherKeyDownloadService(
		dbContext.CipherKeyRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create CipherKeyDownloadService")

	// Initialize the session registry
	cipherSessionService, err := NewCipherSessionService(aesService, logger)
	require.NoError(t, err, "Failed to create CipherSessionService")

	return &TestServices{
		CipherKeyGenerationService: cipherKeyGenerationService,
		CipherKeyMetadataService:   cipherKeyMetadataService,
		CipherKeyDownloadService:   cipherKeyDownloadService,
		CipherSessionService:       cipherSessionService,
		AESService:                 aesService,
		DBContext:                  dbContext,
	}
}
