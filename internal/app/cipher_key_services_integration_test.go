//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/persistence/models"
	"aes_cipher_service/internal/pkg/config"
)

// TestCipherKeyGenerationService_Generate uses table-driven tests for the
// supported and rejected key sizes
func TestCipherKeyGenerationService_Generate(t *testing.T) {
	tests := []struct {
		name        string
		keySize     uint32
		wantErr     bool
		errContains string
	}{
		{
			name:    "AES 128-bit key",
			keySize: 128,
			wantErr: false,
		},
		{
			name:    "AES 192-bit key",
			keySize: 192,
			wantErr: false,
		},
		{
			name:    "AES 256-bit key",
			keySize: 256,
			wantErr: false,
		},
		{
			name:        "AES invalid 512-bit",
			keySize:     512,
			wantErr:     true,
			errContains: "not supported for AES",
		},
		{
			name:        "AES invalid 64-bit",
			keySize:     64,
			wantErr:     true,
			errContains: "not supported for AES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType)
			ctx := context.Background()

			cipherKeyMeta, err := services.CipherKeyGenerationService.Generate(ctx, tt.keySize)

			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, cipherKeyMeta)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				require.NotEmpty(t, cipherKeyMeta.ID)
				require.Equal(t, ciphers.AlgorithmAES, cipherKeyMeta.Algorithm)
				require.Equal(t, tt.keySize, cipherKeyMeta.KeySize)
				require.False(t, cipherKeyMeta.DateTimeCreated.IsZero())

				// The stored material must match the advertised size
				material, err := services.CipherKeyDownloadService.DownloadByID(ctx, cipherKeyMeta.ID)
				require.NoError(t, err)
				require.Len(t, material, int(tt.keySize)/8)
			}
		})
	}
}

// TestCipherKeyMetadataService_Operations uses subtests for metadata operations
func TestCipherKeyMetadataService_Operations(t *testing.T) {
	t.Run("get by ID returns correct metadata", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		cipherKeyMeta, err := services.CipherKeyGenerationService.Generate(ctx, 256)
		require.NoError(t, err)

		fetchedCipherKeyMeta, err := services.CipherKeyMetadataService.GetByID(ctx, cipherKeyMeta.ID)
		require.NoError(t, err)
		require.NotNil(t, fetchedCipherKeyMeta)
		require.Equal(t, cipherKeyMeta.ID, fetchedCipherKeyMeta.ID)
		require.Equal(t, cipherKeyMeta.Algorithm, fetchedCipherKeyMeta.Algorithm)
		require.Equal(t, cipherKeyMeta.KeySize, fetchedCipherKeyMeta.KeySize)
	})

	t.Run("delete by ID removes key from database", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		cipherKeyMeta, err := services.CipherKeyGenerationService.Generate(ctx, 128)
		require.NoError(t, err)

		err = services.CipherKeyMetadataService.DeleteByID(ctx, cipherKeyMeta.ID)
		require.NoError(t, err)

		var deletedKey models.CipherKeyModel
		err = services.DBContext.DB.First(&deletedKey, "id = ?", cipherKeyMeta.ID).Error
		require.Error(t, err)
		require.Equal(t, gorm.ErrRecordNotFound, err)
	})

	t.Run("list returns all generated keys", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		_, err := services.CipherKeyGenerationService.Generate(ctx, 128)
		require.NoError(t, err)

		_, err = services.CipherKeyGenerationService.Generate(ctx, 256)
		require.NoError(t, err)

		query := &keys.CipherKeyQuery{}
		cipherKeys, err := services.CipherKeyMetadataService.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, cipherKeys, 2)
	})

	t.Run("download returns usable key material", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		cipherKeyMeta, err := services.CipherKeyGenerationService.Generate(ctx, 256)
		require.NoError(t, err)

		material, err := services.CipherKeyDownloadService.DownloadByID(ctx, cipherKeyMeta.ID)
		require.NoError(t, err)
		require.Len(t, material, 32)

		// Material must open a working cipher session
		session, err := services.AESService.NewSession(material, ciphers.ModeECB, nil)
		require.NoError(t, err)
		require.Equal(t, 32, session.KeySize())
	})

	t.Run("get non-existent key returns error", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		_, err := services.CipherKeyMetadataService.GetByID(ctx, uuid.NewString())
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})

	t.Run("delete non-existent key returns error", func(t *testing.T) {
		services := SetupTestServices(t, config.SqliteDbType)
		ctx := context.Background()

		err := services.CipherKeyMetadataService.DeleteByID(ctx, uuid.NewString())
		require.Error(t, err)
	})
}
