//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/persistence/models"
	"aes_cipher_service/internal/pkg/config"
)

func TestCipherKeySqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, material := CreateTestKey(t)
	err := ctx.CipherKeyRepo.Create(context.Background(), key, material)
	require.NoError(t, err)

	var createdKey models.CipherKeyModel
	err = ctx.DB.First(&createdKey, "id = ?", key.ID).Error
	require.NoError(t, err)
	assert.Equal(t, key.ID, createdKey.ID)
	assert.Equal(t, key.KeySize, createdKey.KeySize)
	assert.Equal(t, material, createdKey.Material)
}

func TestCipherKeySqliteRepository_Create_MaterialSizeMismatch(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, _ := CreateTestKeyWithOptions(t, TestKeySize128)
	err := ctx.CipherKeyRepo.Create(context.Background(), key, make([]byte, 32))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestCipherKeySqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, material := CreateTestKeyWithOptions(t, TestKeySize192)
	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key, material))

	fetchedKey, err := ctx.CipherKeyRepo.GetByID(context.Background(), key.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetchedKey)
	assert.Equal(t, key.ID, fetchedKey.ID)
	assert.Equal(t, key.KeySize, fetchedKey.KeySize)
}

func TestCipherKeySqliteRepository_GetMaterialByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, material := CreateTestKey(t)
	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key, material))

	fetchedMaterial, err := ctx.CipherKeyRepo.GetMaterialByID(context.Background(), key.ID)
	require.NoError(t, err)
	assert.Equal(t, material, fetchedMaterial)
}

func TestCipherKeySqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key1, material1 := CreateTestKeyWithOptions(t, TestKeySize128)
	key2, material2 := CreateTestKeyWithOptions(t, TestKeySize256)

	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key1, material1))
	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key2, material2))

	query := &keys.CipherKeyQuery{}
	cipherKeys, err := ctx.CipherKeyRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, cipherKeys, 2)
}

func TestCipherKeySqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, material := CreateTestKey(t)
	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key, material))
	require.NoError(t, ctx.CipherKeyRepo.DeleteByID(context.Background(), key.ID))

	var deletedKey models.CipherKeyModel
	err := ctx.DB.First(&deletedKey, "id = ?", key.ID).Error
	assert.Error(t, err)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestCipherKeyRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key, err := ctx.CipherKeyRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, key)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCipherKeyRepository_GetMaterialByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	material, err := ctx.CipherKeyRepo.GetMaterialByID(context.Background(), uuid.NewString())
	assert.Nil(t, material)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCipherKeyRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	invalidKey := &keys.CipherKeyMeta{} // Missing required fields

	err := ctx.CipherKeyRepo.Create(context.Background(), invalidKey, []byte{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestCipherKeySqliteRepository_List_WithFiltersAndSorting(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	key1, material1 := CreateTestKeyWithOptions(t, TestKeySize128)
	key1.DateTimeCreated = time.Now().Add(-2 * time.Hour)

	key2, material2 := CreateTestKeyWithOptions(t, TestKeySize256)
	key2.DateTimeCreated = time.Now().Add(-1 * time.Hour)

	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key1, material1))
	require.NoError(t, ctx.CipherKeyRepo.Create(context.Background(), key2, material2))

	// Filtering by creation time
	query := &keys.CipherKeyQuery{DateTimeCreated: time.Now().Add(-90 * time.Minute)}
	recentKeys, err := ctx.CipherKeyRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, recentKeys, 1)
	assert.Equal(t, key2.ID, recentKeys[0].ID)

	// Sorting newest first
	query = &keys.CipherKeyQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
	sortedKeys, err := ctx.CipherKeyRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, sortedKeys, 2)
	assert.True(t, sortedKeys[0].DateTimeCreated.After(sortedKeys[1].DateTimeCreated))

	// Pagination
	query = &keys.CipherKeyQuery{Limit: 1, Offset: 1}
	pagedKeys, err := ctx.CipherKeyRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, pagedKeys, 1)

	// Invalid query rejected before touching the database
	query = &keys.CipherKeyQuery{SortBy: "material"}
	_, err = ctx.CipherKeyRepo.List(context.Background(), query)
	assert.Error(t, err)
}
