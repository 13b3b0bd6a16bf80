//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/persistence/models"
	"aes_cipher_service/internal/pkg/config"
	pkgTesting "aes_cipher_service/internal/pkg/testing"
)

// Test constants, key sizes in bits
const (
	TestKeySize128 = 128
	TestKeySize192 = 192
	TestKeySize256 = 256
)

// TestContext holds the test database and repository
type TestContext struct {
	DB            *gorm.DB
	CipherKeyRepo keys.CipherKeyRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.CipherKeyModel{})
	require.NoError(t, err, "Failed to migrate schema")

	log := pkgTesting.SetupTestLogger(t)

	cipherKeyRepo, err := NewGormCipherKeyRepository(db, log)
	require.NoError(t, err, "Failed to create cipher key repository")

	return &TestContext{
		DB:            db,
		CipherKeyRepo: cipherKeyRepo,
	}
}

// CreateTestKey creates metadata and matching material for a 256-bit test key
func CreateTestKey(t *testing.T) (*keys.CipherKeyMeta, []byte) {
	t.Helper()
	return CreateTestKeyWithOptions(t, TestKeySize256)
}

// CreateTestKeyWithOptions creates metadata and matching material for a test
// key of the given size in bits
func CreateTestKeyWithOptions(t *testing.T, keySize uint32) (*keys.CipherKeyMeta, []byte) {
	t.Helper()

	material := make([]byte, keySize/8)
	for i := range material {
		material[i] = byte(i + 1)
	}

	meta := &keys.CipherKeyMeta{
		ID:              uuid.NewString(),
		Algorithm:       "AES",
		KeySize:         keySize,
		DateTimeCreated: time.Now(),
	}

	return meta, material
}
