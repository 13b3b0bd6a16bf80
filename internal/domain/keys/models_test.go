//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validKeyMeta() *CipherKeyMeta {
	return &CipherKeyMeta{
		ID:              uuid.NewString(),
		Algorithm:       "AES",
		KeySize:         256,
		DateTimeCreated: time.Now(),
	}
}

func TestCipherKeyMetaValidation(t *testing.T) {
	t.Run("valid metadata", func(t *testing.T) {
		assert.NoError(t, validKeyMeta().Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		meta := validKeyMeta()
		meta.ID = ""
		err := meta.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Field: ID, Tag: required")
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		meta := validKeyMeta()
		meta.Algorithm = "RSA"
		err := meta.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Field: Algorithm")
	})

	t.Run("key size in bytes instead of bits", func(t *testing.T) {
		meta := validKeyMeta()
		meta.KeySize = 32
		err := meta.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Field: KeySize, Tag: key_size")
	})

	t.Run("all supported key sizes", func(t *testing.T) {
		for _, size := range []uint32{128, 192, 256} {
			meta := validKeyMeta()
			meta.KeySize = size
			assert.NoError(t, meta.Validate())
		}
	})
}

func TestCipherKeyQueryValidation(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewCipherKeyQuery().Validate())
	})

	t.Run("zero value is valid", func(t *testing.T) {
		query := &CipherKeyQuery{}
		assert.NoError(t, query.Validate())
	})

	t.Run("unsupported sort field", func(t *testing.T) {
		query := NewCipherKeyQuery()
		query.SortBy = "user_id"
		assert.Error(t, query.Validate())
	})

	t.Run("unsupported sort order", func(t *testing.T) {
		query := NewCipherKeyQuery()
		query.SortOrder = "sideways"
		assert.Error(t, query.Validate())
	})

	t.Run("negative pagination", func(t *testing.T) {
		query := NewCipherKeyQuery()
		query.Limit = -1
		assert.Error(t, query.Validate())
	})
}
