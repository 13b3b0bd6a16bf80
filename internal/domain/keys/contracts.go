package keys

import (
	"context"
)

// CipherKeyGenerationService defines methods for generating and storing AES
// keys.
type CipherKeyGenerationService interface {
	// Generate creates a random AES key of keySize bits, persists its
	// metadata and material, and returns the CipherKeyMeta along with any
	// error encountered during the generation process.
	Generate(ctx context.Context, keySize uint32) (*CipherKeyMeta, error)
}

// CipherKeyMetadataService defines methods for managing stored key metadata
// and deleting keys.
type CipherKeyMetadataService interface {
	// List retrieves all key metadata considering a query filter when set.
	// It returns a slice of CipherKeyMeta and any error encountered during
	// the retrieval process.
	List(ctx context.Context, query *CipherKeyQuery) ([]*CipherKeyMeta, error)

	// GetByID retrieves the metadata of a key by its unique ID.
	// It returns the CipherKeyMeta and any error encountered during the
	// retrieval process.
	GetByID(ctx context.Context, keyID string) (*CipherKeyMeta, error)

	// DeleteByID deletes a key and its associated metadata by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, keyID string) error
}

// CipherKeyDownloadService defines methods for downloading raw key material.
type CipherKeyDownloadService interface {
	// DownloadByID retrieves the raw key material by its ID.
	// It returns the key bytes and any error encountered during the download
	// process.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)
}

// CipherKeyRepository defines the interface for key storage. Metadata and
// material are written together; material is only ever read back whole.
type CipherKeyRepository interface {
	Create(ctx context.Context, key *CipherKeyMeta, material []byte) error
	List(ctx context.Context, query *CipherKeyQuery) ([]*CipherKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*CipherKeyMeta, error)
	GetMaterialByID(ctx context.Context, keyID string) ([]byte, error)
	DeleteByID(ctx context.Context, keyID string) error
}
