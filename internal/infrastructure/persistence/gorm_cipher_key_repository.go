package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/persistence/models"
	"aes_cipher_service/internal/pkg/logger"
)

type gormCipherKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCipherKeyRepository creates a new GORM-based CipherKeyRepository
// implementation.
func NewGormCipherKeyRepository(db *gorm.DB, logger logger.Logger) (keys.CipherKeyRepository, error) {
	return &gormCipherKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCipherKeyRepository) Create(ctx context.Context, key *keys.CipherKeyMeta, material []byte) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if len(material) != int(key.KeySize)/8 {
		return fmt.Errorf("material length %d does not match declared key size of %d bits", len(material), key.KeySize)
	}

	model := &models.CipherKeyModel{}
	model.FromDomain(key, material)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cipher key: %w", err)
	}

	r.logger.Info("Created key metadata with id ", key.ID)
	return nil
}

func (r *gormCipherKeyRepository) List(ctx context.Context, query *keys.CipherKeyQuery) ([]*keys.CipherKeyMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CipherKeyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CipherKeyModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", query.Algorithm)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cipher key metadata: %w", err)
	}

	domainList := make([]*keys.CipherKeyMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCipherKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.CipherKeyMeta, error) {
	var model models.CipherKeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cipher key with ID %s not found", keyID)
		}
		return nil, fmt.Errorf("failed to fetch cipher key: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCipherKeyRepository) GetMaterialByID(ctx context.Context, keyID string) ([]byte, error) {
	var model models.CipherKeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cipher key with ID %s not found", keyID)
		}
		return nil, fmt.Errorf("failed to fetch cipher key material: %w", err)
	}
	return model.Material, nil
}

func (r *gormCipherKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.CipherKeyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete cipher key: %w", err)
	}

	r.logger.Info("Deleted key metadata with id ", keyID)
	return nil
}
