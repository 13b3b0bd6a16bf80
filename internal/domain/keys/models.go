package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"aes_cipher_service/internal/pkg/validators"
)

// CipherKeyMeta represents the metadata of a stored AES key. KeySize is in
// bits; the raw material itself never travels with the metadata.
type CipherKeyMeta struct {
	ID              string    `validate:"required"`
	Algorithm       string    `validate:"required,oneof=AES"`
	KeySize         uint32    `validate:"required,key_size"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating CipherKeyMeta struct
func (k *CipherKeyMeta) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("key_size", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// CipherKeyQuery holds filter, sort and pagination options for listing key
// metadata.
type CipherKeyQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=AES"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit  int `validate:"omitempty,gte=0"`
	Offset int `validate:"omitempty,gte=0"`

	SortBy    string `validate:"omitempty,oneof=id algorithm key_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCipherKeyQuery creates a query with defaults: newest keys first, no
// pagination.
func NewCipherKeyQuery() *CipherKeyQuery {
	return &CipherKeyQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating CipherKeyQuery struct
func (q *CipherKeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
