package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"aes_cipher_service/internal/pkg/validators"
)

// CreateSessionRequest carries the parameters for opening a cipher session.
// Key and IV are hex encoded.
type CreateSessionRequest struct {
	Key  string `json:"key" validate:"required,hexadecimal"`
	Mode string `json:"mode" validate:"required"`
	IV   string `json:"iv,omitempty" validate:"omitempty,hexadecimal"`
}

// Validate for validating CreateSessionRequest struct
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// CipherDataRequest carries hex encoded input for an encrypt or decrypt call.
// Empty input is allowed and transforms to empty output.
type CipherDataRequest struct {
	Data string `json:"data" validate:"omitempty,hexadecimal"`
}

// Validate for validating CipherDataRequest struct
func (r *CipherDataRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// GenerateKeyRequest carries the parameters for generating an AES key.
// KeySize is in bits.
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm,omitempty" validate:"omitempty,oneof=AES"`
	KeySize   uint32 `json:"key_size,omitempty" validate:"omitempty,key_size"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("key_size", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	err := validate.Struct(r)
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

// SessionResponse describes a managed cipher session. CurrentIV is hex
// encoded and empty for modes without chain state.
type SessionResponse struct {
	ID              string    `json:"id"`
	Mode            string    `json:"mode"`
	KeySize         int       `json:"key_size"`
	BlockSize       int       `json:"block_size"`
	CurrentIV       string    `json:"current_iv,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// CipherDataResponse returns the hex encoded output of an encrypt or decrypt
// call.
type CipherDataResponse struct {
	Data string `json:"data"`
}

// CipherKeyMetaResponse describes stored key metadata. KeySize is in bits.
type CipherKeyMetaResponse struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an info message
type InfoResponse struct {
	Message string `json:"message"`
}
