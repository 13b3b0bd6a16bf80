// Package validators provides custom struct-level validation rules shared by
// domain models and request DTOs.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size in bits against the algorithm of
// the enclosing struct. Only AES is supported; an empty algorithm counts as
// AES so that requests may omit it.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "AES", "":
		return keySize == 128 || keySize == 192 || keySize == 256
	default:
		return false
	}
}
