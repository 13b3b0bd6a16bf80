package models

import (
	"time"

	"aes_cipher_service/internal/domain/keys"
)

// CipherKeyModel is the GORM database model for stored AES keys. The raw
// material lives next to the metadata and is stripped before anything crosses
// into the domain.
type CipherKeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20);not null"`
	KeySize         uint32    `gorm:"type:integer;not null"`
	Material        []byte    `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CipherKeyModel) TableName() string {
	return "cipher_keys"
}

// ToDomain converts the GORM model to a domain entity, leaving the material
// behind.
func (m *CipherKeyModel) ToDomain() *keys.CipherKeyMeta {
	return &keys.CipherKeyMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		KeySize:         m.KeySize,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts a domain entity plus raw material to the GORM model.
func (m *CipherKeyModel) FromDomain(k *keys.CipherKeyMeta, material []byte) {
	m.ID = k.ID
	m.Algorithm = k.Algorithm
	m.KeySize = k.KeySize
	m.Material = material
	m.DateTimeCreated = k.DateTimeCreated
}
