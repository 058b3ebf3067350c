package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCredentialMissingUserID = errors.New("credential user ID is required")

// ProviderCredential stores a user's bank-data provider secrets. Both fields
// hold ciphertext sealed by the credential service; plaintext never reaches
// the repository.
type ProviderCredential struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EncryptedSecretID  []byte    `gorm:"type:bytea;not null" json:"-"`
	EncryptedSecretKey []byte    `gorm:"type:bytea;not null" json:"-"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ProviderCredential
func (p *ProviderCredential) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.UserID == uuid.Nil {
		return ErrCredentialMissingUserID
	}

	return nil
}

// TableName returns the table name for ProviderCredential
func (p *ProviderCredential) TableName() string {
	return "provider_credentials"
}
