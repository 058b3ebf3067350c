package repositories

import (
	"errors"
	"fmt"

	"bankrules/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCredentialNotFound = errors.New("provider credential not found")
)

// credentialRepository implements CredentialRepositoryInterface
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new provider credential repository
func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &credentialRepository{
		db: db,
	}
}

// Upsert stores provider credentials for a user, replacing any existing ones
func (r *credentialRepository) Upsert(credential *models.ProviderCredential) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"encrypted_secret_id",
			"encrypted_secret_key",
			"updated_at",
		}),
	}).Create(credential).Error
	if err != nil {
		return fmt.Errorf("failed to upsert provider credential: %w", err)
	}
	return nil
}

// GetByUserID retrieves the stored credentials for a user
func (r *credentialRepository) GetByUserID(userID uuid.UUID) (*models.ProviderCredential, error) {
	var credential models.ProviderCredential
	if err := r.db.Where("user_id = ?", userID).First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get provider credential: %w", err)
	}
	return &credential, nil
}

// DeleteByUserID removes a user's stored credentials
func (r *credentialRepository) DeleteByUserID(userID uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.ProviderCredential{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete provider credential: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCredentialNotFound
	}
	return nil
}
