package repositories

import (
	"time"

	"bankrules/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByIDs(userID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error)
	GetByReference(userID uuid.UUID, reference string) (*models.Transaction, error)
	GetExistingReferences(userID uuid.UUID, references []string) (map[string]bool, error)
	CreateBatch(transactions []models.Transaction) error
	Update(transaction *models.Transaction) error
	UpdateBatch(transactions []*models.Transaction) error
	DeleteByUserID(userID uuid.UUID) (int64, error)
}

// RuleRepositoryInterface defines the contract for transaction rule repository operations
type RuleRepositoryInterface interface {
	Create(rule *models.TransactionRule) error
	GetByID(id uuid.UUID) (*models.TransactionRule, error)
	GetByUserID(userID uuid.UUID) ([]*models.TransactionRule, error)
	GetEnabledByUserID(userID uuid.UUID) ([]*models.TransactionRule, error)
	Update(rule *models.TransactionRule) error
	Delete(id uuid.UUID) error
	IncrementMatchStats(id uuid.UUID, matchedCount int64, matchedAt time.Time) error
}

// CredentialRepositoryInterface defines the contract for provider credential repository operations
type CredentialRepositoryInterface interface {
	Upsert(credential *models.ProviderCredential) error
	GetByUserID(userID uuid.UUID) (*models.ProviderCredential, error)
	DeleteByUserID(userID uuid.UUID) error
}

// BalanceRepositoryInterface defines the contract for account balance repository operations
type BalanceRepositoryInterface interface {
	Upsert(balance *models.AccountBalance) error
	GetByUserID(userID uuid.UUID) ([]models.AccountBalance, error)
}
