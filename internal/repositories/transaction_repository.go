package repositories

import (
	"errors"
	"fmt"

	"bankrules/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateReference  = errors.New("transaction reference already exists")
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves all transactions for a user ordered by booking date
func (r *transactionRepository) GetByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("booking_date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByIDs retrieves the user's transactions matching the given IDs
// IDs belonging to other users are silently skipped
func (r *transactionRepository) GetByIDs(userID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error) {
	if len(ids) == 0 {
		return []models.Transaction{}, nil
	}

	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND id IN ?", userID, ids).
		Order("booking_date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by ids: %w", err)
	}
	return transactions, nil
}

// GetByReference retrieves a user's transaction by its stable reference
func (r *transactionRepository) GetByReference(userID uuid.UUID, reference string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("user_id = ? AND reference = ?", userID, reference).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by reference: %w", err)
	}
	return &transaction, nil
}

// GetExistingReferences returns which of the given references already exist for the user
func (r *transactionRepository) GetExistingReferences(userID uuid.UUID, references []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(references))
	if len(references) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND reference IN ?", userID, references).
		Pluck("reference", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing references: %w", err)
	}

	for _, ref := range found {
		existing[ref] = true
	}
	return existing, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			// A reference can slip past the dedup check when two syncs race
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
				return ErrDuplicateReference
			}
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// Update persists modified transaction fields
// Hooks are skipped so the ID-only skeleton model does not trip validation.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Transaction{ID: transaction.ID}).
		Updates(map[string]interface{}{
			"counterparty": transaction.Counterparty,
			"description":  transaction.Description,
			"category":     transaction.Category,
			"exclude":      transaction.Exclude,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// UpdateBatch persists modified fields for multiple transactions atomically
func (r *transactionRepository) UpdateBatch(transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, transaction := range transactions {
			result := tx.Session(&gorm.Session{SkipHooks: true}).
				Model(&models.Transaction{ID: transaction.ID}).
				Updates(map[string]interface{}{
					"counterparty": transaction.Counterparty,
					"description":  transaction.Description,
					"category":     transaction.Category,
					"exclude":      transaction.Exclude,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update transaction %s: %w", transaction.ID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("transaction %s: %w", transaction.ID, ErrTransactionNotFound)
			}
		}
		return nil
	})
}

// DeleteByUserID deletes all transactions for a user and returns the count
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
