package repositories

import (
	"fmt"

	"bankrules/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// balanceRepository implements BalanceRepositoryInterface
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new account balance repository
func NewBalanceRepository(db *gorm.DB) BalanceRepositoryInterface {
	return &balanceRepository{
		db: db,
	}
}

// Upsert stores the balance, replacing the existing row for the same user,
// account and balance type
func (r *balanceRepository) Upsert(balance *models.AccountBalance) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "account_id"},
			{Name: "balance_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount",
			"currency",
			"reference_date",
			"updated_at",
		}),
	}).Create(balance).Error
	if err != nil {
		return fmt.Errorf("failed to upsert account balance: %w", err)
	}
	return nil
}

// GetByUserID retrieves all stored balances for a user ordered by account
// and balance type
func (r *balanceRepository) GetByUserID(userID uuid.UUID) ([]models.AccountBalance, error) {
	var balances []models.AccountBalance
	err := r.db.Where("user_id = ?", userID).
		Order("account_id ASC, balance_type ASC").
		Find(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get account balances: %w", err)
	}
	return balances, nil
}
