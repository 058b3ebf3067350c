package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBalanceMissingUserID    = errors.New("balance user ID is required")
	ErrBalanceMissingAccountID = errors.New("balance account ID is required")
	ErrInvalidReferenceDate    = errors.New("reference date must be an ISO-8601 date (YYYY-MM-DD)")
)

// BalanceTypeExpected is the provider's fallback balance type when a
// balance record carries none.
const BalanceTypeExpected = "expected"

// AccountBalance is the latest reported balance of one type for one
// account. Each sync upserts the row keyed by user, account and balance
// type, so there is at most one row per key.
type AccountBalance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_balances_user_account_type" json:"user_id"`
	AccountID     string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_balances_user_account_type" json:"account_id"`
	BalanceType   string          `gorm:"type:varchar(32);not null;uniqueIndex:idx_balances_user_account_type" json:"balance_type"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string          `gorm:"type:varchar(3)" json:"currency"`
	ReferenceDate string          `gorm:"type:varchar(10)" json:"reference_date"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for AccountBalance
func (b *AccountBalance) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.BalanceType == "" {
		b.BalanceType = BalanceTypeExpected
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// Validate validates the balance fields
func (b *AccountBalance) Validate() error {
	if b.UserID == uuid.Nil {
		return ErrBalanceMissingUserID
	}

	if b.AccountID == "" {
		return ErrBalanceMissingAccountID
	}

	if b.ReferenceDate != "" && !IsValidBookingDate(b.ReferenceDate) {
		return ErrInvalidReferenceDate
	}

	return nil
}

// TableName returns the table name for AccountBalance
func (b *AccountBalance) TableName() string {
	return "account_balances"
}
