package models

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingUserID      = errors.New("transaction user ID is required")
	ErrInvalidBookingDate = errors.New("booking date must be an ISO-8601 date (YYYY-MM-DD)")
)

// Transaction is the read model the classification engine operates on.
// The engine never mutates a stored record in place; it works on copies
// produced by Clone and hands modified copies back to the repository.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID    string          `gorm:"type:varchar(64);index" json:"account_id,omitempty"`
	Counterparty string          `gorm:"type:varchar(255)" json:"counterparty"`
	Description  string          `gorm:"type:varchar(500)" json:"description"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency     string          `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	BookingDate  string          `gorm:"type:varchar(10);index" json:"booking_date"`
	Category     string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	Exclude      bool            `gorm:"not null;default:false" json:"exclude"`
	Reference    string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference(t.AccountID, t.BookingDate, t.Amount.String(), t.Description)
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if t.BookingDate != "" && !IsValidBookingDate(t.BookingDate) {
		return ErrInvalidBookingDate
	}

	return nil
}

// Clone returns an independent copy for the action applier to mutate.
func (t Transaction) Clone() Transaction {
	return t
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidBookingDate reports whether s is a zero-padded ISO-8601 calendar
// date. The fixed width is what makes lexical ordering of booking dates
// equivalent to chronological ordering.
func IsValidBookingDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// GenerateTransactionReference derives a stable dedup reference for a
// transaction that arrived without a provider id. Providers replay the same
// booked transactions across syncs, so the reference must be deterministic.
func GenerateTransactionReference(accountID, bookingDate, amount, description string) string {
	h := sha1.New()
	h.Write([]byte(accountID))
	h.Write([]byte{0})
	h.Write([]byte(bookingDate))
	h.Write([]byte{0})
	h.Write([]byte(amount))
	h.Write([]byte{0})
	h.Write([]byte(description))
	return "txn-" + hex.EncodeToString(h.Sum(nil))[:36]
}
