package database

import (
	"fmt"
	"testing"

	"bankrules/internal/config"
	"bankrules/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, counterparty, description, amount, bookingDate string) *models.Transaction {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	txn := &models.Transaction{
		UserID:       userID,
		Counterparty: counterparty,
		Description:  description,
		Amount:       amt,
		Currency:     "EUR",
		BookingDate:  bookingDate,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestRule(t *testing.T, db *DB, userID uuid.UUID, name string, priority int, conditions models.RuleConditions, actions models.RuleActions) *models.TransactionRule {
	t.Helper()

	rule := &models.TransactionRule{
		UserID:     userID,
		Name:       name,
		Enabled:    true,
		Priority:   priority,
		Conditions: conditions,
		Actions:    actions,
	}

	if err := db.Create(rule).Error; err != nil {
		t.Fatalf("failed to create test rule: %v", err)
	}

	return rule
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"transaction_rules",
		"provider_credentials",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
