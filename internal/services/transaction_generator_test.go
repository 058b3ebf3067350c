package services_test

import (
	"testing"
	"time"

	"bankrules/internal/models"
	"bankrules/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator services.TransactionGeneratorInterface
	userID    uuid.UUID
	accountID string
	startDate time.Time
	endDate   time.Time
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = services.NewTransactionGenerator()
	s.userID = uuid.New()
	s.accountID = gofakeit.UUID()
	s.startDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.endDate = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_Count() {
	tests := []struct {
		name  string
		count int
	}{
		{"single transaction", 1},
		{"one salary cycle", 12},
		{"multiple months", 100},
		{"zero transactions", 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			transactions := s.generator.GenerateTransactions(s.userID, s.accountID, s.startDate, s.endDate, tt.count)

			s.Len(transactions, tt.count)
		})
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_FieldsPopulated() {
	transactions := s.generator.GenerateTransactions(s.userID, s.accountID, s.startDate, s.endDate, 50)

	for _, txn := range transactions {
		s.NotEqual(uuid.Nil, txn.ID)
		s.Equal(s.userID, txn.UserID)
		s.Equal(s.accountID, txn.AccountID)
		s.Equal("EUR", txn.Currency)
		s.NotEmpty(txn.Counterparty)
		s.NotEmpty(txn.Description)
		s.NotEmpty(txn.Reference)
		s.False(txn.Amount.IsZero())
		// Generated data stays uncategorized so classification has work to do
		s.Empty(txn.Category)
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_BookingDatesWithinRange() {
	transactions := s.generator.GenerateTransactions(s.userID, s.accountID, s.startDate, s.endDate, 200)

	for _, txn := range transactions {
		s.True(models.IsValidBookingDate(txn.BookingDate))

		day, err := time.Parse("2006-01-02", txn.BookingDate)
		s.Require().NoError(err)
		s.False(day.Before(s.startDate))
		s.False(day.After(s.endDate))
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_MixesDebitsAndSalaryCredits() {
	transactions := s.generator.GenerateTransactions(s.userID, s.accountID, s.startDate, s.endDate, 120)

	debits := 0
	credits := 0
	for _, txn := range transactions {
		if txn.Amount.IsNegative() {
			debits++
			s.True(txn.Amount.GreaterThanOrEqual(decimal.NewFromFloat(-350.00)))
		} else {
			credits++
			s.True(txn.Amount.GreaterThanOrEqual(decimal.NewFromFloat(2200.00)))
			s.Contains(txn.Description, "SALARY")
		}
	}

	s.Equal(110, debits)
	s.Equal(10, credits)
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_ReferencesAreUnique() {
	transactions := s.generator.GenerateTransactions(s.userID, s.accountID, s.startDate, s.endDate, 100)

	seen := make(map[string]bool, len(transactions))
	for _, txn := range transactions {
		s.False(seen[txn.Reference], "duplicate reference %s", txn.Reference)
		seen[txn.Reference] = true
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateBookingDate_SingleDayRange() {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	s.Equal("2025-06-15", s.generator.GenerateBookingDate(day, day))
}

func (s *TransactionGeneratorTestSuite) TestMerchantPool() {
	pool := s.generator.GetMerchantPool()
	s.NotEmpty(pool)

	valid := make(map[string]bool)
	for _, category := range models.SuggestedCategories() {
		valid[category] = true
	}
	for _, merchant := range pool {
		s.NotEmpty(merchant.Name)
		s.True(valid[merchant.Category], "unknown category %s for %s", merchant.Category, merchant.Name)
	}

	picked := s.generator.SelectRandomMerchant()
	s.NotEmpty(picked.Name)
}
