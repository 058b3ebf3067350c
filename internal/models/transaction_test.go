package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() Transaction {
	return Transaction{
		UserID:       uuid.New(),
		AccountID:    "acc-001",
		Counterparty: gofakeit.Company(),
		Description:  gofakeit.Sentence(4),
		Amount:       decimal.NewFromFloat(-15.99),
		Currency:     "EUR",
		BookingDate:  "2025-03-15",
	}
}

func (s *TransactionTestSuite) TestBeforeCreate_GeneratesIDAndReference() {
	txn := s.validTransaction()

	s.NoError(txn.BeforeCreate(nil))
	s.NotEqual(uuid.Nil, txn.ID)
	s.NotEmpty(txn.Reference)
	s.False(txn.CreatedAt.IsZero())
	s.False(txn.UpdatedAt.IsZero())
}

func (s *TransactionTestSuite) TestBeforeCreate_KeepsExplicitReference() {
	txn := s.validTransaction()
	txn.Reference = "prov-txn-123"

	s.NoError(txn.BeforeCreate(nil))
	s.Equal("prov-txn-123", txn.Reference)
}

func (s *TransactionTestSuite) TestValidate_RequiresUserID() {
	txn := s.validTransaction()
	txn.UserID = uuid.Nil

	s.ErrorIs(txn.Validate(), ErrMissingUserID)
}

func (s *TransactionTestSuite) TestValidate_RejectsMalformedBookingDate() {
	testCases := []struct {
		name  string
		date  string
		valid bool
	}{
		{"valid date", "2025-03-15", true},
		{"empty date allowed", "", true},
		{"unpadded month", "2025-3-15", false},
		{"impossible day", "2025-02-30", false},
		{"wrong order", "15-03-2025", false},
		{"trailing garbage", "2025-03-15x", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			txn := s.validTransaction()
			txn.BookingDate = tc.date
			if tc.valid {
				s.NoError(txn.Validate())
			} else {
				s.ErrorIs(txn.Validate(), ErrInvalidBookingDate)
			}
		})
	}
}

func (s *TransactionTestSuite) TestClone_IndependentCopy() {
	original := s.validTransaction()
	original.Category = "Groceries"

	working := original.Clone()
	working.Category = "Subscriptions"
	working.Exclude = true

	s.Equal("Groceries", original.Category)
	s.False(original.Exclude)
	s.Equal("Subscriptions", working.Category)
}

func (s *TransactionTestSuite) TestGenerateTransactionReference_Deterministic() {
	first := GenerateTransactionReference("acc-001", "2025-03-15", "-15.99", "NETFLIX SUBSCRIPTION")
	second := GenerateTransactionReference("acc-001", "2025-03-15", "-15.99", "NETFLIX SUBSCRIPTION")

	s.Equal(first, second)
	s.Contains(first, "txn-")
}

func (s *TransactionTestSuite) TestGenerateTransactionReference_FieldsAreDelimited() {
	// "ab"+"c" and "a"+"bc" must not collide across field boundaries
	first := GenerateTransactionReference("ab", "c", "-1", "x")
	second := GenerateTransactionReference("a", "bc", "-1", "x")

	s.NotEqual(first, second)
}
