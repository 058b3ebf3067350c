package repositories

import (
	"testing"

	"bankrules/internal/database"
	"bankrules/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBalanceRepository(t *testing.T) {
	suite.Run(t, new(BalanceRepositorySuite))
}

type BalanceRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   BalanceRepositoryInterface
	userID uuid.UUID
}

func (s *BalanceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBalanceRepository(s.db.DB)
	s.userID = uuid.New()
}

func (s *BalanceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BalanceRepositorySuite) newBalance(accountID, balanceType, amount string) *models.AccountBalance {
	return &models.AccountBalance{
		UserID:        s.userID,
		AccountID:     accountID,
		BalanceType:   balanceType,
		Amount:        decimal.RequireFromString(amount),
		Currency:      "EUR",
		ReferenceDate: "2025-03-15",
	}
}

func (s *BalanceRepositorySuite) TestUpsert_CreatesThenReplaces() {
	err := s.repo.Upsert(s.newBalance("acc-001", "closingBooked", "998.13"))
	s.NoError(err)

	updated := s.newBalance("acc-001", "closingBooked", "1024.50")
	updated.ReferenceDate = "2025-03-16"
	err = s.repo.Upsert(updated)
	s.NoError(err)

	balances, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Require().Len(balances, 1)
	s.Equal("1024.5", balances[0].Amount.String())
	s.Equal("2025-03-16", balances[0].ReferenceDate)
}

func (s *BalanceRepositorySuite) TestUpsert_DistinctTypesKeptSeparately() {
	s.Require().NoError(s.repo.Upsert(s.newBalance("acc-001", "closingBooked", "998.13")))
	s.Require().NoError(s.repo.Upsert(s.newBalance("acc-001", "interimAvailable", "1024.50")))
	s.Require().NoError(s.repo.Upsert(s.newBalance("acc-002", "closingBooked", "57.00")))

	balances, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Require().Len(balances, 3)
	s.Equal("acc-001", balances[0].AccountID)
	s.Equal("closingBooked", balances[0].BalanceType)
	s.Equal("interimAvailable", balances[1].BalanceType)
	s.Equal("acc-002", balances[2].AccountID)
}

func (s *BalanceRepositorySuite) TestUpsert_InvalidBalanceRejected() {
	balance := s.newBalance("", "closingBooked", "1.00")

	err := s.repo.Upsert(balance)
	s.ErrorIs(err, models.ErrBalanceMissingAccountID)
}

func (s *BalanceRepositorySuite) TestGetByUserID_ScopedToUser() {
	s.Require().NoError(s.repo.Upsert(s.newBalance("acc-001", "closingBooked", "998.13")))

	other := s.newBalance("acc-001", "closingBooked", "5.00")
	other.UserID = uuid.New()
	s.Require().NoError(s.repo.Upsert(other))

	balances, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Require().Len(balances, 1)
	s.Equal(s.userID, balances[0].UserID)
}
