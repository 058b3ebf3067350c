package services_test

import (
	"errors"
	"testing"
	"time"

	"bankrules/internal/models"
	"bankrules/internal/repositories/repository_mocks"
	"bankrules/internal/services"
	"bankrules/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionCacheServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	logger          *service_mocks.MockEngineLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	cache           services.TransactionCacheServiceInterface
}

func TestTransactionCacheServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionCacheServiceTestSuite))
}

func (s *TransactionCacheServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.logger = service_mocks.NewMockEngineLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.logger.EXPECT().LogCacheHit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogCacheMiss(gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogCacheInvalidated(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.cache = services.NewTransactionCacheService(s.transactionRepo, s.logger, s.metrics, 5*time.Minute)
}

func (s *TransactionCacheServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionCacheServiceTestSuite) sampleTransactions(userID uuid.UUID) []models.Transaction {
	return []models.Transaction{
		{
			ID:           uuid.New(),
			UserID:       userID,
			Counterparty: "ALBERT HEIJN 1374",
			Amount:       decimal.NewFromFloat(-42.17),
			Currency:     "EUR",
			BookingDate:  "2025-03-14",
		},
		{
			ID:           uuid.New(),
			UserID:       userID,
			Counterparty: "NETFLIX.COM",
			Amount:       decimal.NewFromFloat(-15.99),
			Currency:     "EUR",
			BookingDate:  "2025-03-13",
		},
	}
}

func (s *TransactionCacheServiceTestSuite) TestGetTransactions_FetchesOnceWithinTTL() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(1)

	first, firstFetchedAt, fromCache, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)
	s.False(fromCache)
	s.Len(first, 2)

	// Second read within the TTL serves the identical snapshot
	second, secondFetchedAt, fromCache, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)
	s.True(fromCache)
	s.Equal(first, second)
	s.Equal(firstFetchedAt, secondFetchedAt)
}

func (s *TransactionCacheServiceTestSuite) TestGetTransactions_ExpiredSnapshotRefetches() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	shortCache := services.NewTransactionCacheService(s.transactionRepo, s.logger, s.metrics, 10*time.Millisecond)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(2)

	_, _, fromCache, err := shortCache.GetTransactions(userID)
	s.Require().NoError(err)
	s.False(fromCache)

	time.Sleep(20 * time.Millisecond)

	_, _, fromCache, err = shortCache.GetTransactions(userID)
	s.Require().NoError(err)
	s.False(fromCache)
}

func (s *TransactionCacheServiceTestSuite) TestGetTransactions_FetchErrorSurfacedUnmodified() {
	userID := uuid.New()
	fetchErr := errors.New("connection refused")

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(nil, fetchErr).Times(1)

	transactions, _, fromCache, err := s.cache.GetTransactions(userID)

	s.ErrorIs(err, fetchErr)
	s.Nil(transactions)
	s.False(fromCache)
}

func (s *TransactionCacheServiceTestSuite) TestGetTransactions_FailedFetchLeavesNoSnapshot() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	gomock.InOrder(
		s.transactionRepo.EXPECT().GetByUserID(userID).Return(nil, errors.New("transient")).Times(1),
		s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(1),
	)

	_, _, _, err := s.cache.GetTransactions(userID)
	s.Require().Error(err)

	transactions, _, fromCache, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)
	s.False(fromCache)
	s.Len(transactions, 2)
}

func (s *TransactionCacheServiceTestSuite) TestRefresh_BypassesFreshSnapshot() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(2)

	_, _, _, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)

	refreshed, fetchedAt, err := s.cache.Refresh(userID)
	s.Require().NoError(err)
	s.Len(refreshed, 2)
	s.WithinDuration(time.Now(), fetchedAt, time.Second)
}

func (s *TransactionCacheServiceTestSuite) TestInvalidate_ForcesRefetch() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(2)

	_, _, _, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)

	s.cache.Invalidate(userID)

	_, _, fromCache, err := s.cache.GetTransactions(userID)
	s.Require().NoError(err)
	s.False(fromCache)
}

func (s *TransactionCacheServiceTestSuite) TestInvalidate_UnknownUserIsNoOp() {
	s.cache.Invalidate(uuid.New())
}

func (s *TransactionCacheServiceTestSuite) TestCacheIsolatedPerUser() {
	userA := uuid.New()
	userB := uuid.New()

	s.transactionRepo.EXPECT().GetByUserID(userA).Return(s.sampleTransactions(userA), nil).Times(1)
	s.transactionRepo.EXPECT().GetByUserID(userB).Return(s.sampleTransactions(userB), nil).Times(1)

	transactionsA, _, _, err := s.cache.GetTransactions(userA)
	s.Require().NoError(err)

	transactionsB, _, _, err := s.cache.GetTransactions(userB)
	s.Require().NoError(err)

	s.Equal(userA, transactionsA[0].UserID)
	s.Equal(userB, transactionsB[0].UserID)
}

func (s *TransactionCacheServiceTestSuite) TestGetFiltered_FiltersSnapshotWithoutRefetch() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(1)

	filtered, _, fromCache, err := s.cache.GetFiltered(userID, models.TransactionFilter{EndDate: "2025-03-13"})
	s.Require().NoError(err)
	s.False(fromCache)
	s.Require().Len(filtered, 1)
	s.Equal("NETFLIX.COM", filtered[0].Counterparty)

	// A second filtered read with different criteria reuses the snapshot
	filtered, _, fromCache, err = s.cache.GetFiltered(userID, models.TransactionFilter{IDs: []uuid.UUID{stored[0].ID}})
	s.Require().NoError(err)
	s.True(fromCache)
	s.Require().Len(filtered, 1)
	s.Equal(stored[0].ID, filtered[0].ID)
}

func (s *TransactionCacheServiceTestSuite) TestGetFiltered_ZeroFilterReturnsFullSnapshot() {
	userID := uuid.New()
	stored := s.sampleTransactions(userID)

	s.transactionRepo.EXPECT().GetByUserID(userID).Return(stored, nil).Times(1)

	filtered, _, _, err := s.cache.GetFiltered(userID, models.TransactionFilter{})
	s.Require().NoError(err)
	s.Equal(stored, filtered)
}
