package services

import (
	"context"
	"sync"
	"time"

	"bankrules/internal/models"
	"bankrules/internal/repositories"

	"github.com/google/uuid"
)

// cachedSnapshot holds one user's transactions together with the fetch time
// used for TTL decisions
type cachedSnapshot struct {
	transactions []models.Transaction
	fetchedAt    time.Time
}

// transactionCacheService keeps per-user snapshots of the transaction list so
// repeated reads within the TTL window do not hit the database. Snapshots are
// never written through; mutations go to the repository and callers invalidate.
type transactionCacheService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          EngineLoggerInterface
	metrics         MetricsRecorderInterface
	ttl             time.Duration

	mu        sync.RWMutex
	snapshots map[uuid.UUID]*cachedSnapshot
}

// NewTransactionCacheService creates a cache over the given repository with the
// given snapshot TTL
func NewTransactionCacheService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger EngineLoggerInterface,
	metrics MetricsRecorderInterface,
	ttl time.Duration,
) TransactionCacheServiceInterface {
	return &transactionCacheService{
		transactionRepo: transactionRepo,
		logger:          logger,
		metrics:         metrics,
		ttl:             ttl,
		snapshots:       make(map[uuid.UUID]*cachedSnapshot),
	}
}

// GetTransactions returns the user's transactions, the time they were fetched
// and whether they came from the cache. A snapshot older than the TTL is
// treated as absent and refetched.
func (s *transactionCacheService) GetTransactions(userID uuid.UUID) ([]models.Transaction, time.Time, bool, error) {
	s.mu.RLock()
	snapshot, found := s.snapshots[userID]
	s.mu.RUnlock()

	if found && time.Since(snapshot.fetchedAt) < s.ttl {
		s.logger.LogCacheHit(context.Background(), userID, len(snapshot.transactions), time.Since(snapshot.fetchedAt).Milliseconds())
		s.metrics.IncrementCounter("cache.hit", nil)
		return snapshot.transactions, snapshot.fetchedAt, true, nil
	}

	s.logger.LogCacheMiss(context.Background(), userID)
	s.metrics.IncrementCounter("cache.miss", nil)

	transactions, fetchedAt, err := s.Refresh(userID)
	if err != nil {
		return nil, time.Time{}, false, err
	}
	return transactions, fetchedAt, false, nil
}

// Refresh fetches the user's transactions from the repository and replaces any
// existing snapshot. Fetch errors are returned unmodified and leave the cache
// untouched.
func (s *transactionCacheService) Refresh(userID uuid.UUID) ([]models.Transaction, time.Time, error) {
	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, time.Time{}, err
	}

	fetchedAt := time.Now()

	s.mu.Lock()
	s.snapshots[userID] = &cachedSnapshot{
		transactions: transactions,
		fetchedAt:    fetchedAt,
	}
	s.mu.Unlock()

	s.metrics.RecordGauge("cache.snapshot_size", float64(len(transactions)), nil)

	return transactions, fetchedAt, nil
}

// GetFiltered applies the filter to the user's cached snapshot. The snapshot
// is resolved through GetTransactions, so a stale entry still refetches.
func (s *transactionCacheService) GetFiltered(userID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, time.Time, bool, error) {
	transactions, fetchedAt, cached, err := s.GetTransactions(userID)
	if err != nil {
		return nil, time.Time{}, false, err
	}

	if filter.IsZero() {
		return transactions, fetchedAt, cached, nil
	}

	match := filter.Predicate()
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if match(txn) {
			filtered = append(filtered, txn)
		}
	}

	return filtered, fetchedAt, cached, nil
}

// Invalidate drops the user's snapshot. Invalidating an absent user is a no-op.
func (s *transactionCacheService) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	_, found := s.snapshots[userID]
	delete(s.snapshots, userID)
	s.mu.Unlock()

	if found {
		s.logger.LogCacheInvalidated(context.Background(), userID)
		s.metrics.IncrementCounter("cache.invalidated", nil)
	}
}
