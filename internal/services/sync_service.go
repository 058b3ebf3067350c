package services

import (
	"context"
	"fmt"
	"time"

	"bankrules/internal/dto"
	"bankrules/internal/models"
	"bankrules/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// syncService pulls booked transactions from the bank data provider into
// local storage. Incoming transactions are deduplicated against stored
// references and classified before they are persisted.
type syncService struct {
	client          BankDataClientInterface
	credentials     CredentialServiceInterface
	applier         RuleApplicationServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	balanceRepo     repositories.BalanceRepositoryInterface
	cache           TransactionCacheServiceInterface
	logger          EngineLoggerInterface
	metrics         MetricsRecorderInterface
}

// NewSyncService creates the provider sync orchestrator
func NewSyncService(
	client BankDataClientInterface,
	credentials CredentialServiceInterface,
	applier RuleApplicationServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	balanceRepo repositories.BalanceRepositoryInterface,
	cache TransactionCacheServiceInterface,
	logger EngineLoggerInterface,
	metrics MetricsRecorderInterface,
) SyncServiceInterface {
	return &syncService{
		client:          client,
		credentials:     credentials,
		applier:         applier,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		cache:           cache,
		logger:          logger,
		metrics:         metrics,
	}
}

func (s *syncService) SyncTransactions(ctx context.Context, userID uuid.UUID, req *dto.SyncRequest) (*dto.SyncResult, error) {
	started := time.Now()
	s.logger.LogSyncStarted(ctx, userID, req.AccountID)

	result, err := s.sync(ctx, userID, req)
	if err != nil {
		s.metrics.IncrementCounter("sync.failed", nil)
		s.logger.LogSyncFailed(ctx, userID, err.Error(), time.Since(started).Milliseconds())
		return nil, err
	}

	s.metrics.IncrementCounter("sync.completed", nil)
	s.metrics.RecordGauge("sync.fetched", float64(result.Fetched), nil)
	s.metrics.RecordProcessingTime("sync.run", time.Since(started))
	s.logger.LogSyncCompleted(ctx, userID, result.Fetched, result.Created, result.Classified, time.Since(started).Milliseconds())

	return result, nil
}

func (s *syncService) sync(ctx context.Context, userID uuid.UUID, req *dto.SyncRequest) (*dto.SyncResult, error) {
	secretID, secretKey, err := s.credentials.GetCredentials(userID)
	if err != nil {
		return nil, err
	}

	fetched, err := s.client.FetchTransactions(
		ctx,
		ProviderCredentials{SecretID: secretID, SecretKey: secretKey},
		req.AccountID,
		req.DateFrom,
		req.DateTo,
	)
	if err != nil {
		return nil, err
	}

	incoming, err := mapIncoming(userID, req.AccountID, fetched)
	if err != nil {
		return nil, err
	}

	fresh, skipped, err := s.dedupe(userID, incoming)
	if err != nil {
		return nil, err
	}

	classified := 0
	if len(fresh) > 0 {
		classified, err = s.applier.ClassifyTransactions(ctx, userID, fresh)
		if err != nil {
			return nil, err
		}

		batch := make([]models.Transaction, 0, len(fresh))
		for _, txn := range fresh {
			batch = append(batch, *txn)
		}
		if err := s.transactionRepo.CreateBatch(batch); err != nil {
			return nil, fmt.Errorf("store synced transactions: %w", err)
		}

		s.cache.Invalidate(userID)
	}

	balances := s.syncBalances(ctx, userID, req.AccountID, ProviderCredentials{SecretID: secretID, SecretKey: secretKey})

	return &dto.SyncResult{
		Fetched:        len(fetched),
		Created:        len(fresh),
		Skipped:        skipped,
		Classified:     classified,
		BalancesSynced: balances,
		CompletedAt:    time.Now(),
	}, nil
}

// syncBalances upserts the account's current balance records. Balance upkeep
// is best effort: transactions are already committed by the time it runs, so
// a provider or storage failure here is logged and the sync still succeeds.
func (s *syncService) syncBalances(ctx context.Context, userID uuid.UUID, accountID string, creds ProviderCredentials) int {
	fetched, err := s.client.FetchBalances(ctx, creds, accountID)
	if err != nil {
		s.metrics.IncrementCounter("sync.balances.failed", nil)
		s.logger.LogBalanceSyncFailed(ctx, userID, accountID, err.Error())
		return 0
	}

	synced := 0
	for _, b := range fetched {
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			s.logger.LogBalanceSyncFailed(ctx, userID, accountID, fmt.Sprintf("invalid balance amount %q: %v", b.Amount, err))
			continue
		}

		referenceDate := b.ReferenceDate
		if referenceDate == "" {
			referenceDate = time.Now().Format("2006-01-02")
		}

		balance := &models.AccountBalance{
			UserID:        userID,
			AccountID:     accountID,
			BalanceType:   b.BalanceType,
			Amount:        amount,
			Currency:      b.Currency,
			ReferenceDate: referenceDate,
		}
		if err := s.balanceRepo.Upsert(balance); err != nil {
			s.metrics.IncrementCounter("sync.balances.failed", nil)
			s.logger.LogBalanceSyncFailed(ctx, userID, accountID, err.Error())
			continue
		}
		synced++
	}

	return synced
}

// dedupe drops incoming transactions whose reference is already stored and
// duplicates within the same batch
func (s *syncService) dedupe(userID uuid.UUID, incoming []*models.Transaction) ([]*models.Transaction, int, error) {
	references := make([]string, 0, len(incoming))
	for _, txn := range incoming {
		references = append(references, txn.Reference)
	}

	existing, err := s.transactionRepo.GetExistingReferences(userID, references)
	if err != nil {
		return nil, 0, fmt.Errorf("check existing references: %w", err)
	}

	fresh := make([]*models.Transaction, 0, len(incoming))
	skipped := 0
	seen := make(map[string]bool, len(incoming))

	for _, txn := range incoming {
		if existing[txn.Reference] || seen[txn.Reference] {
			skipped++
			continue
		}
		seen[txn.Reference] = true
		fresh = append(fresh, txn)
	}

	return fresh, skipped, nil
}

func mapIncoming(userID uuid.UUID, accountID string, fetched []ProviderTransaction) ([]*models.Transaction, error) {
	transactions := make([]*models.Transaction, 0, len(fetched))

	for _, pt := range fetched {
		amount, err := decimal.NewFromString(pt.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", pt.Amount, err)
		}

		if !models.IsValidBookingDate(pt.BookingDate) {
			return nil, fmt.Errorf("invalid booking date %q", pt.BookingDate)
		}

		txn := &models.Transaction{
			ID:           uuid.New(),
			UserID:       userID,
			AccountID:    accountID,
			Counterparty: pt.Counterparty,
			Description:  pt.Description,
			Amount:       amount,
			Currency:     pt.Currency,
			BookingDate:  pt.BookingDate,
		}

		// Prefer the provider's stable ID for dedup; fall back to a content
		// hash when the provider omits it
		if pt.TransactionID != "" {
			txn.Reference = pt.TransactionID
		} else {
			txn.Reference = models.GenerateTransactionReference(accountID, txn.BookingDate, txn.Amount.String(), txn.Description)
		}

		transactions = append(transactions, txn)
	}

	return transactions, nil
}
