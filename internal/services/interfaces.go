package services

import (
	"context"
	"time"

	"bankrules/internal/dto"
	"bankrules/internal/models"

	"github.com/google/uuid"
)

// RuleEngineServiceInterface defines the core rule evaluation operations
type RuleEngineServiceInterface interface {
	// EvaluateCondition checks a single condition against a transaction
	// Unknown fields, operators or mismatched value types evaluate to false
	EvaluateCondition(condition models.RuleCondition, transaction *models.Transaction) bool

	// Matches reports whether a rule matches a transaction
	// Disabled rules never match
	Matches(rule *models.TransactionRule, transaction *models.Transaction) bool

	// OrderRules returns rules sorted into evaluation order
	// Ascending priority with creation time breaking ties
	OrderRules(rules []*models.TransactionRule) []*models.TransactionRule

	// ApplyActions applies a rule's actions to a transaction in place
	// Returns the fields actually changed and one error per skipped action
	ApplyActions(rule *models.TransactionRule, transaction *models.Transaction) (changedFields []string, actionErrors []error)
}

// TransactionCacheServiceInterface defines the per-user cached transaction reads
type TransactionCacheServiceInterface interface {
	// GetTransactions returns the user's transactions, serving a cached snapshot
	// when one is younger than the TTL
	GetTransactions(userID uuid.UUID) ([]models.Transaction, time.Time, bool, error)

	// GetFiltered applies a filter to the cached snapshot without refetching
	GetFiltered(userID uuid.UUID, filter models.TransactionFilter) ([]models.Transaction, time.Time, bool, error)

	// Refresh bypasses the cache, fetches fresh data and stores a new snapshot
	Refresh(userID uuid.UUID) ([]models.Transaction, time.Time, error)

	// Invalidate drops the user's cached snapshot
	Invalidate(userID uuid.UUID)
}

// RuleApplicationServiceInterface orchestrates bulk rule application runs
type RuleApplicationServiceInterface interface {
	// TestRule evaluates an unsaved rule definition without persisting anything
	TestRule(userID uuid.UUID, req *dto.TestRuleRequest) (*dto.RuleApplicationResult, error)

	// ApplyRule applies a stored rule to the user's transactions
	// With DryRun set, no transaction changes or match statistics are persisted
	ApplyRule(userID, ruleID uuid.UUID, req *dto.ApplyRuleRequest) (*dto.RuleApplicationResult, error)

	// ClassifyTransactions runs all enabled rules over the given transactions
	// in evaluation order, falling back to category suggestion for transactions
	// no rule categorized. Returns how many transactions were classified.
	ClassifyTransactions(ctx context.Context, userID uuid.UUID, transactions []*models.Transaction) (int, error)
}

// CategorySuggestionServiceInterface suggests categories for unclassified transactions
type CategorySuggestionServiceInterface interface {
	// SuggestByCounterparty suggests a category from known merchant patterns
	SuggestByCounterparty(counterparty string) *models.CategorySuggestion

	// SuggestByDescription suggests a category from description keywords
	SuggestByDescription(description string) *models.CategorySuggestion

	// Suggest runs the full suggestion chain for a transaction
	Suggest(transaction *models.Transaction) *models.CategorySuggestion
}

// CredentialServiceInterface manages encrypted provider credentials
type CredentialServiceInterface interface {
	StoreCredentials(userID uuid.UUID, secretID, secretKey string) error
	GetCredentials(userID uuid.UUID) (secretID, secretKey string, err error)
	DeleteCredentials(userID uuid.UUID) error
}

// BankDataClientInterface talks to the bank data provider API
type BankDataClientInterface interface {
	// FetchTransactions retrieves booked transactions for an account
	FetchTransactions(ctx context.Context, creds ProviderCredentials, accountID, dateFrom, dateTo string) ([]ProviderTransaction, error)

	// FetchBalances retrieves the current balance records for an account
	FetchBalances(ctx context.Context, creds ProviderCredentials, accountID string) ([]ProviderBalance, error)
}

// SyncServiceInterface pulls provider transactions into local storage
type SyncServiceInterface interface {
	SyncTransactions(ctx context.Context, userID uuid.UUID, req *dto.SyncRequest) (*dto.SyncResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type EngineLoggerInterface interface {
	LogRuleApplicationStarted(ctx context.Context, ruleID uuid.UUID, userID uuid.UUID, dryRun bool, candidates int)
	LogRuleApplicationCompleted(ctx context.Context, ruleID uuid.UUID, matched, modified int, durationMs int64)
	LogRuleApplicationFailed(ctx context.Context, ruleID uuid.UUID, errorMsg string, durationMs int64)
	LogRuleActionFailed(ctx context.Context, ruleID, transactionID uuid.UUID, errorMsg string)
	LogCacheHit(ctx context.Context, userID uuid.UUID, transactions int, ageMs int64)
	LogCacheMiss(ctx context.Context, userID uuid.UUID)
	LogCacheInvalidated(ctx context.Context, userID uuid.UUID)
	LogSyncStarted(ctx context.Context, userID uuid.UUID, accountID string)
	LogSyncCompleted(ctx context.Context, userID uuid.UUID, fetched, created, classified int, durationMs int64)
	LogSyncFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64)
	LogBalanceSyncFailed(ctx context.Context, userID uuid.UUID, accountID, errorMsg string)
	LogProviderRetry(ctx context.Context, attempt, maxRetries int, backoffMs int64, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

// TransactionGeneratorInterface generates realistic transaction data for testing
type TransactionGeneratorInterface interface {
	GenerateTransactions(userID uuid.UUID, accountID string, startDate, endDate time.Time, count int) []*models.Transaction
	GetMerchantPool() []MerchantInfo
	SelectRandomMerchant() MerchantInfo
	GenerateBookingDate(startDate, endDate time.Time) string
}
