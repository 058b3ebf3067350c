package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type EngineLogger struct {
	logger *slog.Logger
}

func NewEngineLogger(logger *slog.Logger) EngineLoggerInterface {
	return &EngineLogger{
		logger: logger,
	}
}

func (el *EngineLogger) LogRuleApplicationStarted(ctx context.Context, ruleID uuid.UUID, userID uuid.UUID, dryRun bool, candidates int) {
	el.logger.InfoContext(ctx, "rule application started",
		slog.String("event_type", "rule_application_started"),
		slog.String("rule_id", ruleID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("dry_run", dryRun),
		slog.Int("candidates", candidates),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogRuleApplicationCompleted(ctx context.Context, ruleID uuid.UUID, matched, modified int, durationMs int64) {
	el.logger.InfoContext(ctx, "rule application completed",
		slog.String("event_type", "rule_application_completed"),
		slog.String("rule_id", ruleID.String()),
		slog.Int("matched", matched),
		slog.Int("modified", modified),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogRuleApplicationFailed(ctx context.Context, ruleID uuid.UUID, errorMsg string, durationMs int64) {
	el.logger.WarnContext(ctx, "rule application failed",
		slog.String("event_type", "rule_application_failed"),
		slog.String("rule_id", ruleID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogRuleActionFailed(ctx context.Context, ruleID, transactionID uuid.UUID, errorMsg string) {
	el.logger.WarnContext(ctx, "rule action failed",
		slog.String("event_type", "rule_action_failed"),
		slog.String("rule_id", ruleID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogCacheHit(ctx context.Context, userID uuid.UUID, transactions int, ageMs int64) {
	el.logger.InfoContext(ctx, "transaction cache hit",
		slog.String("event_type", "transaction_cache_hit"),
		slog.String("user_id", userID.String()),
		slog.Int("transactions", transactions),
		slog.Int64("age_ms", ageMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogCacheMiss(ctx context.Context, userID uuid.UUID) {
	el.logger.InfoContext(ctx, "transaction cache miss",
		slog.String("event_type", "transaction_cache_miss"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogCacheInvalidated(ctx context.Context, userID uuid.UUID) {
	el.logger.InfoContext(ctx, "transaction cache invalidated",
		slog.String("event_type", "transaction_cache_invalidated"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogSyncStarted(ctx context.Context, userID uuid.UUID, accountID string) {
	el.logger.InfoContext(ctx, "transaction sync started",
		slog.String("event_type", "transaction_sync_started"),
		slog.String("user_id", userID.String()),
		slog.String("account_id", accountID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogSyncCompleted(ctx context.Context, userID uuid.UUID, fetched, created, classified int, durationMs int64) {
	el.logger.InfoContext(ctx, "transaction sync completed",
		slog.String("event_type", "transaction_sync_completed"),
		slog.String("user_id", userID.String()),
		slog.Int("fetched", fetched),
		slog.Int("created", created),
		slog.Int("classified", classified),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogSyncFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64) {
	el.logger.WarnContext(ctx, "transaction sync failed",
		slog.String("event_type", "transaction_sync_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogBalanceSyncFailed(ctx context.Context, userID uuid.UUID, accountID, errorMsg string) {
	el.logger.WarnContext(ctx, "balance sync failed",
		slog.String("event_type", "balance_sync_failed"),
		slog.String("user_id", userID.String()),
		slog.String("account_id", accountID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogProviderRetry(ctx context.Context, attempt, maxRetries int, backoffMs int64, errorMsg string) {
	el.logger.InfoContext(ctx, "provider retry attempt",
		slog.String("event_type", "provider_retry_attempt"),
		slog.Int("attempt", attempt),
		slog.Int("max_retries", maxRetries),
		slog.Int64("backoff_ms", backoffMs),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EngineLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	el.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
