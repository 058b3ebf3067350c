package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bankrules/internal/config"
	"bankrules/internal/dto"
	"bankrules/internal/models"
	"bankrules/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrRuleNotOwned = errors.New("rule does not belong to user")
)

// ruleApplicationService orchestrates bulk rule runs over a user's
// transactions. Evaluation is spread over a bounded worker pool; each worker
// writes its verdict into its own slot so aggregation needs no locking.
type ruleApplicationService struct {
	engine          RuleEngineServiceInterface
	suggester       CategorySuggestionServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	ruleRepo        repositories.RuleRepositoryInterface
	cache           TransactionCacheServiceInterface
	logger          EngineLoggerInterface
	metrics         MetricsRecorderInterface

	conflictPolicy string
	sampleLimit    int
	workerCount    int
}

// NewRuleApplicationService creates the bulk application orchestrator
func NewRuleApplicationService(
	engine RuleEngineServiceInterface,
	suggester CategorySuggestionServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	ruleRepo repositories.RuleRepositoryInterface,
	cache TransactionCacheServiceInterface,
	logger EngineLoggerInterface,
	metrics MetricsRecorderInterface,
	conflictPolicy string,
	sampleLimit int,
	workerCount int,
) RuleApplicationServiceInterface {
	if sampleLimit <= 0 {
		sampleLimit = config.DefaultResultSampleLimit
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	return &ruleApplicationService{
		engine:          engine,
		suggester:       suggester,
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
		cache:           cache,
		logger:          logger,
		metrics:         metrics,
		conflictPolicy:  conflictPolicy,
		sampleLimit:     sampleLimit,
		workerCount:     workerCount,
	}
}

// applyVerdict is one worker's result for one candidate transaction
type applyVerdict struct {
	matched       bool
	modified      bool
	working       *models.Transaction
	actionErrors  []error
	transactionID uuid.UUID
}

// TestRule evaluates an unsaved rule definition against the user's
// transactions. Nothing is persisted and match statistics stay untouched.
func (s *ruleApplicationService) TestRule(userID uuid.UUID, req *dto.TestRuleRequest) (*dto.RuleApplicationResult, error) {
	name := req.Name
	if name == "" {
		name = "draft"
	}
	logic := req.ConditionLogic
	if logic == "" {
		logic = models.ConditionLogicAnd
	}

	rule := &models.TransactionRule{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Enabled:        true,
		Conditions:     req.Conditions,
		ConditionLogic: logic,
		Actions:        req.Actions,
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.loadCandidates(userID, req.TransactionIDs, req.Limit)
	if err != nil {
		return nil, err
	}

	return s.run(context.Background(), rule, candidates, true, false)
}

// ApplyRule applies a stored rule to the user's transactions. With DryRun set
// the run reports what would change without persisting anything; otherwise
// modified transactions are saved and the rule's match statistics advance
// exactly once for the whole run.
func (s *ruleApplicationService) ApplyRule(userID, ruleID uuid.UUID, req *dto.ApplyRuleRequest) (*dto.RuleApplicationResult, error) {
	rule, err := s.ruleRepo.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if rule.UserID != userID {
		return nil, ErrRuleNotOwned
	}

	candidates, err := s.loadCandidates(userID, req.TransactionIDs, req.Limit)
	if err != nil {
		return nil, err
	}

	return s.run(context.Background(), rule, candidates, req.DryRun, !req.DryRun)
}

// run evaluates the rule over the candidates and optionally persists the
// outcome. The candidate set is already truncated to any requested limit, so
// totals reflect exactly what was evaluated.
func (s *ruleApplicationService) run(
	ctx context.Context,
	rule *models.TransactionRule,
	candidates []models.Transaction,
	dryRun bool,
	persist bool,
) (*dto.RuleApplicationResult, error) {
	started := time.Now()
	s.logger.LogRuleApplicationStarted(ctx, rule.ID, rule.UserID, dryRun, len(candidates))

	verdicts := s.evaluateParallel(rule, candidates)

	result := &dto.RuleApplicationResult{
		RuleID:         rule.ID,
		RuleName:       rule.Name,
		DryRun:         dryRun,
		TotalEvaluated: len(candidates),
	}

	modified := make([]*models.Transaction, 0)
	for _, v := range verdicts {
		if !v.matched {
			s.metrics.IncrementCounter("rule.evaluation.unmatched", nil)
			continue
		}

		s.metrics.IncrementCounter("rule.evaluation.matched", nil)
		result.TotalMatched++

		for _, actionErr := range v.actionErrors {
			s.logger.LogRuleActionFailed(ctx, rule.ID, v.transactionID, actionErr.Error())
			result.Errors = append(result.Errors, dto.TransactionActionError{
				TransactionID: v.transactionID,
				Message:       actionErr.Error(),
			})
		}

		if v.modified {
			result.TotalModified++
			s.metrics.IncrementCounter("rule.transaction.modified", nil)
			modified = append(modified, v.working)
		}

		if len(result.Sample) < s.sampleLimit {
			result.Sample = append(result.Sample, v.working)
		}
	}

	if persist {
		if err := s.persistRun(rule, result.TotalMatched, modified); err != nil {
			s.metrics.IncrementCounter("rule.application.failed", map[string]string{"mode": runMode(dryRun)})
			s.logger.LogRuleApplicationFailed(ctx, rule.ID, err.Error(), time.Since(started).Milliseconds())
			return nil, err
		}
	}

	result.CompletedAt = time.Now()

	s.metrics.IncrementCounter("rule.application.success", map[string]string{"mode": runMode(dryRun)})
	s.metrics.RecordProcessingTime("rule.application", time.Since(started))
	s.logger.LogRuleApplicationCompleted(ctx, rule.ID, result.TotalMatched, result.TotalModified, time.Since(started).Milliseconds())

	return result, nil
}

func runMode(dryRun bool) string {
	if dryRun {
		return "dry_run"
	}
	return "apply"
}

// evaluateParallel fans candidate indexes out to a bounded worker pool.
// Workers only read the rule and write to their own verdict slot.
func (s *ruleApplicationService) evaluateParallel(rule *models.TransactionRule, candidates []models.Transaction) []applyVerdict {
	verdicts := make([]applyVerdict, len(candidates))

	indexes := make(chan int)
	var wg sync.WaitGroup

	workers := s.workerCount
	if workers > len(candidates) {
		workers = len(candidates)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				verdicts[i] = s.evaluateOne(rule, &candidates[i])
			}
		}()
	}

	for i := range candidates {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return verdicts
}

func (s *ruleApplicationService) evaluateOne(rule *models.TransactionRule, candidate *models.Transaction) applyVerdict {
	verdict := applyVerdict{transactionID: candidate.ID}

	if !s.engine.Matches(rule, candidate) {
		return verdict
	}

	verdict.matched = true
	working := candidate.Clone()
	verdict.working = &working

	changedFields, actionErrors := s.engine.ApplyActions(rule, verdict.working)
	verdict.modified = len(changedFields) > 0
	verdict.actionErrors = actionErrors

	return verdict
}

func (s *ruleApplicationService) persistRun(rule *models.TransactionRule, matched int, modified []*models.Transaction) error {
	if len(modified) > 0 {
		if err := s.transactionRepo.UpdateBatch(modified); err != nil {
			return fmt.Errorf("persist modified transactions: %w", err)
		}
	}

	if matched > 0 {
		if err := s.ruleRepo.IncrementMatchStats(rule.ID, int64(matched), time.Now()); err != nil {
			return fmt.Errorf("update match statistics: %w", err)
		}
	}

	if len(modified) > 0 {
		s.cache.Invalidate(rule.UserID)
	}

	return nil
}

// loadCandidates resolves the evaluation set. Explicit IDs are fetched
// directly, otherwise the user's cached transaction list is used. A positive
// limit truncates the set before any matching happens.
func (s *ruleApplicationService) loadCandidates(userID uuid.UUID, ids []uuid.UUID, limit int) ([]models.Transaction, error) {
	var candidates []models.Transaction
	var err error

	if len(ids) > 0 {
		candidates, err = s.transactionRepo.GetByIDs(userID, ids)
	} else {
		candidates, _, _, err = s.cache.GetTransactions(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load candidate transactions: %w", err)
	}

	if limit > 0 && limit < len(candidates) {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// ClassifyTransactions runs all enabled rules over the given transactions in
// evaluation order, then falls back to category suggestion for transactions
// no rule categorized. Transactions are modified in place; persisting them is
// the caller's concern. Returns how many transactions ended up categorized.
func (s *ruleApplicationService) ClassifyTransactions(ctx context.Context, userID uuid.UUID, transactions []*models.Transaction) (int, error) {
	rules, err := s.ruleRepo.GetEnabledByUserID(userID)
	if err != nil {
		return 0, fmt.Errorf("load rules: %w", err)
	}

	ordered := s.engine.OrderRules(rules)

	classified := 0
	for _, txn := range transactions {
		if s.classifyOne(ctx, ordered, txn) {
			classified++
		}
	}

	return classified, nil
}

// classifyOne applies matching rules to one transaction according to the
// conflict policy. Under last-wins every matching rule applies so later rules
// overwrite earlier writes; under first-match evaluation stops at the first
// matching rule.
func (s *ruleApplicationService) classifyOne(ctx context.Context, ordered []*models.TransactionRule, txn *models.Transaction) bool {
	for _, rule := range ordered {
		if !s.engine.Matches(rule, txn) {
			continue
		}
		_, actionErrors := s.engine.ApplyActions(rule, txn)
		for _, actionErr := range actionErrors {
			s.logger.LogRuleActionFailed(ctx, rule.ID, txn.ID, actionErr.Error())
		}

		if s.conflictPolicy == config.ConflictPolicyFirstMatch {
			break
		}
	}

	if txn.Category != "" {
		return true
	}

	suggestion := s.suggester.Suggest(txn)
	if suggestion.Category != models.CategoryUncategorized {
		txn.Category = suggestion.Category
		return true
	}

	return false
}
