package services

import (
	"fmt"
	"sort"
	"strings"

	"bankrules/internal/models"

	"github.com/shopspring/decimal"
)

// ruleEngineService implements RuleEngineServiceInterface
// Evaluation is pure: no I/O, no shared state, safe for concurrent use
type ruleEngineService struct{}

// NewRuleEngineService creates a new rule engine service
func NewRuleEngineService() RuleEngineServiceInterface {
	return &ruleEngineService{}
}

// EvaluateCondition checks a single condition against a transaction.
// Evaluation fails closed: unknown fields or operators and type-incompatible
// values return false rather than an error, negated operators included.
func (s *ruleEngineService) EvaluateCondition(condition models.RuleCondition, transaction *models.Transaction) bool {
	switch condition.Field {
	case models.FieldCounterparty:
		return evaluateStringField(transaction.Counterparty, condition)
	case models.FieldDescription:
		return evaluateStringField(transaction.Description, condition)
	case models.FieldCategory:
		return evaluateStringField(transaction.Category, condition)
	case models.FieldAmount:
		return evaluateAmountField(transaction.Amount, condition)
	case models.FieldBookingDate:
		return evaluateBookingDateField(transaction.BookingDate, condition)
	default:
		return false
	}
}

// evaluateStringField applies string operators with optional case folding.
// An empty transaction field compares as the empty string.
func evaluateStringField(fieldValue string, condition models.RuleCondition) bool {
	if !condition.Value.IsString() {
		return false
	}

	target := condition.Value.Str
	if !condition.CaseSensitive {
		fieldValue = strings.ToLower(fieldValue)
		target = strings.ToLower(target)
	}

	switch condition.Operator {
	case models.OperatorEquals:
		return fieldValue == target
	case models.OperatorNotEquals:
		return fieldValue != target
	case models.OperatorContains:
		return strings.Contains(fieldValue, target)
	case models.OperatorNotContains:
		return !strings.Contains(fieldValue, target)
	case models.OperatorStartsWith:
		return strings.HasPrefix(fieldValue, target)
	case models.OperatorEndsWith:
		return strings.HasSuffix(fieldValue, target)
	default:
		return false
	}
}

// evaluateAmountField applies decimal comparison operators to amount
func evaluateAmountField(amount decimal.Decimal, condition models.RuleCondition) bool {
	if !condition.Value.IsNumber() {
		return false
	}

	cmp := amount.Cmp(condition.Value.Num)

	switch condition.Operator {
	case models.OperatorEquals:
		return cmp == 0
	case models.OperatorNotEquals:
		return cmp != 0
	case models.OperatorGreaterThan:
		return cmp > 0
	case models.OperatorLessThan:
		return cmp < 0
	case models.OperatorGreaterThanOrEqual:
		return cmp >= 0
	case models.OperatorLessThanOrEqual:
		return cmp <= 0
	default:
		return false
	}
}

// evaluateBookingDateField compares ISO-8601 dates lexically.
// Zero-padded fixed-width dates make byte ordering equal date ordering.
func evaluateBookingDateField(bookingDate string, condition models.RuleCondition) bool {
	if !condition.Value.IsString() {
		return false
	}

	target := condition.Value.Str

	switch condition.Operator {
	case models.OperatorEquals:
		return bookingDate == target
	case models.OperatorNotEquals:
		return bookingDate != target
	case models.OperatorGreaterThan:
		return bookingDate > target
	case models.OperatorLessThan:
		return bookingDate < target
	case models.OperatorGreaterThanOrEqual:
		return bookingDate >= target
	case models.OperatorLessThanOrEqual:
		return bookingDate <= target
	case models.OperatorContains:
		return strings.Contains(bookingDate, target)
	case models.OperatorNotContains:
		return !strings.Contains(bookingDate, target)
	case models.OperatorStartsWith:
		return strings.HasPrefix(bookingDate, target)
	case models.OperatorEndsWith:
		return strings.HasSuffix(bookingDate, target)
	default:
		return false
	}
}

// Matches reports whether a rule matches a transaction.
// Disabled rules and rules without conditions are rejected without
// evaluating anything. AND returns false on the first failing condition,
// OR returns true on the first passing one.
func (s *ruleEngineService) Matches(rule *models.TransactionRule, transaction *models.Transaction) bool {
	if !rule.Enabled {
		return false
	}

	if len(rule.Conditions) == 0 {
		return false
	}

	logic := rule.ConditionLogic
	if logic == "" {
		logic = models.ConditionLogicAnd
	}

	switch logic {
	case models.ConditionLogicAnd:
		for _, condition := range rule.Conditions {
			if !s.EvaluateCondition(condition, transaction) {
				return false
			}
		}
		return true
	case models.ConditionLogicOr:
		for _, condition := range rule.Conditions {
			if s.EvaluateCondition(condition, transaction) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// OrderRules filters to enabled rules and sorts them into evaluation order:
// ascending priority with creation time breaking ties. The input slice is
// not modified and the sort is stable, so equal keys keep their order.
func (s *ruleEngineService) OrderRules(rules []*models.TransactionRule) []*models.TransactionRule {
	ordered := make([]*models.TransactionRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			ordered = append(ordered, rule)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	return ordered
}

// ApplyActions applies the rule's actions in declared order to the
// transaction. A type-mismatched action is skipped and reported, it never
// aborts the remaining actions. Returns the distinct fields whose values
// actually changed; a matched rule whose actions are all no-ops changes
// nothing.
func (s *ruleEngineService) ApplyActions(rule *models.TransactionRule, transaction *models.Transaction) ([]string, []error) {
	var changedFields []string
	var actionErrors []error
	seen := make(map[string]bool)

	recordChange := func(field string) {
		if !seen[field] {
			seen[field] = true
			changedFields = append(changedFields, field)
		}
	}

	for i, action := range rule.Actions {
		switch action.Type {
		case models.ActionSetCategory:
			if !action.Value.IsString() {
				actionErrors = append(actionErrors, fmt.Errorf("action %d (%s): %w", i, action.Type, models.ErrActionValueMismatch))
				continue
			}
			if transaction.Category != action.Value.Str {
				transaction.Category = action.Value.Str
				recordChange(models.FieldCategory)
			}
		case models.ActionSetDescription:
			if !action.Value.IsString() {
				actionErrors = append(actionErrors, fmt.Errorf("action %d (%s): %w", i, action.Type, models.ErrActionValueMismatch))
				continue
			}
			if transaction.Description != action.Value.Str {
				transaction.Description = action.Value.Str
				recordChange(models.FieldDescription)
			}
		case models.ActionSetCounterparty:
			if !action.Value.IsString() {
				actionErrors = append(actionErrors, fmt.Errorf("action %d (%s): %w", i, action.Type, models.ErrActionValueMismatch))
				continue
			}
			if transaction.Counterparty != action.Value.Str {
				transaction.Counterparty = action.Value.Str
				recordChange(models.FieldCounterparty)
			}
		case models.ActionSetExclude:
			if !action.Value.IsBool() {
				actionErrors = append(actionErrors, fmt.Errorf("action %d (%s): %w", i, action.Type, models.ErrActionValueMismatch))
				continue
			}
			if transaction.Exclude != action.Value.Bool {
				transaction.Exclude = action.Value.Bool
				recordChange("exclude")
			}
		default:
			actionErrors = append(actionErrors, fmt.Errorf("action %d: %w: %q", i, models.ErrUnknownActionType, action.Type))
		}
	}

	return changedFields, actionErrors
}
