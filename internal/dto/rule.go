package dto

import (
	"time"

	"bankrules/internal/models"

	"github.com/google/uuid"
)

// CreateRuleRequest represents the request to create a new transaction rule
type CreateRuleRequest struct {
	Name           string                `json:"name" validate:"required,min=1,max=100"`
	Enabled        *bool                 `json:"enabled"`
	Priority       int                   `json:"priority" validate:"omitempty,min=0"`
	Conditions     models.RuleConditions `json:"conditions" validate:"required,min=1"`
	ConditionLogic string                `json:"conditionLogic" validate:"omitempty,oneof=AND OR"`
	Actions        models.RuleActions    `json:"actions" validate:"required,min=1"`
}

// UpdateRuleRequest represents a partial update to an existing rule
// Nil fields are left unchanged
type UpdateRuleRequest struct {
	Name           *string                `json:"name" validate:"omitempty,min=1,max=100"`
	Enabled        *bool                  `json:"enabled"`
	Priority       *int                   `json:"priority" validate:"omitempty,min=0"`
	Conditions     *models.RuleConditions `json:"conditions" validate:"omitempty,min=1"`
	ConditionLogic *string                `json:"conditionLogic" validate:"omitempty,oneof=AND OR"`
	Actions        *models.RuleActions    `json:"actions" validate:"omitempty,min=1"`
}

// ListRulesResponse represents the response for listing a user's rules
type ListRulesResponse struct {
	Rules []*models.TransactionRule `json:"rules"`
	Total int                       `json:"total"`
}

// TestRuleRequest represents a rule definition to evaluate without persisting changes
// The rule itself does not need to be saved before testing
type TestRuleRequest struct {
	Name           string                `json:"name" validate:"omitempty,max=100"`
	Conditions     models.RuleConditions `json:"conditions" validate:"required,min=1"`
	ConditionLogic string                `json:"conditionLogic" validate:"omitempty,oneof=AND OR"`
	Actions        models.RuleActions    `json:"actions" validate:"required,min=1"`
	TransactionIDs []uuid.UUID           `json:"transactionIds"`
	Limit          int                   `json:"limit" validate:"omitempty,min=1"`
}

// ApplyRuleRequest represents the request to apply a stored rule in bulk
type ApplyRuleRequest struct {
	TransactionIDs []uuid.UUID `json:"transactionIds"`
	Limit          int         `json:"limit" validate:"omitempty,min=1"`
	DryRun         bool        `json:"dryRun"`
}

// TransactionActionError reports a per-transaction failure during rule application
// Failures on individual transactions do not abort the run
type TransactionActionError struct {
	TransactionID uuid.UUID `json:"transactionId"`
	Message       string    `json:"message"`
}

// RuleApplicationResult summarizes a bulk rule application or test run
// Sample holds modified transaction copies and is capped by the engine
type RuleApplicationResult struct {
	RuleID         uuid.UUID                `json:"ruleId,omitempty"`
	RuleName       string                   `json:"ruleName,omitempty"`
	DryRun         bool                     `json:"dryRun"`
	TotalEvaluated int                      `json:"totalEvaluated"`
	TotalMatched   int                      `json:"totalMatched"`
	TotalModified  int                      `json:"totalModified"`
	Sample         []*models.Transaction    `json:"sample"`
	Errors         []TransactionActionError `json:"errors,omitempty"`
	CompletedAt    time.Time                `json:"completedAt"`
}
