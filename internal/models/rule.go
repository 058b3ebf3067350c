package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condition fields
const (
	FieldCounterparty = "counterparty"
	FieldDescription  = "description"
	FieldAmount       = "amount"
	FieldBookingDate  = "bookingDate"
	FieldCategory     = "category"
)

// Condition operators
const (
	OperatorEquals             = "equals"
	OperatorNotEquals          = "notEquals"
	OperatorContains           = "contains"
	OperatorNotContains        = "notContains"
	OperatorStartsWith         = "startsWith"
	OperatorEndsWith           = "endsWith"
	OperatorGreaterThan        = "greaterThan"
	OperatorLessThan           = "lessThan"
	OperatorGreaterThanOrEqual = "greaterThanOrEqual"
	OperatorLessThanOrEqual    = "lessThanOrEqual"
)

// Condition logic
const (
	ConditionLogicAnd = "AND"
	ConditionLogicOr  = "OR"
)

// Action types
const (
	ActionSetCategory     = "setCategory"
	ActionSetExclude      = "setExclude"
	ActionSetDescription  = "setDescription"
	ActionSetCounterparty = "setCounterparty"
)

var (
	ErrRuleHasNoConditions   = errors.New("rule must have at least one condition")
	ErrRuleHasNoActions      = errors.New("rule must have at least one action")
	ErrRuleMissingUserID     = errors.New("rule user ID is required")
	ErrRuleMissingName       = errors.New("rule name is required")
	ErrUnknownConditionField = errors.New("unknown condition field")
	ErrUnknownOperator       = errors.New("unknown condition operator")
	ErrUnknownConditionLogic = errors.New("condition logic must be AND or OR")
	ErrUnknownActionType     = errors.New("unknown action type")
	ErrActionValueMismatch   = errors.New("action value type does not match target field")
)

// RuleCondition is a single predicate over one transaction field.
type RuleCondition struct {
	Field         string         `json:"field"`
	Operator      string         `json:"operator"`
	Value         ConditionValue `json:"value"`
	CaseSensitive bool           `json:"case_sensitive,omitempty"`
}

// RuleAction is a single field mutation applied when a rule matches.
type RuleAction struct {
	Type  string         `json:"type"`
	Value ConditionValue `json:"value"`
}

// RuleConditions stores an ordered condition list as a JSONB column.
type RuleConditions []RuleCondition

// Value implements driver.Valuer
func (c RuleConditions) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (c *RuleConditions) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	return scanJSON(value, c)
}

// RuleActions stores an ordered action list as a JSONB column.
type RuleActions []RuleAction

// Value implements driver.Valuer
func (a RuleActions) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (a *RuleActions) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	return scanJSON(value, a)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", value)
	}
}

// TransactionRule is a user-authored classification rule. Rules are scoped to
// their owner: matching a rule against another user's transactions is
// forbidden and enforced by the resolver.
type TransactionRule struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	// No column default on Enabled: gorm would omit the zero value on
	// insert and a rule created disabled would come back enabled.
	Enabled        bool           `gorm:"not null" json:"enabled"`
	Priority       int            `gorm:"not null;default:0;index" json:"priority"`
	Conditions     RuleConditions `gorm:"type:jsonb;not null" json:"conditions"`
	ConditionLogic string         `gorm:"type:varchar(3);not null;default:'AND'" json:"condition_logic"`
	Actions        RuleActions    `gorm:"type:jsonb;not null" json:"actions"`
	MatchCount     int64          `gorm:"not null;default:0" json:"match_count"`
	LastMatched    *time.Time     `json:"last_matched,omitempty"`
	CreatedAt      time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for TransactionRule
func (r *TransactionRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.ConditionLogic == "" {
		r.ConditionLogic = ConditionLogicAnd
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for TransactionRule
func (r *TransactionRule) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// TableName returns the table name for TransactionRule
func (r *TransactionRule) TableName() string {
	return "transaction_rules"
}

// Validate rejects malformed rules before any evaluation begins. A rule that
// fails here is never handed to the engine.
func (r *TransactionRule) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrRuleMissingUserID
	}

	if r.Name == "" {
		return ErrRuleMissingName
	}

	if len(r.Conditions) == 0 {
		return ErrRuleHasNoConditions
	}

	if len(r.Actions) == 0 {
		return ErrRuleHasNoActions
	}

	if r.ConditionLogic != ConditionLogicAnd && r.ConditionLogic != ConditionLogicOr {
		return ErrUnknownConditionLogic
	}

	for i, cond := range r.Conditions {
		if err := cond.Validate(); err != nil {
			return fmt.Errorf("condition %d: %w", i, err)
		}
	}

	for i, action := range r.Actions {
		if err := action.Validate(); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks the condition's field, operator and value compatibility.
// Ordering comparisons are only meaningful on amount and bookingDate.
func (c RuleCondition) Validate() error {
	if !IsValidConditionField(c.Field) {
		return fmt.Errorf("%w: %q", ErrUnknownConditionField, c.Field)
	}

	if !IsValidOperator(c.Operator) {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, c.Operator)
	}

	if IsOrderingOperator(c.Operator) && c.Field != FieldAmount && c.Field != FieldBookingDate {
		return fmt.Errorf("%w: %q is not allowed on field %q", ErrUnknownOperator, c.Operator, c.Field)
	}

	return nil
}

// Validate checks the action's type and value kind.
func (a RuleAction) Validate() error {
	switch a.Type {
	case ActionSetCategory, ActionSetDescription, ActionSetCounterparty:
		if !a.Value.IsString() {
			return fmt.Errorf("%w: %s requires a string value", ErrActionValueMismatch, a.Type)
		}
	case ActionSetExclude:
		if !a.Value.IsBool() {
			return fmt.Errorf("%w: %s requires a boolean value", ErrActionValueMismatch, a.Type)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActionType, a.Type)
	}

	return nil
}

// IsValidConditionField checks if field names a rule-addressable transaction field
func IsValidConditionField(field string) bool {
	switch field {
	case FieldCounterparty, FieldDescription, FieldAmount, FieldBookingDate, FieldCategory:
		return true
	default:
		return false
	}
}

// IsValidOperator checks if the operator is a supported condition operator
func IsValidOperator(op string) bool {
	switch op {
	case OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains,
		OperatorStartsWith, OperatorEndsWith, OperatorGreaterThan, OperatorLessThan,
		OperatorGreaterThanOrEqual, OperatorLessThanOrEqual:
		return true
	default:
		return false
	}
}

// IsOrderingOperator reports whether op compares magnitudes rather than text.
func IsOrderingOperator(op string) bool {
	switch op {
	case OperatorGreaterThan, OperatorLessThan, OperatorGreaterThanOrEqual, OperatorLessThanOrEqual:
		return true
	default:
		return false
	}
}

// IsStringOperator reports whether op is a text operator honoring CaseSensitive.
func IsStringOperator(op string) bool {
	switch op {
	case OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains,
		OperatorStartsWith, OperatorEndsWith:
		return true
	default:
		return false
	}
}
