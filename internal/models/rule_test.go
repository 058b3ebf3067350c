package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRuleTestSuite struct {
	suite.Suite
}

func TestTransactionRuleSuite(t *testing.T) {
	suite.Run(t, new(TransactionRuleTestSuite))
}

func (s *TransactionRuleTestSuite) validRule() *TransactionRule {
	return &TransactionRule{
		UserID:         uuid.New(),
		Name:           "Streaming subscriptions",
		Enabled:        true,
		ConditionLogic: ConditionLogicAnd,
		Conditions: RuleConditions{
			{Field: FieldCounterparty, Operator: OperatorContains, Value: StringValue("netflix")},
		},
		Actions: RuleActions{
			{Type: ActionSetCategory, Value: StringValue("Subscriptions")},
		},
	}
}

func (s *TransactionRuleTestSuite) TestValidate_ValidRule() {
	s.NoError(s.validRule().Validate())
}

func (s *TransactionRuleTestSuite) TestValidate_StructuralErrors() {
	testCases := []struct {
		name    string
		mutate  func(*TransactionRule)
		wantErr error
	}{
		{"missing user", func(r *TransactionRule) { r.UserID = uuid.Nil }, ErrRuleMissingUserID},
		{"missing name", func(r *TransactionRule) { r.Name = "" }, ErrRuleMissingName},
		{"no conditions", func(r *TransactionRule) { r.Conditions = nil }, ErrRuleHasNoConditions},
		{"no actions", func(r *TransactionRule) { r.Actions = nil }, ErrRuleHasNoActions},
		{"bad logic", func(r *TransactionRule) { r.ConditionLogic = "XOR" }, ErrUnknownConditionLogic},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rule := s.validRule()
			tc.mutate(rule)
			s.ErrorIs(rule.Validate(), tc.wantErr)
		})
	}
}

func (s *TransactionRuleTestSuite) TestValidate_UnknownConditionField() {
	rule := s.validRule()
	rule.Conditions[0].Field = "merchant"

	s.ErrorIs(rule.Validate(), ErrUnknownConditionField)
}

func (s *TransactionRuleTestSuite) TestValidate_UnknownOperator() {
	rule := s.validRule()
	rule.Conditions[0].Operator = "matchesRegex"

	s.ErrorIs(rule.Validate(), ErrUnknownOperator)
}

func (s *TransactionRuleTestSuite) TestValidate_OrderingOperatorOnTextField() {
	rule := s.validRule()
	rule.Conditions[0] = RuleCondition{
		Field:    FieldCounterparty,
		Operator: OperatorGreaterThan,
		Value:    StringValue("x"),
	}

	s.ErrorIs(rule.Validate(), ErrUnknownOperator)
}

func (s *TransactionRuleTestSuite) TestValidate_OrderingOperatorOnAmount() {
	rule := s.validRule()
	rule.Conditions[0] = RuleCondition{
		Field:    FieldAmount,
		Operator: OperatorGreaterThan,
		Value:    NumberValue(decimal.NewFromInt(100)),
	}

	s.NoError(rule.Validate())
}

func (s *TransactionRuleTestSuite) TestValidate_ActionValueMismatch() {
	rule := s.validRule()
	rule.Actions[0] = RuleAction{Type: ActionSetExclude, Value: StringValue("yes")}
	s.ErrorIs(rule.Validate(), ErrActionValueMismatch)

	rule.Actions[0] = RuleAction{Type: ActionSetCategory, Value: BoolValue(true)}
	s.ErrorIs(rule.Validate(), ErrActionValueMismatch)
}

func (s *TransactionRuleTestSuite) TestValidate_UnknownActionType() {
	rule := s.validRule()
	rule.Actions[0] = RuleAction{Type: "deleteTransaction", Value: StringValue("x")}

	s.ErrorIs(rule.Validate(), ErrUnknownActionType)
}

func (s *TransactionRuleTestSuite) TestBeforeCreate_AppliesDefaults() {
	rule := s.validRule()
	rule.ConditionLogic = ""

	s.NoError(rule.BeforeCreate(nil))
	s.NotEqual(uuid.Nil, rule.ID)
	s.Equal(ConditionLogicAnd, rule.ConditionLogic)
	s.False(rule.CreatedAt.IsZero())
}

func (s *TransactionRuleTestSuite) TestConditionsRoundTripThroughJSONColumn() {
	rule := s.validRule()

	raw, err := rule.Conditions.Value()
	s.Require().NoError(err)

	var scanned RuleConditions
	s.Require().NoError(scanned.Scan(raw))
	s.Require().Len(scanned, 1)
	s.Equal(FieldCounterparty, scanned[0].Field)
	s.Equal(OperatorContains, scanned[0].Operator)
	s.True(scanned[0].Value.IsString())
	s.Equal("netflix", scanned[0].Value.Str)
}

func (s *TransactionRuleTestSuite) TestNilConditionsStoreAsEmptyArray() {
	var conditions RuleConditions

	raw, err := conditions.Value()
	s.Require().NoError(err)
	s.Equal("[]", raw)
}
