package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingDate(t *testing.T) {
	v := NewValidator().GetValidate()

	type payload struct {
		Date string `validate:"omitempty,booking_date"`
	}

	testCases := []struct {
		name  string
		date  string
		valid bool
	}{
		{"valid date", "2025-03-15", true},
		{"empty is allowed via omitempty", "", true},
		{"wrong order", "15-03-2025", false},
		{"impossible day", "2025-02-30", false},
		{"not a date", "yesterday", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(payload{Date: tc.date})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateConditionFieldAndOperator(t *testing.T) {
	v := NewValidator().GetValidate()

	type condition struct {
		Field    string `validate:"condition_field"`
		Operator string `validate:"condition_operator"`
	}

	assert.NoError(t, v.Struct(condition{Field: "counterparty", Operator: "contains"}))
	assert.NoError(t, v.Struct(condition{Field: "amount", Operator: "greaterThanOrEqual"}))
	assert.Error(t, v.Struct(condition{Field: "merchant", Operator: "contains"}))
	assert.Error(t, v.Struct(condition{Field: "amount", Operator: "matchesRegex"}))
}

func TestValidateActionType(t *testing.T) {
	v := NewValidator().GetValidate()

	type action struct {
		Type string `validate:"action_type"`
	}

	assert.NoError(t, v.Struct(action{Type: "setCategory"}))
	assert.NoError(t, v.Struct(action{Type: "setExclude"}))
	assert.Error(t, v.Struct(action{Type: "deleteTransaction"}))
}
