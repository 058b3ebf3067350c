package validation

import (
	"reflect"
	"strings"

	"bankrules/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("booking_date", validateBookingDate)
	_ = v.RegisterValidation("condition_field", validateConditionField)
	_ = v.RegisterValidation("condition_operator", validateConditionOperator)
	_ = v.RegisterValidation("action_type", validateActionType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateBookingDate validates that a value is a real calendar date in
// YYYY-MM-DD form
func validateBookingDate(fl validator.FieldLevel) bool {
	return models.IsValidBookingDate(fl.Field().String())
}

// validateConditionField validates that a value names a matchable transaction field
func validateConditionField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.FieldCounterparty, models.FieldDescription, models.FieldAmount,
		models.FieldBookingDate, models.FieldCategory:
		return true
	}
	return false
}

// validateConditionOperator validates that a value names a known comparison operator
func validateConditionOperator(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.OperatorEquals, models.OperatorNotEquals,
		models.OperatorContains, models.OperatorNotContains,
		models.OperatorStartsWith, models.OperatorEndsWith,
		models.OperatorGreaterThan, models.OperatorLessThan,
		models.OperatorGreaterThanOrEqual, models.OperatorLessThanOrEqual:
		return true
	}
	return false
}

// validateActionType validates that a value names a known rule action
func validateActionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.ActionSetCategory, models.ActionSetExclude,
		models.ActionSetDescription, models.ActionSetCounterparty:
		return true
	}
	return false
}
