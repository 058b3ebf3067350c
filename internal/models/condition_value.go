package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the payload of a ConditionValue.
type ValueKind string

const (
	ValueKindString  ValueKind = "string"
	ValueKindNumber  ValueKind = "number"
	ValueKindBoolean ValueKind = "boolean"
)

// ConditionValue is the loosely-typed value carried by rule conditions and
// actions. Rules arrive as JSON where the value may be a bare string, number
// or boolean; the engine checks kind compatibility against the target field
// before applying an operator and fails closed on mismatch. Dates travel as
// ISO-8601 strings.
type ConditionValue struct {
	Kind ValueKind
	Str  string
	Num  decimal.Decimal
	Bool bool
}

// StringValue constructs a string-kinded value.
func StringValue(s string) ConditionValue {
	return ConditionValue{Kind: ValueKindString, Str: s}
}

// NumberValue constructs a number-kinded value.
func NumberValue(d decimal.Decimal) ConditionValue {
	return ConditionValue{Kind: ValueKindNumber, Num: d}
}

// BoolValue constructs a boolean-kinded value.
func BoolValue(b bool) ConditionValue {
	return ConditionValue{Kind: ValueKindBoolean, Bool: b}
}

// IsString reports whether the value carries a string payload.
func (v ConditionValue) IsString() bool { return v.Kind == ValueKindString }

// IsNumber reports whether the value carries a numeric payload.
func (v ConditionValue) IsNumber() bool { return v.Kind == ValueKindNumber }

// IsBool reports whether the value carries a boolean payload.
func (v ConditionValue) IsBool() bool { return v.Kind == ValueKindBoolean }

// IsZero reports whether the value was never set.
func (v ConditionValue) IsZero() bool { return v.Kind == "" }

// String renders the payload for logging and error messages.
func (v ConditionValue) String() string {
	switch v.Kind {
	case ValueKindString:
		return v.Str
	case ValueKindNumber:
		return v.Num.String()
	case ValueKindBoolean:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return ""
	}
}

// MarshalJSON emits the bare JSON scalar, not the tagged wrapper.
func (v ConditionValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueKindString:
		return json.Marshal(v.Str)
	case ValueKindNumber:
		return []byte(v.Num.String()), nil
	case ValueKindBoolean:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a bare JSON string, number or boolean.
func (v *ConditionValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = StringValue(val)
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return fmt.Errorf("invalid numeric condition value %q: %w", val.String(), err)
		}
		*v = NumberValue(d)
	case bool:
		*v = BoolValue(val)
	case nil:
		*v = ConditionValue{}
	default:
		return fmt.Errorf("unsupported condition value type %T", raw)
	}

	return nil
}
