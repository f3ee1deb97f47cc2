// Package docstore defines the document model shared by the collection-store
// backends and the generic query engine: a closed union of scalar kinds, an
// opaque field-bag document, and the store interface itself.
package docstore

import (
	"encoding/json"
	"fmt"
)

// Kind enumerates the value kinds a document field can hold.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindStringArray
	KindNumberArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindStringArray:
		return "string[]"
	case KindNumberArray:
		return "number[]"
	}
	return "unknown"
}

// Value is one document field value: a tagged union over the closed set of
// scalar kinds. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	strs []string
	nums []float64
}

func Null() Value             { return Value{} }
func String(s string) Value   { return Value{kind: KindString, str: s} }
func Number(f float64) Value  { return Value{kind: KindNumber, num: f} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }

func StringArray(ss []string) Value  { return Value{kind: KindStringArray, strs: ss} }
func NumberArray(ns []float64) Value { return Value{kind: KindNumberArray, nums: ns} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload; ok is false for any other kind.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload; ok is false for any other kind.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean payload; ok is false for any other kind.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsStringArray returns the string-array payload; ok is false otherwise.
func (v Value) AsStringArray() ([]string, bool) { return v.strs, v.kind == KindStringArray }

// AsNumberArray returns the number-array payload; ok is false otherwise.
func (v Value) AsNumberArray() ([]float64, bool) { return v.nums, v.kind == KindNumberArray }

// Equal reports strict equality: kinds must match, payloads must be equal.
// Arrays compare element-wise in order. There is no cross-kind coercion.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindStringArray:
		if len(v.strs) != len(o.strs) {
			return false
		}
		for i := range v.strs {
			if v.strs[i] != o.strs[i] {
				return false
			}
		}
		return true
	case KindNumberArray:
		if len(v.nums) != len(o.nums) {
			return false
		}
		for i := range v.nums {
			if v.nums[i] != o.nums[i] {
				return false
			}
		}
		return true
	}
	return false
}

// Contains reports whether v is an array containing member under strict
// equality. Non-array receivers always report false.
func (v Value) Contains(member Value) bool {
	switch v.kind {
	case KindStringArray:
		s, ok := member.AsString()
		if !ok {
			return false
		}
		for _, candidate := range v.strs {
			if candidate == s {
				return true
			}
		}
	case KindNumberArray:
		n, ok := member.AsNumber()
		if !ok {
			return false
		}
		for _, candidate := range v.nums {
			if candidate == n {
				return true
			}
		}
	}
	return false
}

// FromAny converts a dynamically typed value (decoded JSON or BSON) into a
// Value. Integer types are widened to float64. Arrays must be homogeneous
// strings or numbers; an empty array becomes an empty string array.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(float64(v)), nil
	case int:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case []string:
		return StringArray(v), nil
	case []float64:
		return NumberArray(v), nil
	case []any:
		return fromAnySlice(v)
	case Value:
		return v, nil
	default:
		return Value{}, fmt.Errorf("docstore: unsupported value type %T", raw)
	}
}

func fromAnySlice(raw []any) (Value, error) {
	if len(raw) == 0 {
		return StringArray(nil), nil
	}

	switch raw[0].(type) {
	case string:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("docstore: mixed-type array element %T", item)
			}
			out = append(out, s)
		}
		return StringArray(out), nil
	default:
		out := make([]float64, 0, len(raw))
		for _, item := range raw {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			n, ok := v.AsNumber()
			if !ok {
				return Value{}, fmt.Errorf("docstore: mixed-type array element %T", item)
			}
			out = append(out, n)
		}
		return NumberArray(out), nil
	}
}

// ToAny converts the Value back to a plain Go representation suitable for
// JSON or BSON encoding.
func (v Value) ToAny() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindStringArray:
		return v.strs
	case KindNumberArray:
		return v.nums
	default:
		return nil
	}
}

// MarshalJSON encodes the underlying payload directly (null, string, number,
// bool, or array).
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON decodes any JSON scalar or homogeneous array into a Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
