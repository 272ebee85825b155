package record

import (
	"strconv"
	"strings"
)

// ValueKind tags a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindArray
)

// Value is one custom-field answer.
type Value struct {
	Kind  ValueKind
	Str   string
	Num   float64
	Bool  bool
	Items []string
}

func StringValue(s string) *Value   { return &Value{Kind: KindString, Str: s} }
func NumberValue(n float64) *Value  { return &Value{Kind: KindNumber, Num: n} }
func BoolValue(b bool) *Value       { return &Value{Kind: KindBool, Bool: b} }
func NullValue() *Value             { return &Value{Kind: KindNull} }
func ArrayValue(items ...string) *Value {
	return &Value{Kind: KindArray, Items: append([]string{}, items...)}
}

// IsNull reports whether v carries no answer. A nil Value is null.
func (v *Value) IsNull() bool {
	return v == nil || v.Kind == KindNull
}

// Scalar returns the stringified form of a non-array value.
func (v *Value) Scalar() (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case KindBool:
		return strconv.FormatBool(v.Bool), true
	}
	return "", false
}

// String renders the value for raw tables. Arrays render as a JSON-style list.
func (v *Value) String() string {
	if v.IsNull() {
		return "NULL"
	}
	if v.Kind == KindArray {
		return `["` + strings.Join(v.Items, `","`) + `"]`
	}
	s, _ := v.Scalar()
	return s
}
