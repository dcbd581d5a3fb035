// Package models defines data structures shared by the workbook parser.
package models

import "strconv"

// ValueKind discriminates the representations a cell value can take.
type ValueKind int

const (
	// KindEmpty marks a cell that holds no value. It is distinct from both
	// the empty string and the number zero.
	KindEmpty ValueKind = iota
	// KindInt marks an integer-valued numeric cell.
	KindInt
	// KindFloat marks a fractional numeric cell.
	KindFloat
	// KindText marks a textual cell.
	KindText
)

// Value is a tagged cell value. Exactly one of the payload fields is
// meaningful, selected by Kind. Values are comparable with ==.
type Value struct {
	// Kind selects the payload field.
	Kind ValueKind `json:"kind"`
	// Int is the payload for KindInt.
	Int int64 `json:"int,omitempty"`
	// Float is the payload for KindFloat.
	Float float64 `json:"float,omitempty"`
	// Text is the payload for KindText.
	Text string `json:"text,omitempty"`
}

// EmptyValue returns the distinguished missing-value marker.
func EmptyValue() Value {
	return Value{Kind: KindEmpty}
}

// IntValue returns an integer-valued numeric Value.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue returns a fractional numeric Value.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// TextValue returns a textual Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsEmpty reports whether the value is the missing marker.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// IsNumeric reports whether the value is an integer or a float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// String renders the value for delimited-text output. Numeric values use a
// plain decimal representation, never scientific notation, and the missing
// marker renders as an empty field.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}
