package entity

import (
	"fmt"
	"time"
)

// Kind enumerates the closed set of scalar kinds that an entity
// field can hold. Serialization rules declare the expected kind of
// every field they include.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindBool
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a typed scalar field value. Encode converts the value to
// its wire representation (string, int64 or bool).
type Value interface {
	Kind() Kind
	Encode() (any, error)
}

// TextValue stores values of kind text
type TextValue struct {
	Val string
}

func (tv TextValue) Kind() Kind           { return KindText }
func (tv TextValue) Encode() (any, error) { return tv.Val, nil }

// NewTextValue accepts a value as a string and returns a new TextValue
func NewTextValue(value string) TextValue {
	return TextValue{Val: value}
}

// IntValue stores values of kind int
type IntValue struct {
	Val int64
}

func (iv IntValue) Kind() Kind           { return KindInt }
func (iv IntValue) Encode() (any, error) { return iv.Val, nil }

// NewIntValue accepts a value as an int64 and returns a new IntValue
func NewIntValue(value int64) IntValue {
	return IntValue{Val: value}
}

// BoolValue stores values of kind bool
type BoolValue struct {
	Val bool
}

func (bv BoolValue) Kind() Kind           { return KindBool }
func (bv BoolValue) Encode() (any, error) { return bv.Val, nil }

// NewBoolValue accepts a value as a bool and returns a new BoolValue
func NewBoolValue(value bool) BoolValue {
	return BoolValue{Val: value}
}

// ISO8601Date is the wire format for values of kind date.
const ISO8601Date string = "2006-01-02"

// DateValue stores values of kind date. A DateValue constructed from
// an unvalidated string is parsed lazily, so a bad date surfaces as a
// conversion error at encode time rather than being coerced to null.
type DateValue struct {
	Val time.Time

	raw        string
	fromString bool
}

func (dv DateValue) Kind() Kind { return KindDate }

func (dv DateValue) Encode() (any, error) {
	if dv.fromString {
		parsed, err := time.Parse(ISO8601Date, dv.raw)
		if err != nil {
			return nil, fmt.Errorf("unparsable date %q: %w", dv.raw, err)
		}
		return parsed.Format(ISO8601Date), nil
	}

	return dv.Val.Format(ISO8601Date), nil
}

// NewDateValue accepts a timestamp and returns a new DateValue
func NewDateValue(value time.Time) DateValue {
	return DateValue{Val: value}
}

// NewDateValueFromString accepts a date on ISO-8601 form (2006-01-02)
// and returns a DateValue that validates the input on first encode
func NewDateValueFromString(value string) DateValue {
	return DateValue{raw: value, fromString: true}
}
