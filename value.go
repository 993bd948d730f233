package coerce

import (
	"fmt"
	"unicode/utf8"

	"github.com/reoring/coerce/isodate"
)

// valueKind enumerates the input shapes the engine accepts at the boundary.
type valueKind uint8

const (
	valueText valueKind = iota
	valueBytes
	valueBool
	valueInt
	valueFloat
	valueDate
	valueDateTime
	valueMapping
	valueSequence
	valueNull
)

// Pair is one (key, value) entry of a Mapping input. The pairing preserves
// the caller's order; the engine imposes no ordering on results.
type Pair struct {
	Key   Value
	Value Value
}

// Value is a tagged union over the shapes the engine accepts: text, byte
// sequences, mappings, and already-typed natives. Construct values with the
// Text/Bytes/Mapping/...Value helpers; the zero Value is Text("").
type Value struct {
	kind  valueKind
	str   string
	raw   []byte
	b     bool
	i     int64
	f     float64
	d     isodate.Date
	dt    isodate.DateTime
	pairs []Pair
}

// Text wraps a string input.
func Text(s string) Value { return Value{kind: valueText, str: s} }

// Bytes wraps a byte-sequence input; it is decoded as UTF-8 at the scalar
// boundary.
func Bytes(b []byte) Value { return Value{kind: valueBytes, raw: b} }

// BoolValue wraps a native boolean.
func BoolValue(b bool) Value { return Value{kind: valueBool, b: b} }

// IntValue wraps a native integer.
func IntValue(i int64) Value { return Value{kind: valueInt, i: i} }

// FloatValue wraps a native float.
func FloatValue(f float64) Value { return Value{kind: valueFloat, f: f} }

// DateValue wraps an already-typed calendar date.
func DateValue(d isodate.Date) Value { return Value{kind: valueDate, d: d} }

// DateTimeValue wraps an already-typed date-time.
func DateTimeValue(dt isodate.DateTime) Value { return Value{kind: valueDateTime, dt: dt} }

// Mapping wraps an ordered collection of key/value pairs.
func Mapping(pairs ...Pair) Value { return Value{kind: valueMapping, pairs: pairs} }

// Sequence wraps an ordered list. No schema in this engine accepts it; the
// shape exists so the JSON/YAML decoders can represent any document and the
// engine can reject it with a precise kind and input echo.
func Sequence(items ...Value) Value {
	ps := make([]Pair, len(items))
	for i, it := range items {
		ps[i] = Pair{Key: IntValue(int64(i)), Value: it}
	}
	return Value{kind: valueSequence, pairs: ps}
}

// Null is the explicit null input. Every schema rejects it with its *_type
// kind.
func Null() Value { return Value{kind: valueNull} }

// Interface returns the value in its caller-facing representation, used to
// echo offending inputs in issues.
func (v Value) Interface() any {
	switch v.kind {
	case valueText:
		return v.str
	case valueBytes:
		return v.raw
	case valueBool:
		return v.b
	case valueInt:
		return v.i
	case valueFloat:
		return v.f
	case valueDate:
		return v.d
	case valueDateTime:
		return v.dt
	case valueMapping:
		return v.pairs
	case valueSequence:
		items := make([]any, len(v.pairs))
		for i, p := range v.pairs {
			items[i] = p.Value.Interface()
		}
		return items
	default:
		return nil
	}
}

// text normalizes Text and Bytes into a single decoded string form. Any
// other shape, and byte sequences that are not valid UTF-8, report ok=false;
// the caller fails with kind string_type. This layer deliberately does not
// distinguish encoding errors from type errors.
func (v Value) text() (string, bool) {
	switch v.kind {
	case valueText:
		return v.str, true
	case valueBytes:
		if !utf8.Valid(v.raw) {
			return "", false
		}
		return string(v.raw), true
	default:
		return "", false
	}
}

// locItem renders the value as an error-path segment: text keys become key
// segments, integer keys become index segments, everything else renders via
// its display form.
func (v Value) locItem() LocItem {
	switch v.kind {
	case valueText:
		return LocKey(v.str)
	case valueBytes:
		return LocKey(string(v.raw))
	case valueInt:
		return LocIndex(int(v.i))
	default:
		return LocKey(fmt.Sprint(v.Interface()))
	}
}
