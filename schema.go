package coerce

import "fmt"

// Type enumerates the schema variants. The set is closed: each variant has
// exactly one coercion routine, dispatched by a single switch in validate.
type Type uint8

const (
	TypeBool Type = iota
	TypeInt
	TypeFloat
	TypeDate
	TypeDateTime
	TypeDict
)

// String returns the wire name of the type ("bool", "int", ...).
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDate:
		return "date"
	case TypeDateTime:
		return "datetime"
	case TypeDict:
		return "dict"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Schema is an immutable description of an expected value shape. A Dict
// schema exclusively owns its key/value sub-schemas; schemas carry no runtime
// state and are safe for concurrent use once constructed.
type Schema struct {
	typ   Type
	key   *Schema
	value *Schema
}

// Bool returns the boolean schema.
func Bool() *Schema { return &Schema{typ: TypeBool} }

// Int returns the 64-bit integer schema.
func Int() *Schema { return &Schema{typ: TypeInt} }

// Float returns the double-precision float schema.
func Float() *Schema { return &Schema{typ: TypeFloat} }

// Date returns the calendar-date schema.
func Date() *Schema { return &Schema{typ: TypeDate} }

// DateTime returns the date-time schema.
func DateTime() *Schema { return &Schema{typ: TypeDateTime} }

// Dict returns a mapping schema that coerces every key with key and every
// value with value. Both sub-schemas must be non-nil, and the key schema must
// be scalar: coerced dict outputs are not usable as map keys.
func Dict(key, value *Schema) *Schema {
	if key == nil || value == nil {
		panic("coerce.Dict: nil sub-schema")
	}
	if key.typ == TypeDict {
		panic("coerce.Dict: dict keys must be scalar")
	}
	return &Schema{typ: TypeDict, key: key, value: value}
}

// Type returns the schema variant.
func (s *Schema) Type() Type { return s.typ }

// Key returns the key sub-schema of a Dict schema, nil otherwise.
func (s *Schema) Key() *Schema { return s.key }

// Value returns the value sub-schema of a Dict schema, nil otherwise.
func (s *Schema) Value() *Schema { return s.value }

// Name returns a composite display name, e.g. "dict[int,date]".
func (s *Schema) Name() string {
	if s.typ == TypeDict {
		return fmt.Sprintf("dict[%s,%s]", s.key.Name(), s.value.Name())
	}
	return s.typ.String()
}
