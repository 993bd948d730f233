package coerce

import (
	"context"
	"fmt"

	"github.com/reoring/coerce/i18n"
)

// Validate coerces an input value against the schema under the given
// strictness. On success it returns the typed output: bool, int64, float64,
// isodate.Date, isodate.DateTime, or map[any]any for Dict schemas. On
// failure the error is an Issues value carrying every failure found in one
// pass; use AsIssues or errors.As to inspect it.
//
// Validation is a pure, bounded computation: schemas and inputs are never
// mutated, no state is held between calls, and concurrent calls against the
// same schema are safe. The context is accepted for call-site symmetry with
// the surrounding ecosystem; no coercion blocks.
func Validate(ctx context.Context, s *Schema, v Value, mode Strictness) (any, error) {
	if s == nil {
		return nil, Issues{{Kind: KindSchemaInvalid, Message: i18n.T(KindSchemaInvalid, map[string]string{"error": "nil schema"})}}
	}
	out, iss := validateValue(s, v, mode)
	if iss != nil {
		return nil, iss
	}
	return out, nil
}

// ValidateString validates a raw string against the schema. It is the
// string entry point: the text is canonicalized and handed to the schema's
// coercer, so e.g. ValidateString(Int(), "1", Strict) yields int64(1).
func ValidateString(ctx context.Context, s *Schema, text string, mode Strictness) (any, error) {
	return Validate(ctx, s, Text(text), mode)
}

// ValidateBytes validates a raw byte sequence against the schema. The bytes
// are decoded as UTF-8 at the scalar boundary; invalid encodings fail with
// kind string_type.
func ValidateBytes(ctx context.Context, s *Schema, data []byte, mode Strictness) (any, error) {
	return Validate(ctx, s, Bytes(data), mode)
}

// ValidateAs validates and asserts the typed output to T.
func ValidateAs[T any](ctx context.Context, s *Schema, v Value, mode Strictness) (T, error) {
	out, err := Validate(ctx, s, v, mode)
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := out.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("coerce: schema %s produced %T, not %T", s.Name(), out, zero)
	}
	return t, nil
}
