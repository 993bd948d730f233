package coerce

import (
	"bytes"
	"context"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/coerce/i18n"
)

// ValidateJSON decodes a JSON document into the engine's input
// representation and validates it against the schema. Object member order is
// preserved; numbers are carried as their literal text so the schema's
// numeric grammar decides how they parse; JSON booleans become native
// booleans. Malformed JSON fails with kind json_invalid.
func ValidateJSON(ctx context.Context, s *Schema, data []byte, mode Strictness) (any, error) {
	v, err := ValueFromJSON(data)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, s, v, mode)
}

// ValueFromJSON converts a JSON document into a Value tree.
func ValueFromJSON(data []byte) (Value, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, jsonIssue(err, data)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, jsonIssue(fmt.Errorf("unexpected trailing data"), data)
	}
	return v, nil
}

func decodeJSONValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *j.Decoder, tok j.Token) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			var pairs []Pair
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				pairs = append(pairs, Pair{Key: Text(key), Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Mapping(pairs...), nil
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Sequence(items...), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return Text(t), nil
	case j.Number:
		return Text(t.String()), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonIssue(err error, data []byte) Issues {
	return Issues{{
		Kind:    KindJSONInvalid,
		Message: i18n.T(KindJSONInvalid, map[string]string{"error": err.Error()}),
		Input:   string(data),
	}}
}
