package coerce

import (
	"fmt"

	"github.com/reoring/coerce/i18n"
)

// FromDefinition builds a Schema from a decoded schema definition, the shape
// produced by unmarshalling JSON or YAML:
//
//	{"type": "int"}
//	{"type": "dict", "keys": {"type": "int"}, "values": {"type": "date"}}
//
// A bare string ("int") is accepted as shorthand for {"type": "int"}.
// Invalid definitions fail with kind schema_invalid.
func FromDefinition(def any) (*Schema, error) {
	s, iss := fromDefinition(def, nil)
	if iss != nil {
		return nil, iss
	}
	return s, nil
}

func fromDefinition(def any, loc Loc) (*Schema, Issues) {
	switch d := def.(type) {
	case string:
		return schemaForTypeName(d, def, loc)
	case map[string]any:
		name, ok := d["type"].(string)
		if !ok {
			return nil, schemaIssue(loc, def, `missing or non-string "type"`)
		}
		if name != "dict" {
			return schemaForTypeName(name, def, loc)
		}
		keyDef, ok := d["keys"]
		if !ok {
			return nil, schemaIssue(loc, def, `"dict" requires a "keys" sub-schema`)
		}
		valueDef, ok := d["values"]
		if !ok {
			return nil, schemaIssue(loc, def, `"dict" requires a "values" sub-schema`)
		}
		key, kerr := fromDefinition(keyDef, append(loc, LocKey("keys")))
		if kerr != nil {
			return nil, kerr
		}
		if key.Type() == TypeDict {
			return nil, schemaIssue(append(loc, LocKey("keys")), keyDef, "dict keys must be scalar")
		}
		value, verr := fromDefinition(valueDef, append(loc, LocKey("values")))
		if verr != nil {
			return nil, verr
		}
		return Dict(key, value), nil
	default:
		return nil, schemaIssue(loc, def, fmt.Sprintf("expected an object or type name, got %T", def))
	}
}

func schemaForTypeName(name string, def any, loc Loc) (*Schema, Issues) {
	switch name {
	case "bool":
		return Bool(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "date":
		return Date(), nil
	case "datetime":
		return DateTime(), nil
	case "dict":
		return nil, schemaIssue(loc, def, `"dict" requires "keys" and "values" sub-schemas`)
	default:
		return nil, schemaIssue(loc, def, fmt.Sprintf("unknown schema type %q", name))
	}
}

func schemaIssue(loc Loc, input any, detail string) Issues {
	return Issues{{
		Kind:    KindSchemaInvalid,
		Loc:     append(Loc{}, loc...),
		Message: i18n.T(KindSchemaInvalid, map[string]string{"error": detail}),
		Input:   input,
	}}
}
