package coerce

import (
	"math"
	"strconv"
	"strings"

	"github.com/reoring/coerce/i18n"
	"github.com/reoring/coerce/isodate"
)

// issueOf builds a single-issue slice at the current (relative) location.
func issueOf(kind string, v Value, params map[string]string) Issues {
	return Issues{{
		Kind:    kind,
		Message: i18n.T(kind, params),
		Input:   v.Interface(),
	}}
}

// validateValue dispatches on the schema variant. Locations in returned
// issues are relative to v; container coercers prepend their own segment.
func validateValue(s *Schema, v Value, mode Strictness) (any, Issues) {
	switch s.typ {
	case TypeBool:
		return coerceBool(v, mode)
	case TypeInt:
		return coerceInt(v, mode)
	case TypeFloat:
		return coerceFloat(v, mode)
	case TypeDate:
		return coerceDate(v, mode)
	case TypeDateTime:
		return coerceDateTime(v, mode)
	case TypeDict:
		return coerceDict(s, v, mode)
	default:
		return nil, issueOf(KindSchemaInvalid, v, map[string]string{"error": "unknown schema type"})
	}
}

// coerceBool accepts a native boolean in both modes. Lax mode additionally
// interprets the closed literal set below from text or bytes; strict mode
// rejects text and bytes with string_type even when they would lax-parse.
func coerceBool(v Value, mode Strictness) (any, Issues) {
	switch v.kind {
	case valueBool:
		return v.b, nil
	case valueText, valueBytes:
		if mode == Strict {
			return nil, issueOf(KindStringType, v, nil)
		}
		s, ok := v.text()
		if !ok {
			return nil, issueOf(KindStringType, v, nil)
		}
		b, ok := strAsBool(s)
		if !ok {
			return nil, issueOf(KindBoolParsing, v, nil)
		}
		return b, nil
	case valueMapping:
		return nil, issueOf(KindStringType, v, nil)
	default:
		return nil, issueOf(KindBoolType, v, nil)
	}
}

// strAsBool matches the lax boolean literal table, case-insensitively:
// true:  1, on, t, true, y, yes
// false: 0, off, f, false, n, no
func strAsBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "on", "t", "true", "y", "yes":
		return true, true
	case "0", "off", "f", "false", "n", "no":
		return false, true
	}
	return false, false
}

// coerceInt parses base-10 integer text in both modes; the strict/lax switch
// only gates the float-to-int narrowing of native floats.
func coerceInt(v Value, mode Strictness) (any, Issues) {
	switch v.kind {
	case valueInt:
		return v.i, nil
	case valueText, valueBytes:
		s, ok := v.text()
		if !ok {
			return nil, issueOf(KindStringType, v, nil)
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, issueOf(KindIntParsing, v, nil)
		}
		return i, nil
	case valueFloat:
		if mode == Strict {
			return nil, issueOf(KindIntType, v, nil)
		}
		f := v.f
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, issueOf(KindIntParsing, v, nil)
		}
		if math.Trunc(f) != f {
			return nil, issueOf(KindIntFromFloat, v, nil)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, issueOf(KindIntParsing, v, nil)
		}
		return int64(f), nil
	case valueMapping:
		return nil, issueOf(KindStringType, v, nil)
	default:
		return nil, issueOf(KindIntType, v, nil)
	}
}

// coerceFloat parses decimal float text in both modes; equality is by
// numeric value, so "1.10" and "1.1" coerce to the identical float64.
func coerceFloat(v Value, mode Strictness) (any, Issues) {
	switch v.kind {
	case valueFloat:
		return v.f, nil
	case valueInt:
		if mode == Strict {
			return nil, issueOf(KindFloatType, v, nil)
		}
		return float64(v.i), nil
	case valueText, valueBytes:
		s, ok := v.text()
		if !ok {
			return nil, issueOf(KindStringType, v, nil)
		}
		f, ok := strAsFloat(s)
		if !ok {
			return nil, issueOf(KindFloatParsing, v, nil)
		}
		return f, nil
	case valueMapping:
		return nil, issueOf(KindStringType, v, nil)
	default:
		return nil, issueOf(KindFloatType, v, nil)
	}
}

// strAsFloat accepts decimal literals with optional sign and exponent plus
// the case-insensitive nan/inf/infinity forms. Go-literal extras that the
// original grammar rejects (digit underscores, hex floats) are refused before
// delegating to strconv.
func strAsFloat(s string) (float64, bool) {
	if strings.ContainsAny(s, "_xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// coerceDate parses YYYY-MM-DD in both modes. Lax mode additionally narrows
// datetime text and native datetimes whose time-of-day is exactly midnight;
// a non-midnight datetime is date_from_datetime_inexact in lax mode and the
// generic date_parsing (text) or date_type (native) in strict mode, which
// never attempts the narrowing path.
func coerceDate(v Value, mode Strictness) (any, Issues) {
	switch v.kind {
	case valueDate:
		return v.d, nil
	case valueDateTime:
		if mode == Strict {
			return nil, issueOf(KindDateType, v, nil)
		}
		if v.dt.Time.IsMidnight() {
			return v.dt.Date, nil
		}
		return nil, issueOf(KindDateFromDatetimeInexact, v, nil)
	case valueText, valueBytes:
		s, ok := v.text()
		if !ok {
			return nil, issueOf(KindStringType, v, nil)
		}
		d, derr := isodate.ParseDate(s)
		if derr == nil {
			return d, nil
		}
		dateIssue := issueOf(KindDateParsing, v, map[string]string{"error": derr.Error()})
		if mode == Strict {
			return nil, dateIssue
		}
		dt, dtErr := isodate.ParseDateTime(s)
		if dtErr != nil {
			return nil, dateIssue
		}
		if dt.Time.IsMidnight() {
			return dt.Date, nil
		}
		return nil, issueOf(KindDateFromDatetimeInexact, v, nil)
	case valueMapping:
		return nil, issueOf(KindStringType, v, nil)
	default:
		return nil, issueOf(KindDateType, v, nil)
	}
}

// coerceDateTime parses the fixed datetime grammar from text in both modes.
// Lax mode promotes a native date to midnight.
func coerceDateTime(v Value, mode Strictness) (any, Issues) {
	switch v.kind {
	case valueDateTime:
		return v.dt, nil
	case valueDate:
		if mode == Strict {
			return nil, issueOf(KindDatetimeType, v, nil)
		}
		return isodate.Midnight(v.d), nil
	case valueText, valueBytes:
		s, ok := v.text()
		if !ok {
			return nil, issueOf(KindStringType, v, nil)
		}
		dt, err := isodate.ParseDateTime(s)
		if err != nil {
			return nil, issueOf(KindDatetimeParsing, v, map[string]string{"error": err.Error()})
		}
		return dt, nil
	case valueMapping:
		return nil, issueOf(KindStringType, v, nil)
	default:
		return nil, issueOf(KindDatetimeType, v, nil)
	}
}
