package coerce

import (
	"errors"
	"fmt"
	"strings"
)

// Issue kinds (exported consts for IDE completion and type safety by convention)
const (
	KindStringType              = "string_type"
	KindBoolType                = "bool_type"
	KindBoolParsing             = "bool_parsing"
	KindIntType                 = "int_type"
	KindIntParsing              = "int_parsing"
	KindIntFromFloat            = "int_from_float"
	KindFloatType               = "float_type"
	KindFloatParsing            = "float_parsing"
	KindDateType                = "date_type"
	KindDateParsing             = "date_parsing"
	KindDateFromDatetimeInexact = "date_from_datetime_inexact"
	KindDatetimeType            = "datetime_type"
	KindDatetimeParsing         = "datetime_parsing"
	KindDictType                = "dict_type"
	// Boundary decode and schema construction errors.
	KindJSONInvalid   = "json_invalid"
	KindYAMLInvalid   = "yaml_invalid"
	KindSchemaInvalid = "schema_invalid"
)

// Issue represents a single validation failure.
type Issue struct {
	Kind    string // One of the kinds listed above.
	Loc     Loc    // Path from the top-level input to the offending value.
	Message string
	Input   any    // The offending input, preserved verbatim for diagnostics.
	URL     string // Optional documentation link; see Issues.WithDocURLs.
}

// withOuter returns a copy of the issue whose location gains item as its
// outermost segment.
func (it Issue) withOuter(item LocItem) Issue {
	loc := make(Loc, 0, len(it.Loc)+1)
	loc = append(loc, item)
	loc = append(loc, it.Loc...)
	it.Loc = loc
	return it
}

// Issues is a collection of validation failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. int_parsing at /1
		fmt.Fprintf(b, "%s at %s", it.Kind, it.Loc)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// WithDocURLs returns a copy of the issues with URL set to base + "/" + kind
// on each entry. The field is advisory; nothing in the engine reads it back.
func (iss Issues) WithDocURLs(base string) Issues {
	base = strings.TrimRight(base, "/")
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.URL = base + "/" + it.Kind
		out[i] = it
	}
	return out
}
