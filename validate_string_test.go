package coerce_test

import (
	"context"
	"testing"

	coerce "github.com/reoring/coerce"
	"github.com/reoring/coerce/isodate"
)

func mustDate(t *testing.T, y, m, d int) isodate.Date {
	t.Helper()
	dd, err := isodate.NewDate(y, m, d)
	if err != nil {
		t.Fatalf("bad test date: %v", err)
	}
	return dd
}

func wantKind(t *testing.T, err error, kind string) {
	t.Helper()
	iss, ok := coerce.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %v", err)
	}
	if len(iss) != 1 || iss[0].Kind != kind {
		t.Fatalf("expected single %s issue, got %v", kind, iss)
	}
}

func TestBool_LaxLiteralSet(t *testing.T) {
	ctx := context.Background()
	s := coerce.Bool()

	truthy := []string{"1", "on", "t", "true", "y", "yes", "True", "YES", "On"}
	falsy := []string{"0", "off", "f", "false", "n", "no", "False", "NO", "Off"}

	for _, lit := range truthy {
		v, err := coerce.ValidateString(ctx, s, lit, coerce.Lax)
		if err != nil || v != true {
			t.Fatalf("lax %q: expected true, got v=%v err=%v", lit, v, err)
		}
	}
	for _, lit := range falsy {
		v, err := coerce.ValidateString(ctx, s, lit, coerce.Lax)
		if err != nil || v != false {
			t.Fatalf("lax %q: expected false, got v=%v err=%v", lit, v, err)
		}
	}

	// The same texts under strict validation fail with string_type, even the
	// ones that lax-parse cleanly.
	for _, lit := range append(truthy, falsy...) {
		_, err := coerce.ValidateString(ctx, s, lit, coerce.Strict)
		wantKind(t, err, coerce.KindStringType)
	}
}

func TestBool_LaxUnknownLiteral(t *testing.T) {
	_, err := coerce.ValidateString(context.Background(), coerce.Bool(), "maybe", coerce.Lax)
	wantKind(t, err, coerce.KindBoolParsing)
}

func TestBool_NativeAcceptedInBothModes(t *testing.T) {
	ctx := context.Background()
	for _, mode := range []coerce.Strictness{coerce.Lax, coerce.Strict} {
		v, err := coerce.Validate(ctx, coerce.Bool(), coerce.BoolValue(true), mode)
		if err != nil || v != true {
			t.Fatalf("%v: expected true, got v=%v err=%v", mode, v, err)
		}
	}
}

func TestBool_StrictBytesRejected(t *testing.T) {
	_, err := coerce.ValidateBytes(context.Background(), coerce.Bool(), []byte("true"), coerce.Strict)
	wantKind(t, err, coerce.KindStringType)
}

func TestValidateString_Scalars(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		schema *coerce.Schema
		input  string
		mode   coerce.Strictness
		want   any
		kind   string // expected issue kind when want is nil
	}{
		{"int lax", coerce.Int(), "1", coerce.Lax, int64(1), ""},
		{"int strict", coerce.Int(), "1", coerce.Strict, int64(1), ""},
		{"int negative", coerce.Int(), "-42", coerce.Strict, int64(-42), ""},
		{"int garbage strict", coerce.Int(), "xxx", coerce.Strict, nil, coerce.KindIntParsing},
		{"int garbage lax", coerce.Int(), "xxx", coerce.Lax, nil, coerce.KindIntParsing},
		{"int fractional text", coerce.Int(), "1.5", coerce.Lax, nil, coerce.KindIntParsing},
		{"int whitespace", coerce.Int(), " 1", coerce.Lax, nil, coerce.KindIntParsing},
		{"float lax", coerce.Float(), "1.1", coerce.Lax, 1.1, ""},
		{"float trailing zero lax", coerce.Float(), "1.10", coerce.Lax, 1.1, ""},
		{"float strict", coerce.Float(), "1.1", coerce.Strict, 1.1, ""},
		{"float trailing zero strict", coerce.Float(), "1.10", coerce.Strict, 1.1, ""},
		{"float exponent", coerce.Float(), "1e3", coerce.Lax, 1000.0, ""},
		{"float garbage", coerce.Float(), "abc", coerce.Lax, nil, coerce.KindFloatParsing},
		{"float underscores", coerce.Float(), "1_000.0", coerce.Lax, nil, coerce.KindFloatParsing},
		{"float hex", coerce.Float(), "0x1p-2", coerce.Lax, nil, coerce.KindFloatParsing},
		{"date lax", coerce.Date(), "2017-01-01", coerce.Lax, isodate.Date{Year: 2017, Month: 1, Day: 1}, ""},
		{"date strict", coerce.Date(), "2017-01-01", coerce.Strict, isodate.Date{Year: 2017, Month: 1, Day: 1}, ""},
		{"date from datetime inexact lax", coerce.Date(), "2017-01-01T12:13:14.567", coerce.Lax, nil, coerce.KindDateFromDatetimeInexact},
		{"date from datetime strict", coerce.Date(), "2017-01-01T12:13:14.567", coerce.Strict, nil, coerce.KindDateParsing},
		{"date from midnight lax", coerce.Date(), "2017-01-01T00:00:00", coerce.Lax, isodate.Date{Year: 2017, Month: 1, Day: 1}, ""},
		{"date from midnight strict", coerce.Date(), "2017-01-01T00:00:00", coerce.Strict, nil, coerce.KindDateParsing},
		{"date malformed lax", coerce.Date(), "2017-13-01", coerce.Lax, nil, coerce.KindDateParsing},
		{"date malformed strict", coerce.Date(), "banana", coerce.Strict, nil, coerce.KindDateParsing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerce.ValidateString(ctx, tc.schema, tc.input, tc.mode)
			if tc.kind != "" {
				wantKind(t, err, tc.kind)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestValidateString_Datetime(t *testing.T) {
	ctx := context.Background()
	want := isodate.DateTime{
		Date: mustDate(t, 2017, 1, 1),
		Time: isodate.Time{Hour: 12, Minute: 13, Second: 14, Microsecond: 567000},
	}
	for _, mode := range []coerce.Strictness{coerce.Lax, coerce.Strict} {
		got, err := coerce.ValidateString(ctx, coerce.DateTime(), "2017-01-01T12:13:14.567", mode)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", mode, err)
		}
		if got != want {
			t.Fatalf("%v: got %v, want %v", mode, got, want)
		}
	}

	_, err := coerce.ValidateString(ctx, coerce.DateTime(), "2017-01-01", coerce.Lax)
	wantKind(t, err, coerce.KindDatetimeParsing)
}

func TestValidateString_DatetimeOffsetForms(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		input  string
		offset int
	}{
		{"2017-01-01T12:00:00Z", 0},
		{"2017-01-01T12:00:00z", 0},
		{"2017-01-01T12:00:00+09:00", 9 * 3600},
		{"2017-01-01T12:00:00-0530", -(5*3600 + 30*60)},
	}
	for _, tc := range cases {
		got, err := coerce.ValidateString(ctx, coerce.DateTime(), tc.input, coerce.Strict)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		dt := got.(isodate.DateTime)
		if !dt.Time.HasOffset || dt.Time.Offset != tc.offset {
			t.Fatalf("%q: got offset (%d,%v), want %d", tc.input, dt.Time.Offset, dt.Time.HasOffset, tc.offset)
		}
	}
}

func TestDate_MidnightWithOffsetTruncates(t *testing.T) {
	// The narrowing path compares time-of-day only; an offset-qualified
	// midnight still truncates cleanly in lax mode.
	got, err := coerce.ValidateString(context.Background(), coerce.Date(), "2017-01-01T00:00:00Z", coerce.Lax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (isodate.Date{Year: 2017, Month: 1, Day: 1}) {
		t.Fatalf("got %v", got)
	}
}

func TestIdempotence_TypedInputsRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := mustDate(t, 2017, 1, 1)
	dt := isodate.DateTime{Date: d, Time: isodate.Time{Hour: 12}}
	cases := []struct {
		schema *coerce.Schema
		value  coerce.Value
		want   any
	}{
		{coerce.Bool(), coerce.BoolValue(true), true},
		{coerce.Int(), coerce.IntValue(7), int64(7)},
		{coerce.Float(), coerce.FloatValue(1.1), 1.1},
		{coerce.Date(), coerce.DateValue(d), d},
		{coerce.DateTime(), coerce.DateTimeValue(dt), dt},
	}
	for _, tc := range cases {
		for _, mode := range []coerce.Strictness{coerce.Lax, coerce.Strict} {
			got, err := coerce.Validate(ctx, tc.schema, tc.value, mode)
			if err != nil {
				t.Fatalf("%s/%v: unexpected error: %v", tc.schema.Name(), mode, err)
			}
			if got != tc.want {
				t.Fatalf("%s/%v: got %v, want %v", tc.schema.Name(), mode, got, tc.want)
			}
		}
	}
}

func TestCrossNativeShapes(t *testing.T) {
	ctx := context.Background()

	// int -> float widens in lax mode only
	v, err := coerce.Validate(ctx, coerce.Float(), coerce.IntValue(2), coerce.Lax)
	if err != nil || v != 2.0 {
		t.Fatalf("lax int->float: got v=%v err=%v", v, err)
	}
	_, err = coerce.Validate(ctx, coerce.Float(), coerce.IntValue(2), coerce.Strict)
	wantKind(t, err, coerce.KindFloatType)

	// float -> int narrows in lax mode only when integral
	v, err = coerce.Validate(ctx, coerce.Int(), coerce.FloatValue(2.0), coerce.Lax)
	if err != nil || v != int64(2) {
		t.Fatalf("lax float->int: got v=%v err=%v", v, err)
	}
	_, err = coerce.Validate(ctx, coerce.Int(), coerce.FloatValue(2.5), coerce.Lax)
	wantKind(t, err, coerce.KindIntFromFloat)
	_, err = coerce.Validate(ctx, coerce.Int(), coerce.FloatValue(2.0), coerce.Strict)
	wantKind(t, err, coerce.KindIntType)

	// datetime -> date narrows in lax mode only at exact midnight
	d := mustDate(t, 2017, 1, 1)
	v, err = coerce.Validate(ctx, coerce.Date(), coerce.DateTimeValue(isodate.Midnight(d)), coerce.Lax)
	if err != nil || v != d {
		t.Fatalf("lax midnight datetime->date: got v=%v err=%v", v, err)
	}
	noon := isodate.DateTime{Date: d, Time: isodate.Time{Hour: 12}}
	_, err = coerce.Validate(ctx, coerce.Date(), coerce.DateTimeValue(noon), coerce.Lax)
	wantKind(t, err, coerce.KindDateFromDatetimeInexact)
	_, err = coerce.Validate(ctx, coerce.Date(), coerce.DateTimeValue(isodate.Midnight(d)), coerce.Strict)
	wantKind(t, err, coerce.KindDateType)

	// date -> datetime promotes in lax mode only
	v, err = coerce.Validate(ctx, coerce.DateTime(), coerce.DateValue(d), coerce.Lax)
	if err != nil || v != isodate.Midnight(d) {
		t.Fatalf("lax date->datetime: got v=%v err=%v", v, err)
	}
	_, err = coerce.Validate(ctx, coerce.DateTime(), coerce.DateValue(d), coerce.Strict)
	wantKind(t, err, coerce.KindDatetimeType)
}
