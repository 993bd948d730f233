package isodate_test

import (
	"errors"
	"testing"

	"github.com/reoring/coerce/isodate"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  isodate.Date
		err   error
	}{
		{"2017-01-01", isodate.Date{Year: 2017, Month: 1, Day: 1}, nil},
		{"0001-12-31", isodate.Date{Year: 1, Month: 12, Day: 31}, nil},
		{"2016-02-29", isodate.Date{Year: 2016, Month: 2, Day: 29}, nil},
		{"2000-02-29", isodate.Date{Year: 2000, Month: 2, Day: 29}, nil},
		{"2017-02-29", isodate.Date{}, isodate.ErrDayRange},
		{"1900-02-29", isodate.Date{}, isodate.ErrDayRange},
		{"2017-13-01", isodate.Date{}, isodate.ErrMonthRange},
		{"2017-00-01", isodate.Date{}, isodate.ErrMonthRange},
		{"2017-01-00", isodate.Date{}, isodate.ErrDayRange},
		{"2017-01-32", isodate.Date{}, isodate.ErrDayRange},
		{"2017-1-01", isodate.Date{}, isodate.ErrInvalidMonth},
		{"2017/01/01", isodate.Date{}, isodate.ErrInvalidMonth},
		{"x017-01-01", isodate.Date{}, isodate.ErrInvalidYear},
		{"2017-01-0x", isodate.Date{}, isodate.ErrInvalidDay},
		{"2017-01", isodate.Date{}, isodate.ErrTooShort},
		{"", isodate.Date{}, isodate.ErrTooShort},
		{"2017-01-01 ", isodate.Date{}, isodate.ErrExtraCharacters},
		{"2017-01-01T00:00:00", isodate.Date{}, isodate.ErrExtraCharacters},
	}
	for _, tc := range cases {
		got, err := isodate.ParseDate(tc.input)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("%q: got err %v, want %v", tc.input, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDateString(t *testing.T) {
	d, err := isodate.NewDate(42, 1, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := d.String(); got != "0042-01-09" {
		t.Fatalf("got %q", got)
	}
}

func TestDateAsTime(t *testing.T) {
	d := isodate.Date{Year: 2017, Month: 6, Day: 15}
	tm := d.AsTime()
	if tm.Year() != 2017 || tm.Month() != 6 || tm.Day() != 15 || tm.Hour() != 0 {
		t.Fatalf("got %v", tm)
	}
	if tm.Location().String() != "UTC" {
		t.Fatalf("got location %v", tm.Location())
	}
}

func TestDateIsZero(t *testing.T) {
	if !(isodate.Date{}).IsZero() {
		t.Fatal("zero value should report IsZero")
	}
	if (isodate.Date{Year: 2017, Month: 1, Day: 1}).IsZero() {
		t.Fatal("valid date should not report IsZero")
	}
}
