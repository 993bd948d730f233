// Package isodate implements the fixed ISO-8601 subset used by the coercion
// engine: calendar dates (YYYY-MM-DD) and date-times with optional fractional
// seconds and offsets. The grammar is intentionally closed; see ParseDate and
// ParseDateTime for the exact forms accepted.
package isodate

import (
	"errors"
	"fmt"
	"time"
)

// Date is a calendar date without time-of-day or offset. The zero value is
// not a valid date; dates only come out of ParseDate/ParseDateTime or New.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse errors carry stable reason strings; callers embed them in messages.
var (
	ErrTooShort        = errors.New("input is too short")
	ErrExtraCharacters = errors.New("unexpected extra characters at the end of the input")
	ErrInvalidYear     = errors.New("invalid character in year")
	ErrInvalidMonth    = errors.New("invalid character in month")
	ErrInvalidDay      = errors.New("invalid character in day")
	ErrMonthRange      = errors.New("month value is outside expected range of 1-12")
	ErrDayRange        = errors.New("day value is outside expected range")
)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NewDate validates the components and returns a Date.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, ErrMonthRange
	}
	max := daysInMonth[month]
	if month == 2 && isLeap(year) {
		max = 29
	}
	if day < 1 || day > max {
		return Date{}, ErrDayRange
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses exactly "YYYY-MM-DD". Anything shorter fails with
// ErrTooShort, trailing characters fail with ErrExtraCharacters.
func ParseDate(s string) (Date, error) {
	if len(s) < 10 {
		return Date{}, ErrTooShort
	}
	if len(s) > 10 {
		return Date{}, ErrExtraCharacters
	}
	return parseDatePrefix(s)
}

// parseDatePrefix reads the first ten characters of s as a date. The caller
// guarantees len(s) >= 10.
func parseDatePrefix(s string) (Date, error) {
	year, ok := atoi4(s[0:4])
	if !ok {
		return Date{}, ErrInvalidYear
	}
	if s[4] != '-' {
		return Date{}, ErrInvalidMonth
	}
	month, ok := atoi2(s[5:7])
	if !ok {
		return Date{}, ErrInvalidMonth
	}
	if s[7] != '-' {
		return Date{}, ErrInvalidDay
	}
	day, ok := atoi2(s[8:10])
	if !ok {
		return Date{}, ErrInvalidDay
	}
	return NewDate(year, month, day)
}

// String renders the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AsTime returns the date at midnight UTC for interop with time-based APIs.
func (d Date) AsTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value (not a valid date).
func (d Date) IsZero() bool { return d == Date{} }

func atoi2(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func atoi4(s string) (int, bool) {
	n := 0
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
