package isodate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidHour      = errors.New("invalid character in hour")
	ErrInvalidMinute    = errors.New("invalid character in minute")
	ErrInvalidSecond    = errors.New("invalid character in second")
	ErrInvalidFraction  = errors.New("invalid character in fraction of a second")
	ErrInvalidOffset    = errors.New("invalid timezone offset")
	ErrHourRange        = errors.New("hour value is outside expected range of 0-23")
	ErrMinuteRange      = errors.New("minute value is outside expected range of 0-59")
	ErrSecondRange      = errors.New("second value is outside expected range of 0-59")
	ErrOffsetRange      = errors.New("timezone offset must be less than 24 hours")
	ErrInvalidSeparator = errors.New("invalid date/time separator, expected `T`, `t` or a space")
)

// Time is a time-of-day with microsecond precision and an optional UTC
// offset. Offset is in seconds east of UTC and only meaningful when HasOffset
// is true. The struct is comparable, so values can be used as map keys.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	Offset      int
	HasOffset   bool
}

// IsMidnight reports whether the time-of-day component is exactly zero,
// ignoring any offset.
func (t Time) IsMidnight() bool {
	return t.Hour == 0 && t.Minute == 0 && t.Second == 0 && t.Microsecond == 0
}

// String renders HH:MM:SS[.ffffff][offset]; fractions trim trailing zeros.
func (t Time) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%06d", t.Microsecond), "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	if t.HasOffset {
		if t.Offset == 0 {
			b.WriteByte('Z')
		} else {
			off := t.Offset
			sign := byte('+')
			if off < 0 {
				sign = '-'
				off = -off
			}
			fmt.Fprintf(&b, "%c%02d:%02d", sign, off/3600, (off%3600)/60)
		}
	}
	return b.String()
}

// DateTime combines a Date and a Time. It is comparable.
type DateTime struct {
	Date Date
	Time Time
}

// String renders the canonical form with a "T" separator.
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// AsTime converts to time.Time. Offset-aware values use a fixed zone;
// offset-naive values are interpreted as UTC.
func (dt DateTime) AsTime() time.Time {
	loc := time.UTC
	if dt.Time.HasOffset && dt.Time.Offset != 0 {
		loc = time.FixedZone("", dt.Time.Offset)
	}
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Microsecond*1000, loc)
}

// Midnight returns the datetime at the start of the given date, offset-naive.
func Midnight(d Date) DateTime { return DateTime{Date: d} }

// ParseDateTime parses the grammar
//
//	date ("T"|"t"|" ") HH:MM[":"SS["."F...]] [offset]
//	offset = "Z" | "z" | ("+"|"-") HH [":"] MM
//
// Fractional digits are scaled to microseconds by truncation; digits beyond
// six are dropped. Bounds: hour 0-23, minute 0-59, second 0-59, |offset| < 24h.
func ParseDateTime(s string) (DateTime, error) {
	if len(s) < 10 {
		return DateTime{}, ErrTooShort
	}
	d, err := parseDatePrefix(s)
	if err != nil {
		return DateTime{}, err
	}
	if len(s) == 10 {
		return DateTime{}, ErrTooShort
	}
	switch s[10] {
	case 'T', 't', ' ':
	default:
		return DateTime{}, ErrInvalidSeparator
	}
	t, err := parseTime(s[11:])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: t}, nil
}

func parseTime(s string) (Time, error) {
	if len(s) < 5 {
		return Time{}, ErrTooShort
	}
	hour, ok := atoi2(s[0:2])
	if !ok {
		return Time{}, ErrInvalidHour
	}
	if hour > 23 {
		return Time{}, ErrHourRange
	}
	if s[2] != ':' {
		return Time{}, ErrInvalidMinute
	}
	minute, ok := atoi2(s[3:5])
	if !ok {
		return Time{}, ErrInvalidMinute
	}
	if minute > 59 {
		return Time{}, ErrMinuteRange
	}
	t := Time{Hour: hour, Minute: minute}
	pos := 5
	if pos < len(s) && s[pos] == ':' {
		if len(s) < pos+3 {
			return Time{}, ErrInvalidSecond
		}
		second, ok := atoi2(s[pos+1 : pos+3])
		if !ok {
			return Time{}, ErrInvalidSecond
		}
		if second > 59 {
			return Time{}, ErrSecondRange
		}
		t.Second = second
		pos += 3
		if pos < len(s) && s[pos] == '.' {
			pos++
			start := pos
			for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
				pos++
			}
			if pos == start {
				return Time{}, ErrInvalidFraction
			}
			// Scale to microseconds, truncating beyond six digits.
			us := 0
			for i := 0; i < 6; i++ {
				us *= 10
				if start+i < pos {
					us += int(s[start+i] - '0')
				}
			}
			t.Microsecond = us
		}
	}
	if pos == len(s) {
		return t, nil
	}
	off, err := parseOffset(s[pos:])
	if err != nil {
		return Time{}, err
	}
	t.Offset = off
	t.HasOffset = true
	return t, nil
}

func parseOffset(s string) (int, error) {
	if s == "Z" || s == "z" {
		return 0, nil
	}
	if len(s) == 0 {
		return 0, ErrInvalidOffset
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, ErrExtraCharacters
	}
	rest := s[1:]
	var hh, mm string
	switch len(rest) {
	case 5: // HH:MM
		if rest[2] != ':' {
			return 0, ErrInvalidOffset
		}
		hh, mm = rest[0:2], rest[3:5]
	case 4: // HHMM
		hh, mm = rest[0:2], rest[2:4]
	default:
		return 0, ErrInvalidOffset
	}
	h, ok := atoi2(hh)
	if !ok {
		return 0, ErrInvalidOffset
	}
	m, ok := atoi2(mm)
	if !ok {
		return 0, ErrInvalidOffset
	}
	if m > 59 {
		return 0, ErrInvalidOffset
	}
	off := h*3600 + m*60
	if off >= 24*3600 {
		return 0, ErrOffsetRange
	}
	return sign * off, nil
}
