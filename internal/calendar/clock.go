package calendar

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a 24-hour HH:MM value.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTime(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), timeSep)
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTime
	}

	h, okH := atoiDigits(parts[0], 2)
	m, okM := atoiDigits(parts[1], 2)
	if !okH || !okM || h > 23 || m > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}

	return TimeOfDay{Hour: h, Minute: m}, nil
}

// ValidateTime is the form-level check: exactly HH:MM within 00:00-23:59.
func ValidateTime(s string) error {
	if len(strings.TrimSpace(s)) != len("15:04") {
		return ErrInvalidTime
	}
	_, err := ParseTime(s)
	return err
}

// NormalizeTime rewrites a parseable time as zero-padded HH:MM.
func NormalizeTime(s string) (string, bool) {
	t, err := ParseTime(s)
	if err != nil {
		return "", false
	}
	return t.String(), true
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Add moves the time forward by d, wrapping at midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := (t.Minutes() + int(d/time.Minute)) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// DateTime pairs a civil date with a time of day.
type DateTime struct {
	Date    time.Time
	At      TimeOfDay
	Invalid bool
}

func ParseDateTime(date, tm string) (DateTime, error) {
	d, err := ParseDate(date)
	if err != nil {
		return DateTime{}, err
	}
	t, err := ParseTime(tm)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, At: t}, nil
}

// SortKey never fails: invalid dates are flagged and invalid times sort
// as 00:00.
func SortKey(date, tm string) DateTime {
	t, err := ParseTime(tm)
	if err != nil {
		t = TimeOfDay{}
	}
	d, ok := GroupKey(date)
	return DateTime{Date: d, At: t, Invalid: !ok}
}

// Compare orders by (year, month, day, hour, minute). Invalid dates come
// after every valid one and are ordered by time among themselves.
func Compare(a, b DateTime) int {
	if a.Invalid != b.Invalid {
		if a.Invalid {
			return 1
		}
		return -1
	}
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	switch am, bm := a.At.Minutes(), b.At.Minutes(); {
	case am < bm:
		return -1
	case am > bm:
		return 1
	}
	return 0
}
