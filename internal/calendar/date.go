// Package calendar parses, validates and formats the two text representations
// used by the agenda: dates as DD/MM/YYYY and times as HH:MM.
//
// Parsed dates are civil dates anchored at midnight UTC, so day arithmetic is
// exact and independent of the shop timezone.
package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "02/01/2006"

	dateSep = "/"
	timeSep = ":"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// ParseDate reads a DD/MM/YYYY value. The date is valid only when the
// calendar rebuilds the same day, month and year (31/04 is rejected).
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), dateSep)
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDate
	}

	day, okDay := atoiDigits(parts[0], 2)
	month, okMonth := atoiDigits(parts[1], 2)
	year, okYear := atoiDigits(parts[2], 4)
	if !okDay || !okMonth || !okYear || year < 1 {
		return time.Time{}, ErrInvalidDate
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// ValidateDate is the form-level check: the full DD/MM/YYYY shape is required.
func ValidateDate(s string) error {
	if len(strings.TrimSpace(s)) != len(DateLayout) {
		return ErrInvalidDate
	}
	_, err := ParseDate(s)
	return err
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// GroupKey returns the parsed date and whether it parsed. Broken values all
// share the zero key.
func GroupKey(s string) (time.Time, bool) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day drops the time of day, keeping the civil date as seen in t's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay compares civil dates only.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween counts whole calendar days from `from` to `to` (negative when
// `to` is earlier).
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}

// MonthBounds returns the first and last day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

var weekdayNames = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// WeekdayName is the pt-BR long weekday name.
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

func atoiDigits(s string, maxLen int) (int, bool) {
	if s == "" || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
