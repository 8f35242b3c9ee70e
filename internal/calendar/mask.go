package calendar

import "strings"

// Digits keeps only ASCII digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaskDate inserts separators as digits are typed: DD, DD/MM, DD/MM/YYYY.
// Digits past the eighth are dropped.
func MaskDate(s string) string {
	d := Digits(s)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + dateSep + d[2:]
	default:
		return d[:2] + dateSep + d[2:4] + dateSep + d[4:min(len(d), 8)]
	}
}

// MaskTime inserts the separator after the hour: HH, HH:MM.
func MaskTime(s string) string {
	d := Digits(s)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + timeSep + d[2:min(len(d), 4)]
}

// MaskPhone formats up to 11 digits as (xx) xxxxx-xxxx.
func MaskPhone(s string) string {
	d := Digits(s)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:min(len(d), 11)]
	}
}

// MaskBirthday formats a DDMM birthday as DD/MM.
func MaskBirthday(s string) string {
	d := Digits(s)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + dateSep + d[2:min(len(d), 4)]
}
