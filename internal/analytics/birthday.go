package analytics

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
)

// BirthdaySoonDays is the highlight window before a birthday.
const BirthdaySoonDays = 7

type BirthdayInfo struct {
	Known    bool `json:"known"`
	Today    bool `json:"today"`
	Passed   bool `json:"passed"`
	Soon     bool `json:"soon"`
	DaysLeft int  `json:"daysLeft"`
}

// BirthdayStatus reads a DDMM birthday against today's year. Anything that
// is not four digits with a plausible day and month is unknown.
func BirthdayStatus(birthday string, today time.Time) BirthdayInfo {
	digits := calendar.Digits(birthday)
	if len(digits) != 4 {
		return BirthdayInfo{}
	}

	day := int(digits[0]-'0')*10 + int(digits[1]-'0')
	month := int(digits[2]-'0')*10 + int(digits[3]-'0')
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return BirthdayInfo{}
	}

	today = calendar.Day(today)
	thisYear := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)

	left := calendar.DaysBetween(today, thisYear)
	switch {
	case left < 0:
		return BirthdayInfo{Known: true, Passed: true}
	case left == 0:
		return BirthdayInfo{Known: true, Today: true, Soon: true}
	default:
		return BirthdayInfo{Known: true, DaysLeft: left, Soon: left <= BirthdaySoonDays}
	}
}
