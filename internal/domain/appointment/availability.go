package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DayStatus string

const (
	DayPast    DayStatus = "past"
	DayWeekend DayStatus = "weekend"
	DayFull    DayStatus = "full"
	DayLow     DayStatus = "low"
	DayOpen    DayStatus = "open"
)

// LowAvailability is the largest free slot count still flagged as low.
const LowAvailability = 2

type DayAvailability struct {
	Date         string               `json:"date"`
	Weekday      string               `json:"weekday"`
	Status       DayStatus            `json:"status"`
	Selectable   bool                 `json:"selectable"`
	Free         []string             `json:"free"`
	Occupied     []string             `json:"occupied"`
	Appointments []models.Appointment `json:"appointments"`
}

// MonthView is the month grid of the free-agenda screen. Leading is the
// number of blank cells before day 1 in a Sunday-first week.
type MonthView struct {
	Year    int               `json:"year"`
	Month   int               `json:"month"`
	Title   string            `json:"title"`
	Leading int               `json:"leading"`
	Days    []DayAvailability `json:"days"`
}

// AppointmentsOn returns the appointments whose normalized date is day.
// Cancelled appointments do not hold a slot.
func AppointmentsOn(day time.Time, appts []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, ap := range appts {
		if StatusOf(ap) == StatusCancelled {
			continue
		}
		d, err := calendar.ParseDate(ap.Date)
		if err != nil {
			continue
		}
		if calendar.SameDay(d, day) {
			out = append(out, ap)
		}
	}
	return out
}

// OccupiedSlots lists the distinct normalized times taken on day, in
// appointment order.
func OccupiedSlots(day time.Time, appts []models.Appointment) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, ap := range AppointmentsOn(day, appts) {
		t, ok := calendar.NormalizeTime(ap.Time)
		if !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// FreeSlots is the business-hour slots minus the occupied ones, in slot order.
func FreeSlots(hours BusinessHours, day time.Time, appts []models.Appointment) []string {
	taken := make(map[string]struct{})
	for _, t := range OccupiedSlots(day, appts) {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(hours.Slots))
	for _, s := range hours.Slots {
		if _, busy := taken[s]; !busy {
			free = append(free, s)
		}
	}
	return free
}

// IsPast compares calendar dates only.
func IsPast(day, today time.Time) bool {
	return calendar.Day(day).Before(calendar.Day(today))
}

func CanSchedule(day, today time.Time) bool {
	return !IsPast(day, today)
}

func IsWeekend(day time.Time) bool {
	return calendar.IsWeekend(day)
}

// Classify applies the first matching rule: past, weekend, full, low, open.
func Classify(hours BusinessHours, day, today time.Time, appts []models.Appointment) DayStatus {
	return classify(day, today, len(FreeSlots(hours, day, appts)))
}

func classify(day, today time.Time, free int) DayStatus {
	switch {
	case IsPast(day, today):
		return DayPast
	case IsWeekend(day):
		return DayWeekend
	case free == 0:
		return DayFull
	case free <= LowAvailability:
		return DayLow
	default:
		return DayOpen
	}
}

// ForDay lists no free slots for a past day.
func ForDay(hours BusinessHours, day, today time.Time, appts []models.Appointment) DayAvailability {
	day = calendar.Day(day)
	free := []string{}
	if CanSchedule(day, today) {
		free = FreeSlots(hours, day, appts)
	}

	return DayAvailability{
		Date:         calendar.FormatDate(day),
		Weekday:      calendar.WeekdayName(day),
		Status:       classify(day, today, len(free)),
		Selectable:   CanSchedule(day, today),
		Free:         free,
		Occupied:     OccupiedSlots(day, appts),
		Appointments: AppointmentsOn(day, appts),
	}
}

func MonthCalendar(hours BusinessHours, year int, month time.Month, today time.Time, appts []models.Appointment) MonthView {
	first, last := calendar.MonthBounds(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	view := MonthView{
		Year:    first.Year(),
		Month:   int(first.Month()),
		Title:   fmt.Sprintf("%s %d", calendar.MonthName(first.Month()), first.Year()),
		Leading: int(first.Weekday()),
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		view.Days = append(view.Days, ForDay(hours, d, today, appts))
	}
	return view
}

// ShareableSummary formats the free slots of day as a message ready to be
// pasted in a chat app.
func ShareableSummary(day time.Time, free []string) string {
	weekday := calendar.WeekdayName(day)
	date := calendar.FormatDate(day)

	if len(free) == 0 {
		return fmt.Sprintf("🗓️ *Sem horários disponíveis para %s, %s.*", weekday, date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ *Horários disponíveis para %s, %s:*\n\n", weekday, date)
	for _, s := range free {
		fmt.Fprintf(&b, "⏰ %s\n", s)
	}
	b.WriteString("\n💅 Qual horário você gostaria de agendar?\n")
	b.WriteString("📱 Responda com o horário escolhido!")
	return b.String()
}
