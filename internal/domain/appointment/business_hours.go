package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	DefaultOpening      = "08:00"
	DefaultClosing      = "18:00"
	DefaultSlotInterval = 2 * time.Hour
)

// BusinessHours is the fixed, chronological list of bookable slots of a day.
type BusinessHours struct {
	Slots []string
}

// DefaultBusinessHours: 08:00 to 18:00 every two hours.
func DefaultBusinessHours() BusinessHours {
	bh, _ := NewBusinessHours(DefaultOpening, DefaultClosing, DefaultSlotInterval)
	return bh
}

// NewBusinessHours generates slots from start to end inclusive.
func NewBusinessHours(start, end string, step time.Duration) (BusinessHours, error) {
	from, err := calendar.ParseTime(start)
	if err != nil {
		return BusinessHours{}, httperr.Validation("invalid_business_hours", "horário de abertura inválido")
	}
	to, err := calendar.ParseTime(end)
	if err != nil {
		return BusinessHours{}, httperr.Validation("invalid_business_hours", "horário de fechamento inválido")
	}
	if step < time.Minute {
		return BusinessHours{}, httperr.Validation("invalid_business_hours", "intervalo entre horários inválido")
	}
	if from.Minutes() > to.Minutes() {
		return BusinessHours{}, httperr.Validation("invalid_business_hours", "abertura depois do fechamento")
	}

	stepMin := int(step / time.Minute)
	var slots []string
	for m := from.Minutes(); m <= to.Minutes(); m += stepMin {
		slots = append(slots, calendar.TimeOfDay{Hour: m / 60, Minute: m % 60}.String())
	}

	return BusinessHours{Slots: slots}, nil
}

// Contains reports whether hhmm is one of the slots.
func (b BusinessHours) Contains(hhmm string) bool {
	norm, ok := calendar.NormalizeTime(hhmm)
	if !ok {
		return false
	}
	for _, s := range b.Slots {
		if s == norm {
			return true
		}
	}
	return false
}
