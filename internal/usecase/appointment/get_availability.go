package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.BusinessHours
	clock timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	hours domain.BusinessHours,
	clock timezone.Clock,
) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours, clock: clock}
}

// Execute reads a DD/MM/YYYY day.
func (uc *GetAvailability) Execute(ctx context.Context, date string) (*domain.DayAvailability, error) {
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "data inválida")
	}

	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := domain.ForDay(uc.hours, day, timezone.Today(uc.clock), s.Appointments)
	return &out, nil
}

// Summary is the shareable text of the day's free slots.
func (uc *GetAvailability) Summary(ctx context.Context, date string) (string, error) {
	day, err := uc.Execute(ctx, date)
	if err != nil {
		return "", err
	}
	if !day.Selectable {
		return "", httperr.Validation("past_date", "não é possível agendar em datas passadas")
	}
	parsed, _ := calendar.ParseDate(day.Date)
	return domain.ShareableSummary(parsed, day.Free), nil
}

type GetMonthCalendar struct {
	repo  domain.Repository
	hours domain.BusinessHours
	clock timezone.Clock
}

func NewGetMonthCalendar(
	repo domain.Repository,
	hours domain.BusinessHours,
	clock timezone.Clock,
) *GetMonthCalendar {
	return &GetMonthCalendar{repo: repo, hours: hours, clock: clock}
}

// Execute builds the grid for year/month; zero values mean the current month.
func (uc *GetMonthCalendar) Execute(ctx context.Context, year, month int) (*domain.MonthView, error) {
	today := timezone.Today(uc.clock)
	if year == 0 && month == 0 {
		year, month = today.Year(), int(today.Month())
	}
	if month < 1 || month > 12 || year < 1 || year > 9998 {
		return nil, httperr.Validation("invalid_month", "mês inválido")
	}

	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := domain.MonthCalendar(uc.hours, year, time.Month(month), today, s.Appointments)
	return &out, nil
}
