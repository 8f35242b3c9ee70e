package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MonthFinancials struct {
	From          string       `json:"from"`
	To            string       `json:"to"`
	Appointments  int          `json:"appointments"`
	Revenue       models.Money `json:"revenue"`
	Cost          models.Money `json:"cost"`
	Profit        models.Money `json:"profit"`
	MarginPercent float64      `json:"marginPercent"`
}

type ServiceCount struct {
	ServiceID models.ID `json:"serviceId"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
}

// InMonth keeps the appointments whose date falls in today's month,
// first and last day included.
func InMonth(appts []models.Appointment, today time.Time) []models.Appointment {
	first, last := calendar.MonthBounds(today)

	out := make([]models.Appointment, 0)
	for _, ap := range appts {
		d, err := calendar.ParseDate(ap.Date)
		if err != nil {
			continue
		}
		if d.Before(first) || d.After(last) {
			continue
		}
		out = append(out, ap)
	}
	return out
}

// Revenue of one appointment: the charged value, or the service price when
// nothing was charged.
func Revenue(ap models.Appointment, svc *models.Service) decimal.Decimal {
	if v, ok := ap.Charged(); ok {
		return v
	}
	if svc != nil {
		return svc.Price.Decimal
	}
	return decimal.Zero
}

func MonthlyFinancials(appts []models.Appointment, services []models.Service, today time.Time) MonthFinancials {
	first, last := calendar.MonthBounds(today)
	month := InMonth(appts, today)
	idx := indexServices(services)

	revenue, cost := decimal.Zero, decimal.Zero
	for _, ap := range month {
		var svc *models.Service
		if s, ok := idx[ap.ServiceID]; ok {
			svc = &s
			cost = cost.Add(s.Cost.Decimal)
		}
		revenue = revenue.Add(Revenue(ap, svc))
	}

	profit := revenue.Sub(cost)
	return MonthFinancials{
		From:          calendar.FormatDate(first),
		To:            calendar.FormatDate(last),
		Appointments:  len(month),
		Revenue:       models.MoneyOf(revenue),
		Cost:          models.MoneyOf(cost),
		Profit:        models.MoneyOf(profit),
		MarginPercent: percentOf(profit, revenue),
	}
}

// ActiveClients counts distinct client ids over all appointments.
func ActiveClients(appts []models.Appointment) int {
	seen := make(map[models.ID]struct{})
	for _, ap := range appts {
		seen[ap.ClientID] = struct{}{}
	}
	return len(seen)
}

// MostPerformedService is all-time; ties go to the service seen first.
// Returns nil when there are no appointments.
func MostPerformedService(appts []models.Appointment, services []models.Service) *ServiceCount {
	counts := make(map[models.ID]int)
	order := make([]models.ID, 0)
	for _, ap := range appts {
		if _, ok := counts[ap.ServiceID]; !ok {
			order = append(order, ap.ServiceID)
		}
		counts[ap.ServiceID]++
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}

	top := &ServiceCount{ServiceID: best, Name: ServiceNotFound, Count: counts[best]}
	if s, ok := indexServices(services)[best]; ok {
		top.Name = s.Name
	}
	return top
}

func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
