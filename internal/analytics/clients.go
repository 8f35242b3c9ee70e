package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	TopClientsLimit = 5

	MaintenanceMinDays   = 20
	MaintenanceMaxDays   = 40
	MaintenanceIdealDays = 30
	MaintenanceLimit     = 10

	daysPerMonth = 30
)

type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baixa"
)

type ClientRank struct {
	ClientID     models.ID    `json:"clientId"`
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Appointments int          `json:"appointments"`
	TotalSpent   models.Money `json:"totalSpent"`
	LastVisit    string       `json:"lastVisit,omitempty"`
	Frequency    float64      `json:"frequency"`
	Score        float64      `json:"score"`
}

type MaintenanceEntry struct {
	ClientID    models.ID    `json:"clientId"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	LastService string       `json:"lastService"`
	LastDate    string       `json:"lastDate"`
	LastValue   models.Money `json:"lastValue"`
	DaysElapsed int          `json:"daysElapsed"`
	DaysToIdeal int          `json:"daysToIdeal"`
	Priority    Priority     `json:"priority"`
}

// ByClient groups appointments per client id, keeping collection order.
func ByClient(appts []models.Appointment) map[models.ID][]models.Appointment {
	out := make(map[models.ID][]models.Appointment)
	for _, ap := range appts {
		out[ap.ClientID] = append(out[ap.ClientID], ap)
	}
	return out
}

// Frequency is visits per month between the first and last visit. One visit
// is frequency 1; the month span never goes below 1.
func Frequency(appts []models.Appointment) float64 {
	if len(appts) < 2 {
		return float64(len(appts))
	}

	var first, last time.Time
	valid := 0
	for _, ap := range appts {
		d, err := calendar.ParseDate(ap.Date)
		if err != nil {
			continue
		}
		if valid == 0 || d.Before(first) {
			first = d
		}
		if valid == 0 || d.After(last) {
			last = d
		}
		valid++
	}

	months := 1.0
	if valid >= 2 {
		if m := float64(calendar.DaysBetween(first, last)) / daysPerMonth; m > months {
			months = m
		}
	}
	return float64(len(appts)) / months
}

// Score weighs frequency and spend: frequency*2 + spent/1000.
func Score(frequency float64, spent decimal.Decimal) float64 {
	return frequency*2 + spent.InexactFloat64()/1000
}

// TopClients ranks clients by Score. Ties keep the clients collection order.
func TopClients(clients []models.Client, appts []models.Appointment) []ClientRank {
	grouped := ByClient(appts)

	ranks := make([]ClientRank, 0)
	for _, c := range clients {
		own := grouped[c.ID]
		if len(own) == 0 {
			continue
		}

		spent := decimal.Zero
		for _, ap := range own {
			if v, ok := ap.Charged(); ok {
				spent = spent.Add(v)
			}
		}

		r := ClientRank{
			ClientID:     c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Appointments: len(own),
			TotalSpent:   models.MoneyOf(spent),
			Frequency:    Frequency(own),
		}
		r.Score = Score(r.Frequency, spent)
		if ap, ok := latest(own); ok {
			d, _ := calendar.GroupKey(ap.Date)
			r.LastVisit = calendar.FormatDate(d)
		}
		ranks = append(ranks, r)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Score > ranks[j].Score
	})

	if len(ranks) > TopClientsLimit {
		ranks = ranks[:TopClientsLimit]
	}
	return ranks
}

func PriorityFor(daysElapsed int) Priority {
	switch {
	case daysElapsed >= 28:
		return PriorityHigh
	case daysElapsed >= 25:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// MaintenanceList flags clients whose last visit was 20 to 40 days before
// today, most overdue first.
func MaintenanceList(
	clients []models.Client,
	appts []models.Appointment,
	services []models.Service,
	today time.Time,
) []MaintenanceEntry {
	grouped := ByClient(appts)
	svcIdx := indexServices(services)

	out := make([]MaintenanceEntry, 0)
	for _, c := range clients {
		last, ok := latest(grouped[c.ID])
		if !ok {
			continue
		}

		lastDate, _ := calendar.ParseDate(last.Date)
		elapsed := calendar.DaysBetween(lastDate, today)
		if elapsed < MaintenanceMinDays || elapsed > MaintenanceMaxDays {
			continue
		}

		e := MaintenanceEntry{
			ClientID:    c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			LastService: ServiceNotFound,
			LastDate:    calendar.FormatDate(lastDate),
			DaysElapsed: elapsed,
			DaysToIdeal: MaintenanceIdealDays - elapsed,
			Priority:    PriorityFor(elapsed),
		}

		svc, found := svcIdx[last.ServiceID]
		if found {
			e.LastService = svc.Name
		}
		// a zero charge falls back to the service price
		switch v, charged := last.Charged(); {
		case charged && !v.IsZero():
			e.LastValue = models.MoneyOf(v)
		case found:
			e.LastValue = svc.Price
		}

		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysElapsed > out[j].DaysElapsed
	})

	if len(out) > MaintenanceLimit {
		out = out[:MaintenanceLimit]
	}
	return out
}

// latest returns the first appointment holding the most recent valid date.
func latest(appts []models.Appointment) (models.Appointment, bool) {
	var (
		best     models.Appointment
		bestDate time.Time
		found    bool
	)
	for _, ap := range appts {
		d, err := calendar.ParseDate(ap.Date)
		if err != nil {
			continue
		}
		if !found || d.After(bestDate) {
			best, bestDate, found = ap, d, true
		}
	}
	return best, found
}

func indexServices(services []models.Service) map[models.ID]models.Service {
	idx := make(map[models.ID]models.Service, len(services))
	for _, s := range services {
		if _, ok := idx[s.ID]; !ok {
			idx[s.ID] = s
		}
	}
	return idx
}
