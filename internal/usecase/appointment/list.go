package appointment

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/analytics"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	OrderByDate    = "date"
	OrderByClient  = "client"
	OrderByService = "service"
	OrderByValue   = "value"
)

type ListInput struct {
	Query   string
	OrderBy string
}

type ListAppointments struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointments(repo domain.Repository, clock timezone.Clock) *ListAppointments {
	return &ListAppointments{repo: repo, clock: clock}
}

// Execute filters by client name, service name or date, orders the rows and
// groups them per day in chronological order. Invalid dates group last.
func (uc *ListAppointments) Execute(ctx context.Context, in ListInput) ([]dto.AppointmentGroup, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.Today(uc.clock)
	rows := make([]dto.AppointmentListDTO, 0, len(s.Appointments))
	for _, ap := range s.Appointments {
		row := toListDTO(s, ap, today)
		if matches(row, in.Query) {
			rows = append(rows, row)
		}
	}

	sortRows(rows, in.OrderBy)
	return group(rows), nil
}

func toListDTO(s *domain.Snapshot, ap models.Appointment, today time.Time) dto.AppointmentListDTO {
	row := dto.AppointmentListDTO{
		ID:          ap.ID,
		ClientID:    ap.ClientID,
		ServiceID:   ap.ServiceID,
		ClientName:  ap.ClientName,
		ServiceName: ap.ServiceName,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      string(domain.StatusOf(ap)),
		Notes:       ap.Notes,
	}

	// current names win over the snapshot taken at creation
	if c := s.Client(ap.ClientID); c != nil {
		row.ClientName = c.Name
	} else if row.ClientName == "" {
		row.ClientName = analytics.ClientNotFound
	}
	svc := s.Service(ap.ServiceID)
	if svc != nil {
		row.ServiceName = svc.Name
		row.ServicePrice = svc.Price
	} else if row.ServiceName == "" {
		row.ServiceName = analytics.ServiceNotFound
	}

	charged, _ := ap.Charged()
	row.ChargedValue = models.MoneyOf(charged)
	row.Difference = models.MoneyOf(domain.Difference(ap, svc))

	if d, err := calendar.ParseDate(ap.Date); err == nil {
		row.Weekday = calendar.WeekdayName(d)
		row.RelativeDay = RelativeDay(calendar.DaysBetween(today, d))
	}
	return row
}

// RelativeDay renders a day offset from today in pt-BR.
func RelativeDay(days int) string {
	switch {
	case days == 0:
		return "hoje"
	case days == 1:
		return "amanhã"
	case days == -1:
		return "ontem"
	case days < 0:
		return strconv.Itoa(-days) + " dias atrás"
	default:
		return "em " + strconv.Itoa(days) + " dias"
	}
}

func matches(row dto.AppointmentListDTO, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.ClientName), q) ||
		strings.Contains(strings.ToLower(row.ServiceName), q) ||
		strings.Contains(row.Date, q)
}

func sortRows(rows []dto.AppointmentListDTO, orderBy string) {
	switch orderBy {
	case OrderByClient:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].ClientName) < strings.ToLower(rows[j].ClientName)
		})
	case OrderByService:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].ServiceName) < strings.ToLower(rows[j].ServiceName)
		})
	case OrderByValue:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ChargedValue.GreaterThan(rows[j].ChargedValue.Decimal)
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return calendar.Compare(
				calendar.SortKey(rows[i].Date, rows[i].Time),
				calendar.SortKey(rows[j].Date, rows[j].Time),
			) < 0
		})
	}
}

type groupKey struct {
	day   time.Time
	valid bool
}

func group(rows []dto.AppointmentListDTO) []dto.AppointmentGroup {
	idx := make(map[groupKey]int)
	groups := make([]dto.AppointmentGroup, 0)
	keys := make([]groupKey, 0)

	for _, row := range rows {
		day, valid := calendar.GroupKey(row.Date)
		key := groupKey{day: day, valid: valid}
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			keys = append(keys, key)

			g := dto.AppointmentGroup{Valid: valid, Appointments: []dto.AppointmentListDTO{}}
			if valid {
				g.Date = calendar.FormatDate(day)
			}
			groups = append(groups, g)
		}
		groups[i].Appointments = append(groups[i].Appointments, row)
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if ka.valid != kb.valid {
			return ka.valid
		}
		return ka.day.Before(kb.day)
	})

	out := make([]dto.AppointmentGroup, 0, len(groups))
	for _, i := range order {
		out = append(out, groups[i])
	}
	return out
}
