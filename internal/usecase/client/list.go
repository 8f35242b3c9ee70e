package client

import (
	"context"
	"sort"
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
	OrderByName     = "name"
	OrderByPhone    = "phone"
	OrderByBirthday = "birthday"
)

// unknownBirthday sorts clients without a full birthday last.
const unknownBirthday = "9999"

type ListInput struct {
	Query   string
	OrderBy string
}

type ListClients struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListClients(repo domain.Repository, clock timezone.Clock) *ListClients {
	return &ListClients{repo: repo, clock: clock}
}

func (uc *ListClients) Execute(ctx context.Context, in ListInput) ([]dto.ClientListDTO, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		if matches(c, in.Query) {
			rows = append(rows, c)
		}
	}
	sortClients(rows, in.OrderBy)

	today := timezone.Today(uc.clock)
	out := make([]dto.ClientListDTO, 0, len(rows))
	for _, c := range rows {
		out = append(out, toListDTO(c, today))
	}
	return out, nil
}

type GetClient struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetClient(repo domain.Repository, clock timezone.Clock) *GetClient {
	return &GetClient{repo: repo, clock: clock}
}

func (uc *GetClient) Execute(ctx context.Context, id models.ID) (*dto.ClientListDTO, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	c := s.Client(id)
	if c == nil {
		return nil, errClientNotFound()
	}
	out := toListDTO(*c, timezone.Today(uc.clock))
	return &out, nil
}

func toListDTO(c models.Client, today time.Time) dto.ClientListDTO {
	b := analytics.BirthdayStatus(c.Birthday, today)
	return dto.ClientListDTO{
		Client:            c,
		PhoneFormatted:    calendar.MaskPhone(c.Phone),
		BirthdayFormatted: calendar.MaskBirthday(c.Birthday),
		BirthdayKnown:     b.Known,
		BirthdayToday:     b.Today,
		BirthdayPassed:    b.Passed,
		BirthdaySoon:      b.Soon,
		BirthdayDaysLeft:  b.DaysLeft,
	}
}

// matches searches the name, and the phone and birthday digits when the
// query has any.
func matches(c models.Client, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	digits := calendar.Digits(q)
	if digits == "" {
		return false
	}
	return strings.Contains(c.Phone, digits) || strings.Contains(c.Birthday, digits)
}

// birthdayKey orders DDMM birthdays by month then day.
func birthdayKey(b string) string {
	d := calendar.Digits(b)
	if len(d) != 4 {
		return unknownBirthday
	}
	return d[2:] + d[:2]
}

func sortClients(rows []models.Client, orderBy string) {
	switch orderBy {
	case OrderByName:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
		})
	case OrderByPhone:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Phone < rows[j].Phone
		})
	case OrderByBirthday:
		sort.SliceStable(rows, func(i, j int) bool {
			return birthdayKey(rows[i].Birthday) < birthdayKey(rows[j].Birthday)
		})
	}
}
