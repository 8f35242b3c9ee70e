package dashboard

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/analytics"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetDashboard struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetDashboard(repo domain.Repository, clock timezone.Clock) *GetDashboard {
	return &GetDashboard{repo: repo, clock: clock}
}

// Execute computes the dashboard from one consistent snapshot, "today"
// being the shop's current day.
func (uc *GetDashboard) Execute(ctx context.Context) (*analytics.Dashboard, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	d := analytics.BuildDashboard(s.Clients, s.Services, s.Appointments, timezone.Today(uc.clock))
	return &d, nil
}
