package analytics

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Dashboard struct {
	TotalClients  int                `json:"totalClients"`
	ActiveClients int                `json:"activeClients"`
	Month         MonthFinancials    `json:"month"`
	TopService    ServiceCount       `json:"topService"`
	TopClients    []ClientRank       `json:"topClients"`
	Maintenance   []MaintenanceEntry `json:"maintenance"`
}

// BuildDashboard composes every figure of the dashboard screen. Without
// appointments the top service is the "Nenhum" placeholder with count 0.
func BuildDashboard(
	clients []models.Client,
	services []models.Service,
	appts []models.Appointment,
	today time.Time,
) Dashboard {
	d := Dashboard{
		TotalClients:  len(clients),
		ActiveClients: ActiveClients(appts),
		Month:         MonthlyFinancials(appts, services, today),
		TopService:    ServiceCount{Name: NoService},
		TopClients:    TopClients(clients, appts),
		Maintenance:   MaintenanceList(clients, appts, services, today),
	}
	if top := MostPerformedService(appts, services); top != nil {
		d.TopService = *top
	}
	return d
}
