package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var today = time.Date(2024, time.October, 16, 0, 0, 0, 0, time.UTC)

func client(id, name string) models.Client {
	return models.Client{ID: models.ID(id), Name: name}
}

func visit(clientID, serviceID, date string, charged *models.Money) models.Appointment {
	return models.Appointment{
		ID:           models.NewID(),
		ClientID:     models.ID(clientID),
		ServiceID:    models.ID(serviceID),
		Date:         date,
		Time:         "10:00",
		ChargedValue: charged,
	}
}

func daysAgo(n int) string {
	return calendar.FormatDate(today.AddDate(0, 0, -n))
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 0.0, Frequency(nil))
	assert.Equal(t, 1.0, Frequency([]models.Appointment{visit("c", "s", "01/01/2024", nil)}))

	twoMonths := []models.Appointment{
		visit("c", "s", "01/01/2024", nil),
		visit("c", "s", "01/03/2024", nil),
	}
	assert.InDelta(t, 1.0, Frequency(twoMonths), 1e-9)

	sameWeek := []models.Appointment{
		visit("c", "s", "01/01/2024", nil),
		visit("c", "s", "05/01/2024", nil),
		visit("c", "s", "07/01/2024", nil),
	}
	assert.Equal(t, 3.0, Frequency(sameWeek))

	withBroken := []models.Appointment{
		visit("c", "s", "01/01/2024", nil),
		visit("c", "s", "not a date", nil),
	}
	assert.Equal(t, 2.0, Frequency(withBroken))
}

func TestTopClients(t *testing.T) {
	clients := []models.Client{
		client("a", "Ana"),
		client("b", "Bia"),
		client("c", "Carla"),
		client("idle", "Sem visitas"),
	}
	appts := []models.Appointment{
		visit("b", "s", "01/10/2024", models.MoneyPtr(100)),
		visit("a", "s", "02/10/2024", models.MoneyPtr(100)),
		visit("c", "s", "01/10/2024", models.MoneyPtr(100)),
		visit("c", "s", "03/10/2024", models.MoneyPtr(100)),
	}

	got := TopClients(clients, appts)

	require.Len(t, got, 3)
	assert.Equal(t, models.ID("c"), got[0].ClientID)
	assert.InDelta(t, 4.2, got[0].Score, 1e-9)
	assert.Equal(t, "03/10/2024", got[0].LastVisit)
	// a and b tie; collection order wins
	assert.Equal(t, models.ID("a"), got[1].ClientID)
	assert.Equal(t, models.ID("b"), got[2].ClientID)
	assert.Equal(t, got[1].Score, got[2].Score)
}

func TestTopClientsUnchargedCountsAsZero(t *testing.T) {
	got := TopClients(
		[]models.Client{client("a", "Ana")},
		[]models.Appointment{visit("a", "s", "01/10/2024", nil)},
	)
	require.Len(t, got, 1)
	assert.True(t, got[0].TotalSpent.IsZero())
	assert.Equal(t, 2.0, got[0].Score)
}

func TestTopClientsKeepsFive(t *testing.T) {
	var clients []models.Client
	var appts []models.Appointment
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		clients = append(clients, client(id, id))
		appts = append(appts, visit(id, "s", "01/10/2024", nil))
	}

	got := TopClients(clients, appts)
	require.Len(t, got, TopClientsLimit)
	assert.Equal(t, models.ID("1"), got[0].ClientID)
	assert.Equal(t, models.ID("5"), got[4].ClientID)
}

func TestMaintenanceWindow(t *testing.T) {
	clients := []models.Client{
		client("d19", "19 dias"),
		client("d20", "20 dias"),
		client("d25", "25 dias"),
		client("d28", "28 dias"),
		client("d30", "30 dias"),
		client("d40", "40 dias"),
		client("d41", "41 dias"),
		client("d35", "35 dias"),
		client("none", "Sem visitas"),
	}
	services := []models.Service{{ID: "s", Name: "Alongamento", Price: models.NewMoney(150)}}
	appts := []models.Appointment{
		visit("d19", "s", daysAgo(19), nil),
		visit("d20", "s", daysAgo(20), nil),
		visit("d25", "s", daysAgo(25), nil),
		visit("d28", "s", daysAgo(28), nil),
		visit("d30", "s", daysAgo(30), models.MoneyPtr(120)),
		visit("d40", "gone", daysAgo(40), nil),
		visit("d41", "s", daysAgo(41), nil),
		visit("d35", "s", daysAgo(35), models.MoneyPtr(0)),
	}

	got := MaintenanceList(clients, appts, services, today)

	require.Len(t, got, 6)
	byID := make(map[models.ID]MaintenanceEntry)
	for _, e := range got {
		byID[e.ClientID] = e
	}

	assert.NotContains(t, byID, models.ID("d19"))
	assert.NotContains(t, byID, models.ID("d41"))
	assert.NotContains(t, byID, models.ID("none"))

	assert.Equal(t, 0, byID["d30"].DaysToIdeal)
	assert.Equal(t, PriorityHigh, byID["d30"].Priority)
	assert.Equal(t, "120", byID["d30"].LastValue.String())

	assert.Equal(t, PriorityHigh, byID["d28"].Priority)
	assert.Equal(t, PriorityMedium, byID["d25"].Priority)
	assert.Equal(t, PriorityLow, byID["d20"].Priority)
	assert.Equal(t, 10, byID["d20"].DaysToIdeal)
	assert.Equal(t, "150", byID["d20"].LastValue.String())

	assert.Equal(t, -10, byID["d40"].DaysToIdeal)
	assert.Equal(t, ServiceNotFound, byID["d40"].LastService)
	assert.True(t, byID["d40"].LastValue.IsZero())

	assert.Equal(t, "150", byID["d35"].LastValue.String())

	// most overdue first
	assert.Equal(t, models.ID("d40"), got[0].ClientID)
	assert.Equal(t, models.ID("d20"), got[5].ClientID)
}

func TestMaintenanceUsesLatestVisit(t *testing.T) {
	clients := []models.Client{client("a", "Ana")}
	appts := []models.Appointment{
		visit("a", "s", daysAgo(60), nil),
		visit("a", "s", daysAgo(22), nil),
		visit("a", "s", "31/02/2024", nil),
	}

	got := MaintenanceList(clients, appts, nil, today)
	require.Len(t, got, 1)
	assert.Equal(t, 22, got[0].DaysElapsed)
}

func TestMaintenanceCap(t *testing.T) {
	var clients []models.Client
	var appts []models.Appointment
	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		clients = append(clients, client(id, id))
		appts = append(appts, visit(id, "s", daysAgo(20+i), nil))
	}

	got := MaintenanceList(clients, appts, nil, today)
	require.Len(t, got, MaintenanceLimit)
	assert.Equal(t, 34, got[0].DaysElapsed)
}

func TestMonthlyFinancials(t *testing.T) {
	services := []models.Service{
		{ID: "s", Name: "Corte", Price: models.NewMoney(80), Cost: models.NewMoney(20)},
	}
	appts := []models.Appointment{
		visit("a", "s", "01/10/2024", models.MoneyPtr(100)),
		visit("a", "s", "30/09/2024", models.MoneyPtr(50)),
		visit("b", "s", "31/10/2024", nil),
		visit("b", "gone", "15/10/2024", nil),
	}

	got := MonthlyFinancials(appts, services, today)

	assert.Equal(t, "01/10/2024", got.From)
	assert.Equal(t, "31/10/2024", got.To)
	assert.Equal(t, 3, got.Appointments)
	assert.Equal(t, "180", got.Revenue.String())
	assert.Equal(t, "40", got.Cost.String())
	assert.Equal(t, "140", got.Profit.String())
	assert.InDelta(t, 77.777, got.MarginPercent, 0.001)
}

func TestMonthlyRevenueOnlyCountsThisMonth(t *testing.T) {
	appts := []models.Appointment{
		visit("a", "s", "01/10/2024", models.MoneyPtr(100)),
		visit("a", "s", "16/09/2024", models.MoneyPtr(50)),
	}

	got := MonthlyFinancials(appts, nil, today)
	assert.Equal(t, "100", got.Revenue.String())
	assert.Equal(t, 100.0, got.MarginPercent)
}

func TestMonthlyFinancialsEmpty(t *testing.T) {
	got := MonthlyFinancials(nil, nil, today)
	assert.True(t, got.Revenue.IsZero())
	assert.Equal(t, 0.0, got.MarginPercent)
}

func TestActiveClients(t *testing.T) {
	appts := []models.Appointment{
		visit("a", "s", "01/01/2020", nil),
		visit("b", "s", "01/10/2024", nil),
		visit("a", "s", "02/10/2024", nil),
	}
	assert.Equal(t, 2, ActiveClients(appts))
	assert.Equal(t, 0, ActiveClients(nil))
}

func TestMostPerformedService(t *testing.T) {
	services := []models.Service{
		{ID: "x", Name: "Escova"},
		{ID: "y", Name: "Corte"},
	}

	assert.Nil(t, MostPerformedService(nil, services))

	tie := []models.Appointment{
		visit("a", "y", "01/10/2024", nil),
		visit("a", "x", "01/10/2024", nil),
		visit("a", "x", "01/10/2024", nil),
		visit("a", "y", "01/10/2024", nil),
	}
	got := MostPerformedService(tie, services)
	require.NotNil(t, got)
	assert.Equal(t, "Corte", got.Name)
	assert.Equal(t, 2, got.Count)

	missing := MostPerformedService([]models.Appointment{visit("a", "zz", "01/10/2024", nil)}, services)
	assert.Equal(t, ServiceNotFound, missing.Name)
}

func TestBuildDashboard(t *testing.T) {
	empty := BuildDashboard(nil, nil, nil, today)
	assert.Equal(t, NoService, empty.TopService.Name)
	assert.Equal(t, 0, empty.TopService.Count)
	assert.Empty(t, empty.TopClients)
	assert.Empty(t, empty.Maintenance)

	clients := []models.Client{client("a", "Ana"), client("b", "Bia")}
	services := []models.Service{{ID: "s", Name: "Corte", Price: models.NewMoney(50)}}
	appts := []models.Appointment{visit("a", "s", daysAgo(21), nil)}

	d := BuildDashboard(clients, services, appts, today)
	assert.Equal(t, 2, d.TotalClients)
	assert.Equal(t, 1, d.ActiveClients)
	assert.Equal(t, "Corte", d.TopService.Name)
	assert.Len(t, d.TopClients, 1)
	assert.Len(t, d.Maintenance, 1)
}

func TestMargins(t *testing.T) {
	cases := []struct {
		price, cost float64
		margin      float64
		tier        MarginTier
	}{
		{100, 40, 60, MarginHigh},
		{100, 50, 50, MarginHigh},
		{100, 70, 30, MarginMedium},
		{100, 90, 10, MarginLow},
		{100, 150, 0, MarginLow},
		{0, 10, 0, MarginLow},
	}

	for _, tc := range cases {
		s := models.Service{Price: models.NewMoney(tc.price), Cost: models.NewMoney(tc.cost)}
		assert.InDelta(t, tc.margin, MarginPercent(s), 1e-9)
		assert.Equal(t, tc.tier, TierFor(MarginPercent(s)))
	}

	got := Margins([]models.Service{{ID: "s", Name: "Corte", Price: models.NewMoney(80), Cost: models.NewMoney(20)}})
	require.Len(t, got, 1)
	assert.Equal(t, "60", got[0].Profit.String())
	assert.Equal(t, MarginHigh, got[0].Tier)
}

func TestBirthdayStatus(t *testing.T) {
	cases := []struct {
		name     string
		birthday string
		want     BirthdayInfo
	}{
		{"empty", "", BirthdayInfo{}},
		{"partial", "16", BirthdayInfo{}},
		{"bad month", "1613", BirthdayInfo{}},
		{"today", "1610", BirthdayInfo{Known: true, Today: true, Soon: true}},
		{"passed", "0101", BirthdayInfo{Known: true, Passed: true}},
		{"next week", "2010", BirthdayInfo{Known: true, DaysLeft: 4, Soon: true}},
		{"later", "2512", BirthdayInfo{Known: true, DaysLeft: 70}},
		{"masked", "20/10", BirthdayInfo{Known: true, DaysLeft: 4, Soon: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BirthdayStatus(tc.birthday, today))
		})
	}
}
