package history

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func seeded(t *testing.T) (*repository.RecordRepository, timezone.Clock) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewRecordRepository(store.NewMemory(), nil)
	base := time.Date(2024, time.October, 10, 13, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Update(ctx, func(s *domain.Snapshot) error {
		s.Services = []models.Service{{ID: "s1", Name: "Manicure", Price: models.NewMoney(40)}}
		audit.Record(s, "c1", audit.ClientCreated, nil, base)
		audit.Record(s, "c1", audit.AppointmentCreated, map[string]any{
			audit.KeyServiceID: "s1", audit.KeyDate: "11/10/2024", audit.KeyTime: "10:00",
		}, base.Add(time.Hour))
		audit.Record(s, "c1", audit.PaymentReceived, map[string]any{
			audit.KeyValue: models.NewMoney(45.5),
		}, base.Add(2*time.Hour))
		audit.Record(s, "c2", audit.ClientCreated, nil, base)
		return nil
	}))

	return repo, timezone.FixedClock{At: base.Add(48 * time.Hour)}
}

func TestListClientHistory(t *testing.T) {
	repo, clock := seeded(t)

	entries, err := NewListClientHistory(repo, clock).Execute(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Pagamento recebido - R$ 45,50", entries[0].Description)
	assert.Equal(t, "💰", entries[0].Icon)
	assert.Equal(t, "Agendamento criado - Manicure para 11/10/2024 às 10:00", entries[1].Description)
	assert.Equal(t, "Cliente cadastrado no sistema", entries[2].Description)
	assert.Equal(t, "10/10/2024", entries[2].Date)
	assert.Equal(t, "13:00", entries[2].Time)
}

func TestGetClientStats(t *testing.T) {
	repo, clock := seeded(t)

	st, err := NewGetClientStats(repo, clock).Execute(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, st.TotalAppointments)
	assert.Equal(t, "45.5", st.TotalPaid.String())
	require.NotNil(t, st.FirstAppointment)
	assert.Equal(t, *st.FirstAppointment, st.ClientSince)

	empty, err := NewGetClientStats(repo, clock).Execute(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), empty.ClientSince)
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	repo, clock := seeded(t)

	n, err := NewClearHistory(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	entries, err := NewListClientHistory(repo, clock).Execute(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListHistoryFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	repo, clock := seeded(t)
	uc := NewListHistory(repo, clock)

	page, err := uc.Execute(ctx, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, DefaultPageSize, page.Limit)
	assert.Equal(t, "Pagamento recebido - R$ 45,50", page.Entries[0].Description)

	page, err = uc.Execute(ctx, ListInput{Kind: string(audit.ClientCreated)})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = uc.Execute(ctx, ListInput{ClientID: "c1", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Cliente cadastrado no sistema", page.Entries[0].Description)

	page, err = uc.Execute(ctx, ListInput{From: time.Date(2024, time.October, 11, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Entries)

	page, err = uc.Execute(ctx, ListInput{To: time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC), Page: 9})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Empty(t, page.Entries)
}

func TestListHistoryPageBeyondRange(t *testing.T) {
	ctx := context.Background()
	repo, clock := seeded(t)
	uc := NewListHistory(repo, clock)

	for _, p := range []int{3, 1 << 40, math.MaxInt} {
		page, err := uc.Execute(ctx, ListInput{Page: p, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Empty(t, page.Entries)
	}
}
