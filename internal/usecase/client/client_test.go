package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

var clock = timezone.FixedClock{At: time.Date(2024, time.October, 16, 15, 0, 0, 0, time.UTC)}

func newRepo() *repository.RecordRepository {
	return repository.NewRecordRepository(store.NewMemory(), nil)
}

func TestCreateClientNormalizesInput(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	c, err := NewCreateClient(repo, clock).Execute(ctx, dto.ClientInput{
		Name:     "  Ana Souza ",
		Phone:    "(11) 98765-4321",
		Birthday: "20/10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", c.Name)
	assert.Equal(t, "11987654321", c.Phone)
	assert.Equal(t, "2010", c.Birthday)

	s, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, s.History, 1)
	assert.Equal(t, string(audit.ClientCreated), s.History[0].Kind)
	assert.Equal(t, c.ID, s.History[0].ClientID)
}

func TestCreateClientValidation(t *testing.T) {
	uc := NewCreateClient(newRepo(), clock)

	tests := []struct {
		name string
		in   dto.ClientInput
		code string
	}{
		{"empty name", dto.ClientInput{Name: "   "}, "invalid_client_name"},
		{"long phone", dto.ClientInput{Name: "Ana", Phone: "119876543210"}, "invalid_phone"},
		{"bad birthday", dto.ClientInput{Name: "Ana", Birthday: "32/01"}, "invalid_birthday"},
		{"bad month", dto.ClientInput{Name: "Ana", Birthday: "10/13"}, "invalid_birthday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestUpdateDeleteAndNote(t *testing.T) {
	ctx := context.Background()
	repo := newRepo()

	c, err := NewCreateClient(repo, clock).Execute(ctx, dto.ClientInput{Name: "Ana"})
	require.NoError(t, err)

	updated, err := NewUpdateClient(repo, clock).Execute(ctx, c.ID, dto.ClientInput{Name: "Ana Paula", Phone: "11 3333-4444"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", updated.Name)
	assert.Equal(t, "1133334444", updated.Phone)

	noted, err := NewAddNote(repo, clock).Execute(ctx, c.ID, dto.NoteInput{Text: "prefere esmalte claro"})
	require.NoError(t, err)
	assert.Equal(t, "16/10/2024: prefere esmalte claro", noted.Notes)

	_, err = NewAddNote(repo, clock).Execute(ctx, c.ID, dto.NoteInput{Text: "  "})
	assert.True(t, httperr.IsBusiness(err, "invalid_note"))

	s, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	kinds := []string{}
	for _, ev := range s.History {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []string{
		string(audit.ClientCreated),
		string(audit.ClientEdited),
		string(audit.NoteAdded),
	}, kinds)

	require.NoError(t, NewDeleteClient(repo).Execute(ctx, c.ID))
	assert.True(t, httperr.IsNotFound(NewDeleteClient(repo).Execute(ctx, c.ID)))

	_, err = NewUpdateClient(repo, clock).Execute(ctx, c.ID, dto.ClientInput{Name: "X"})
	assert.True(t, httperr.IsNotFound(err))
	_, err = NewGetClient(repo, clock).Execute(ctx, c.ID)
	assert.True(t, httperr.IsNotFound(err))
}

func seedClients(t *testing.T) *repository.RecordRepository {
	t.Helper()
	repo := newRepo()
	require.NoError(t, repo.Update(context.Background(), func(s *domain.Snapshot) error {
		s.Clients = []models.Client{
			{ID: "1", Name: "carla", Phone: "21999990000", Birthday: "0101"},
			{ID: "2", Name: "Ana", Phone: "11988887777"},
			{ID: "3", Name: "Bia", Phone: "11977776666", Birthday: "1610"},
			{ID: "4", Name: "Duda", Phone: "", Birthday: "2010"},
		}
		return nil
	}))
	return repo
}

func ids(rows []dto.ClientListDTO) []models.ID {
	out := make([]models.ID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestListClientsOrdering(t *testing.T) {
	ctx := context.Background()
	uc := NewListClients(seedClients(t), clock)

	rows, err := uc.Execute(ctx, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"1", "2", "3", "4"}, ids(rows))

	rows, err = uc.Execute(ctx, ListInput{OrderBy: OrderByName})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"2", "3", "1", "4"}, ids(rows))

	rows, err = uc.Execute(ctx, ListInput{OrderBy: OrderByPhone})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"4", "3", "2", "1"}, ids(rows))

	rows, err = uc.Execute(ctx, ListInput{OrderBy: OrderByBirthday})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"1", "3", "4", "2"}, ids(rows))
}

func TestListClientsSearchAndBirthday(t *testing.T) {
	ctx := context.Background()
	uc := NewListClients(seedClients(t), clock)

	rows, err := uc.Execute(ctx, ListInput{Query: "BI"})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"3"}, ids(rows))

	rows, err = uc.Execute(ctx, ListInput{Query: "(11) 9"})
	require.NoError(t, err)
	assert.Equal(t, []models.ID{"2", "3"}, ids(rows))

	rows, err = uc.Execute(ctx, ListInput{Query: "bia"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "(11) 97777-6666", rows[0].PhoneFormatted)
	assert.Equal(t, "16/10", rows[0].BirthdayFormatted)
	assert.True(t, rows[0].BirthdayToday)

	got, err := NewGetClient(seedClients(t), clock).Execute(ctx, "4")
	require.NoError(t, err)
	assert.True(t, got.BirthdaySoon)
	assert.Equal(t, 4, got.BirthdayDaysLeft)

	got, err = NewGetClient(seedClients(t), clock).Execute(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.BirthdayPassed)
}
