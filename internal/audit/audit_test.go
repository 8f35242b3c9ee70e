package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var t0 = time.Date(2024, time.October, 1, 13, 0, 0, 0, time.UTC)

func TestRecordAndForClient(t *testing.T) {
	s := &domain.Snapshot{}

	Record(s, "a", ClientCreated, nil, t0)
	Record(s, "b", ClientCreated, nil, t0.Add(time.Minute))
	Record(s, "a", NoteAdded, map[string]any{KeyText: "alérgica a acetona"}, t0.Add(2*time.Minute))

	require.Len(t, s.History, 3)

	got := ForClient(s.History, "a")
	require.Len(t, got, 2)
	assert.Equal(t, string(NoteAdded), got[0].Kind)
	assert.Equal(t, string(ClientCreated), got[1].Kind)

	assert.Empty(t, ForClient(s.History, "nobody"))
}

func TestComputeStats(t *testing.T) {
	s := &domain.Snapshot{}
	Record(s, "a", AppointmentCreated, nil, t0.Add(time.Hour))
	Record(s, "a", AppointmentCreated, nil, t0)
	Record(s, "a", AppointmentCompleted, nil, t0.Add(2*time.Hour))
	Record(s, "a", PaymentReceived, map[string]any{KeyValue: models.NewMoney(80)}, t0.Add(2*time.Hour))
	Record(s, "a", AppointmentCancelled, nil, t0.Add(3*time.Hour))

	// payments read back from storage arrive as float64
	b, err := json.Marshal(s.History)
	require.NoError(t, err)
	var stored []models.HistoryEvent
	require.NoError(t, json.Unmarshal(b, &stored))
	stored = append(stored, models.HistoryEvent{
		ClientID: "a", Kind: string(PaymentReceived),
		Details:   map[string]any{KeyValue: 20.5},
		Timestamp: t0.Add(4 * time.Hour),
	})

	st := ComputeStats(stored, "a", t0.AddDate(0, 1, 0))

	assert.Equal(t, 2, st.TotalAppointments)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 1, st.Cancelled)
	assert.Equal(t, "100.5", st.TotalPaid.String())
	require.NotNil(t, st.FirstAppointment)
	assert.True(t, st.FirstAppointment.Equal(t0))
	assert.True(t, st.ClientSince.Equal(t0))
	require.NotNil(t, st.LastService)
}

func TestComputeStatsWithoutAppointments(t *testing.T) {
	now := t0.AddDate(0, 0, 3)
	st := ComputeStats(nil, "a", now)
	assert.Equal(t, now, st.ClientSince)
	assert.Nil(t, st.FirstAppointment)
	assert.True(t, st.TotalPaid.IsZero())
}

func TestDescribe(t *testing.T) {
	services := []models.Service{{ID: "s1", Name: "Manicure"}}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	cases := []struct {
		kind    Kind
		details map[string]any
		want    string
	}{
		{ClientCreated, nil, "Cliente cadastrado no sistema"},
		{ClientEdited, nil, "Informações do cliente atualizadas"},
		{AppointmentCreated, map[string]any{KeyServiceID: "s1", KeyDate: "14/10/2024", KeyTime: "10:00"},
			"Agendamento criado - Manicure para 14/10/2024 às 10:00"},
		{AppointmentCompleted, map[string]any{KeyServiceID: "s1", KeyValue: 45.0},
			"Serviço concluído - Manicure - R$ 45,00"},
		{AppointmentCancelled, map[string]any{KeyServiceID: "gone"}, "Agendamento cancelado - Serviço"},
		{AppointmentEdited, nil, "Agendamento modificado"},
		{PaymentReceived, map[string]any{KeyValue: "1.234,5"}, "Pagamento recebido - R$ 1234,50"},
		{NoteAdded, map[string]any{KeyText: "prefere esmalte claro"}, "Observação: prefere esmalte claro"},
		{Kind("imported"), nil, "Evento registrado"},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			ev := models.HistoryEvent{Kind: string(tc.kind), Details: tc.details, Timestamp: t0}
			got := Describe(ev, services, loc)
			assert.Equal(t, tc.want, got.Description)
			assert.Equal(t, "01/10/2024", got.Date)
			assert.Equal(t, "10:00", got.Time)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 12,30", FormatBRL(decimal.NewFromFloat(12.3)))
}
