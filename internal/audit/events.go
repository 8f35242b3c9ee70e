// Package audit keeps the append-only client history: every client and
// appointment change records an event, and the client screen reads them back
// newest first.
package audit

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Kind string

const (
	ClientCreated        Kind = "client_created"
	ClientEdited         Kind = "client_edited"
	AppointmentCreated   Kind = "appointment_created"
	AppointmentCompleted Kind = "appointment_completed"
	AppointmentCancelled Kind = "appointment_cancelled"
	AppointmentEdited    Kind = "appointment_edited"
	PaymentReceived      Kind = "payment_received"
	NoteAdded            Kind = "note_added"
)

// Detail keys.
const (
	KeyServiceID     = "serviceId"
	KeyAppointmentID = "appointmentId"
	KeyDate          = "date"
	KeyTime          = "time"
	KeyValue         = "value"
	KeyText          = "text"
)

// Record appends an event to the snapshot. It is meant to run inside
// Repository.Update so the event is saved with the change it describes.
func Record(s *domain.Snapshot, clientID models.ID, kind Kind, details map[string]any, now time.Time) models.HistoryEvent {
	ev := models.HistoryEvent{
		ID:        models.NewID(),
		ClientID:  clientID,
		Kind:      string(kind),
		Details:   details,
		Timestamp: now,
	}
	s.History = append(s.History, ev)
	return ev
}

// ForClient filters the log to one client, newest first.
func ForClient(events []models.HistoryEvent, clientID models.ID) []models.HistoryEvent {
	out := make([]models.HistoryEvent, 0)
	for _, ev := range events {
		if ev.ClientID == clientID {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

type Stats struct {
	TotalAppointments int          `json:"totalAppointments"`
	Completed         int          `json:"completed"`
	Cancelled         int          `json:"cancelled"`
	TotalPaid         models.Money `json:"totalPaid"`
	FirstAppointment  *time.Time   `json:"firstAppointment,omitempty"`
	LastService       *time.Time   `json:"lastService,omitempty"`
	ClientSince       time.Time    `json:"clientSince"`
}

// ComputeStats summarizes one client's events. Without any appointment the
// client is considered a client since now.
func ComputeStats(events []models.HistoryEvent, clientID models.ID, now time.Time) Stats {
	st := Stats{ClientSince: now}
	paid := decimal.Zero

	for _, ev := range ForClient(events, clientID) {
		ts := ev.Timestamp
		switch Kind(ev.Kind) {
		case AppointmentCreated:
			st.TotalAppointments++
			if st.FirstAppointment == nil || ts.Before(*st.FirstAppointment) {
				st.FirstAppointment = &ts
			}
		case AppointmentCompleted:
			st.Completed++
			if st.LastService == nil || ts.After(*st.LastService) {
				st.LastService = &ts
			}
		case AppointmentCancelled:
			st.Cancelled++
		case PaymentReceived:
			paid = paid.Add(detailMoney(ev.Details[KeyValue]))
		}
	}

	st.TotalPaid = models.MoneyOf(paid)
	if st.FirstAppointment != nil {
		st.ClientSince = *st.FirstAppointment
	}
	return st
}
