package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in dto.AppointmentInput,
) (*models.Appointment, error) {

	var created models.Appointment

	err := uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		// --------------------------------------------------
		// 1️⃣ Validação
		// --------------------------------------------------
		v, err := validate(s, in)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		charged := v.charged

		// --------------------------------------------------
		// 2️⃣ Agendamento (status centralizado)
		// --------------------------------------------------
		created = models.Appointment{
			ID:           models.NewID(),
			ClientID:     v.client.ID,
			ServiceID:    v.service.ID,
			ClientName:   v.client.Name,
			ServiceName:  v.service.Name,
			Date:         v.date,
			Time:         v.time,
			ChargedValue: &charged,
			Notes:        v.notes,
			Status:       string(domain.InitialStatus()),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.Appointments = append(s.Appointments, created)

		// --------------------------------------------------
		// 3️⃣ Histórico
		// --------------------------------------------------
		audit.Record(s, v.client.ID, audit.AppointmentCreated, map[string]any{
			audit.KeyAppointmentID: created.ID,
			audit.KeyServiceID:     created.ServiceID,
			audit.KeyDate:          created.Date,
			audit.KeyTime:          created.Time,
		}, now)

		appendClientNote(s, v.client.ID, v.notes, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// appendClientNote copies an appointment note into the client's notes log.
func appendClientNote(s *domain.Snapshot, clientID models.ID, text string, now time.Time) {
	if text == "" {
		return
	}
	c := s.Client(clientID)
	if c == nil {
		return
	}
	c.AppendNote(calendar.Day(now), text)
	c.UpdatedAt = now
	audit.Record(s, clientID, audit.NoteAdded, map[string]any{audit.KeyText: text}, now)
}
