package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type UpdateAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewUpdateAppointment(repo domain.Repository, clock timezone.Clock) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, clock: clock}
}

// Execute replaces the editable fields and keeps id, status and timestamps.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id models.ID,
	in dto.AppointmentInput,
) (*models.Appointment, error) {

	var updated models.Appointment

	err := uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		ap := s.Appointment(id)
		if ap == nil {
			return httperr.Validation("appointment_not_found", "agendamento não encontrado")
		}

		v, err := validate(s, in)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		charged := v.charged

		ap.ClientID = v.client.ID
		ap.ServiceID = v.service.ID
		ap.ClientName = v.client.Name
		ap.ServiceName = v.service.Name
		ap.Date = v.date
		ap.Time = v.time
		ap.ChargedValue = &charged
		ap.Notes = v.notes
		ap.UpdatedAt = now
		updated = *ap

		audit.Record(s, v.client.ID, audit.AppointmentEdited, map[string]any{
			audit.KeyAppointmentID: ap.ID,
			audit.KeyServiceID:     ap.ServiceID,
			audit.KeyDate:          ap.Date,
			audit.KeyTime:          ap.Time,
		}, now)

		appendClientNote(s, v.client.ID, v.notes, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id models.ID) error {
	return uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		i := s.AppointmentIndex(id)
		if i < 0 {
			return httperr.Validation("appointment_not_found", "agendamento não encontrado")
		}
		s.Appointments = append(s.Appointments[:i], s.Appointments[i+1:]...)
		return nil
	})
}
