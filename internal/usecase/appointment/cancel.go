package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		clock: clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID models.ID,
) (*models.Appointment, error) {

	var out models.Appointment

	err := uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		ap := s.Appointment(appointmentID)
		if ap == nil {
			return httperr.Validation("appointment_not_found", "agendamento não encontrado")
		}

		now := uc.clock.Now()
		if err := domain.Cancel(ap, now); err != nil {
			return err
		}

		audit.Record(s, ap.ClientID, audit.AppointmentCancelled, map[string]any{
			audit.KeyAppointmentID: ap.ID,
			audit.KeyServiceID:     ap.ServiceID,
		}, now)

		out = *ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
