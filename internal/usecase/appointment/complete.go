package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	clock timezone.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		clock: clock,
	}
}

// Execute marks the appointment done and records the payment of its
// charged value.
func (uc *CompleteAppointment) Execute(
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
		if err := domain.Complete(ap, now); err != nil {
			return err
		}

		value, _ := ap.Charged()
		audit.Record(s, ap.ClientID, audit.AppointmentCompleted, map[string]any{
			audit.KeyAppointmentID: ap.ID,
			audit.KeyServiceID:     ap.ServiceID,
			audit.KeyValue:         models.MoneyOf(value),
		}, now)
		audit.Record(s, ap.ClientID, audit.PaymentReceived, map[string]any{
			audit.KeyAppointmentID: ap.ID,
			audit.KeyValue:         models.MoneyOf(value),
		}, now)

		out = *ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}
