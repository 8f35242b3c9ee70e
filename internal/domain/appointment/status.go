package appointment

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// StatusOf treats records saved without a status as scheduled.
func StatusOf(ap models.Appointment) Status {
	if ap.Status == "" {
		return StatusScheduled
	}
	return Status(ap.Status)
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.Validation("invalid_state", "apenas agendamentos pendentes podem ser cancelados")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.Validation("invalid_state", "apenas agendamentos pendentes podem ser concluídos")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
