package appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(StatusOf(*ap)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(StatusOf(*ap)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.UpdatedAt = now
	return nil
}

// ===============================
// Derived values
// ===============================

// Difference is charged value minus the service price. A missing service
// counts as price 0; a missing charged value as 0.
func Difference(ap models.Appointment, svc *models.Service) decimal.Decimal {
	charged, _ := ap.Charged()
	if svc == nil {
		return charged
	}
	return charged.Sub(svc.Price.Decimal)
}
