package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Snapshot is a full in-memory copy of the record store. Use cases read it,
// analytics compute over it, and writes go through Repository.Update.
type Snapshot struct {
	Clients      []models.Client
	Services     []models.Service
	Appointments []models.Appointment
	History      []models.HistoryEvent
}

type Repository interface {
	// Snapshot loads every collection.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Update loads a snapshot, runs fn and persists the result when fn
	// returns nil. Nothing is written when fn fails.
	Update(ctx context.Context, fn func(s *Snapshot) error) error
}

// -------- Lookups --------

func (s *Snapshot) ClientIndex(id models.ID) int {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) ServiceIndex(id models.ID) int {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) AppointmentIndex(id models.ID) int {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// Client returns nil when the id is unknown.
func (s *Snapshot) Client(id models.ID) *models.Client {
	if i := s.ClientIndex(id); i >= 0 {
		return &s.Clients[i]
	}
	return nil
}

func (s *Snapshot) Service(id models.ID) *models.Service {
	if i := s.ServiceIndex(id); i >= 0 {
		return &s.Services[i]
	}
	return nil
}

func (s *Snapshot) Appointment(id models.ID) *models.Appointment {
	if i := s.AppointmentIndex(id); i >= 0 {
		return &s.Appointments[i]
	}
	return nil
}
