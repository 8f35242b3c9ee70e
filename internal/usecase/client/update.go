package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type UpdateClient struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewUpdateClient(repo domain.Repository, clock timezone.Clock) *UpdateClient {
	return &UpdateClient{repo: repo, clock: clock}
}

// Execute replaces name, phone, birthday and notes. Appointments keep the
// name snapshot taken when they were booked.
func (uc *UpdateClient) Execute(ctx context.Context, id models.ID, in dto.ClientInput) (*models.Client, error) {
	fields, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var updated models.Client

	err = uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		c := s.Client(id)
		if c == nil {
			return errClientNotFound()
		}

		now := uc.clock.Now()
		c.Name = fields.Name
		c.Phone = fields.Phone
		c.Birthday = fields.Birthday
		c.Notes = fields.Notes
		c.UpdatedAt = now
		updated = *c

		audit.Record(s, c.ID, audit.ClientEdited, nil, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

type DeleteClient struct {
	repo domain.Repository
}

func NewDeleteClient(repo domain.Repository) *DeleteClient {
	return &DeleteClient{repo: repo}
}

// Execute removes the client only. Its appointments and history stay and
// are shown with a placeholder name.
func (uc *DeleteClient) Execute(ctx context.Context, id models.ID) error {
	return uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		i := s.ClientIndex(id)
		if i < 0 {
			return errClientNotFound()
		}
		s.Clients = append(s.Clients[:i], s.Clients[i+1:]...)
		return nil
	})
}

type AddNote struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewAddNote(repo domain.Repository, clock timezone.Clock) *AddNote {
	return &AddNote{repo: repo, clock: clock}
}

// Execute appends a dated line to the client's notes.
func (uc *AddNote) Execute(ctx context.Context, id models.ID, in dto.NoteInput) (*models.Client, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, httperr.Validation("invalid_note", "observação vazia")
	}

	var updated models.Client

	err := uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		c := s.Client(id)
		if c == nil {
			return errClientNotFound()
		}

		now := uc.clock.Now()
		c.AppendNote(calendar.Day(now), text)
		c.UpdatedAt = now
		updated = *c

		audit.Record(s, c.ID, audit.NoteAdded, map[string]any{audit.KeyText: text}, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
