package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewCreateClient(repo domain.Repository, clock timezone.Clock) *CreateClient {
	return &CreateClient{repo: repo, clock: clock}
}

func (uc *CreateClient) Execute(ctx context.Context, in dto.ClientInput) (*models.Client, error) {
	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	fields, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var created models.Client

	err = uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		now := uc.clock.Now()

		// --------------------------------------------------
		// 2️⃣ Cliente
		// --------------------------------------------------
		created = models.Client{
			ID:        models.NewID(),
			Name:      fields.Name,
			Phone:     fields.Phone,
			Birthday:  fields.Birthday,
			Notes:     fields.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.Clients = append(s.Clients, created)

		// --------------------------------------------------
		// 3️⃣ Histórico
		// --------------------------------------------------
		audit.Record(s, created.ID, audit.ClientCreated, nil, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// normalize applies the form rules and strips masks from phone and birthday.
func normalize(in dto.ClientInput) (dto.ClientInput, error) {
	name, err := validators.Name(in.Name, "invalid_client_name")
	if err != nil {
		return in, err
	}
	phone, err := validators.Phone(in.Phone)
	if err != nil {
		return in, err
	}
	birthday, err := validators.Birthday(in.Birthday)
	if err != nil {
		return in, err
	}

	return dto.ClientInput{
		Name:     name,
		Phone:    phone,
		Birthday: birthday,
		Notes:    strings.TrimSpace(in.Notes),
	}, nil
}

func errClientNotFound() error {
	return httperr.Validation("client_not_found", "cliente não encontrado")
}
