package service

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/analytics"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const (
	OrderByName  = "name"
	OrderByPrice = "price"
)

func errServiceNotFound() error {
	return httperr.Validation("service_not_found", "serviço não encontrado")
}

func normalize(in dto.ServiceInput) (models.Service, error) {
	name, err := validators.Name(in.Name, "invalid_service_name")
	if err != nil {
		return models.Service{}, err
	}
	if len([]rune(name)) > validators.MaxServiceNameLen {
		return models.Service{}, httperr.Validation("invalid_service_name", "nome do serviço muito longo")
	}
	if in.Price.IsNegative() {
		return models.Service{}, httperr.Validation("invalid_price", "preço não pode ser negativo")
	}

	svc := models.Service{Name: name, Price: in.Price}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return models.Service{}, httperr.Validation("invalid_cost", "custo não pode ser negativo")
		}
		svc.Cost = *in.Cost
	}
	return svc, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo domain.Repository
}

func NewCreateService(repo domain.Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(ctx context.Context, in dto.ServiceInput) (*models.Service, error) {
	svc, err := normalize(in)
	if err != nil {
		return nil, err
	}
	svc.ID = models.NewID()

	err = uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		s.Services = append(s.Services, svc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// ======================================================
// UPDATE / DELETE
// ======================================================

type UpdateService struct {
	repo domain.Repository
}

func NewUpdateService(repo domain.Repository) *UpdateService {
	return &UpdateService{repo: repo}
}

// Execute changes name, price and cost. Past appointments keep their
// charged value; only their displayed service name follows the change.
func (uc *UpdateService) Execute(ctx context.Context, id models.ID, in dto.ServiceInput) (*models.Service, error) {
	next, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var updated models.Service
	err = uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		svc := s.Service(id)
		if svc == nil {
			return errServiceNotFound()
		}
		next.ID = svc.ID
		*svc = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

type DeleteService struct {
	repo domain.Repository
}

func NewDeleteService(repo domain.Repository) *DeleteService {
	return &DeleteService{repo: repo}
}

func (uc *DeleteService) Execute(ctx context.Context, id models.ID) error {
	return uc.repo.Update(ctx, func(s *domain.Snapshot) error {
		i := s.ServiceIndex(id)
		if i < 0 {
			return errServiceNotFound()
		}
		s.Services = append(s.Services[:i], s.Services[i+1:]...)
		return nil
	})
}

// ======================================================
// LIST
// ======================================================

type ListInput struct {
	Query   string
	OrderBy string
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute returns the services with their margin, filtered by name or
// price text.
func (uc *ListServices) Execute(ctx context.Context, in ListInput) ([]analytics.ServiceMargin, error) {
	s, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(in.Query))
	rows := make([]models.Service, 0, len(s.Services))
	for _, svc := range s.Services {
		if q == "" ||
			strings.Contains(strings.ToLower(svc.Name), q) ||
			strings.Contains(svc.Price.String(), q) {
			rows = append(rows, svc)
		}
	}

	switch in.OrderBy {
	case OrderByName:
		sort.SliceStable(rows, func(i, j int) bool {
			return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
		})
	case OrderByPrice:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Price.LessThan(rows[j].Price.Decimal)
		})
	}

	return analytics.Margins(rows), nil
}
