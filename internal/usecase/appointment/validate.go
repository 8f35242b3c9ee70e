package appointment

import (
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type validated struct {
	client  *models.Client
	service *models.Service
	date    string
	time    string
	charged models.Money
	notes   string
}

// validate applies the form rules in order: required fields, date, time,
// client, service, value. Nothing is written when it fails.
func validate(s *domain.Snapshot, in dto.AppointmentInput) (*validated, error) {
	if in.ClientID == "" || in.ServiceID == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, httperr.Validation("missing_fields", "preencha todos os campos obrigatórios")
	}

	if err := calendar.ValidateDate(in.Date); err != nil {
		return nil, httperr.Validation("invalid_date", "insira uma data válida no formato dd/mm/aaaa")
	}
	if err := calendar.ValidateTime(in.Time); err != nil {
		return nil, httperr.Validation("invalid_time", "insira uma hora válida no formato HH:MM (00:00 - 23:59)")
	}

	client := s.Client(in.ClientID)
	if client == nil {
		return nil, httperr.Validation("client_not_found", "selecione um cliente válido da lista")
	}
	service := s.Service(in.ServiceID)
	if service == nil {
		return nil, httperr.Validation("service_not_found", "selecione um serviço válido da lista")
	}

	charged := service.Price
	if in.ChargedValue != nil {
		charged = *in.ChargedValue
	}
	if charged.IsNegative() {
		return nil, httperr.Validation("invalid_value", "valor cobrado não pode ser negativo")
	}

	return &validated{
		client:  client,
		service: service,
		date:    strings.TrimSpace(in.Date),
		time:    strings.TrimSpace(in.Time),
		charged: charged,
		notes:   strings.TrimSpace(in.Notes),
	}, nil
}
