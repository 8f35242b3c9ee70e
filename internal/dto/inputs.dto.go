package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// ServiceInput accepts price and cost as numbers or pt-BR strings.
type ServiceInput struct {
	Name  string        `json:"name"`
	Price models.Money  `json:"price"`
	Cost  *models.Money `json:"cost"`
}

type AppointmentInput struct {
	ClientID     models.ID     `json:"clientId"`
	ServiceID    models.ID     `json:"serviceId"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	ChargedValue *models.Money `json:"chargedValue"`
	Notes        string        `json:"notes"`
}
