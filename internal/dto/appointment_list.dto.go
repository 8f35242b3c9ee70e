package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type AppointmentListDTO struct {
	ID          models.ID `json:"id"`
	ClientID    models.ID `json:"clientId"`
	ServiceID   models.ID `json:"serviceId"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`

	Date        string `json:"date"`
	Time        string `json:"time"`
	Weekday     string `json:"weekday,omitempty"`
	RelativeDay string `json:"relativeDay,omitempty"`

	ChargedValue models.Money `json:"chargedValue"`
	ServicePrice models.Money `json:"servicePrice"`
	Difference   models.Money `json:"difference"`

	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AppointmentGroup is one day of the agenda list. Records with an invalid
// date share a last group with Valid=false.
type AppointmentGroup struct {
	Date         string               `json:"date"`
	Valid        bool                 `json:"valid"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
