package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID ID `json:"id"`

	ClientID  ID `json:"clientId"`
	ServiceID ID `json:"serviceId"`

	// snapshot taken at creation
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`

	Date string `json:"date"`
	Time string `json:"time"`

	ChargedValue *Money `json:"chargedValue,omitempty"`

	Notes  string `json:"notes"`
	Status string `json:"status,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Charged returns the charged value and whether one was recorded.
func (a Appointment) Charged() (decimal.Decimal, bool) {
	if a.ChargedValue == nil {
		return decimal.Zero, false
	}
	return a.ChargedValue.Decimal, true
}
