package models

// Service offered by the salon, priced per appointment.
type Service struct {
	ID ID `json:"id"`

	Name  string `json:"name"`
	Price Money  `json:"price"`
	Cost  Money  `json:"cost"`
}
