package analytics

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MarginTier string

const (
	MarginHigh   MarginTier = "alta"
	MarginMedium MarginTier = "media"
	MarginLow    MarginTier = "baixa"
)

type ServiceMargin struct {
	ServiceID     models.ID    `json:"serviceId"`
	Name          string       `json:"name"`
	Price         models.Money `json:"price"`
	Cost          models.Money `json:"cost"`
	Profit        models.Money `json:"profit"`
	MarginPercent float64      `json:"marginPercent"`
	Tier          MarginTier   `json:"tier"`
}

// MarginPercent is (price-cost)/price*100, never negative; 0 without a price.
func MarginPercent(s models.Service) float64 {
	m := percentOf(s.Price.Sub(s.Cost.Decimal), s.Price.Decimal)
	if m < 0 {
		return 0
	}
	return m
}

func TierFor(margin float64) MarginTier {
	switch {
	case margin >= 50:
		return MarginHigh
	case margin >= 30:
		return MarginMedium
	default:
		return MarginLow
	}
}

func Margins(services []models.Service) []ServiceMargin {
	out := make([]ServiceMargin, 0, len(services))
	for _, s := range services {
		m := MarginPercent(s)
		out = append(out, ServiceMargin{
			ServiceID:     s.ID,
			Name:          s.Name,
			Price:         s.Price,
			Cost:          s.Cost,
			Profit:        models.MoneyOf(s.Price.Sub(s.Cost.Decimal)),
			MarginPercent: m,
			Tier:          TierFor(m),
		})
	}
	return out
}
