package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount in BRL. It reads numbers, numeric strings and
// pt-BR formatted strings ("R$ 1.234,56") and always writes a JSON number.
type Money struct {
	decimal.Decimal
}

func NewMoney(v float64) Money {
	return Money{Decimal: decimal.NewFromFloat(v)}
}

func MoneyOf(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyPtr is a convenience for optional amounts.
func MoneyPtr(v float64) *Money {
	m := NewMoney(v)
	return &m
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		d, err := ParseMoney(raw)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.Decimal = d
	return nil
}

// ParseMoney reads "50", "50.5", "50,50", "1.234,56" and "R$ 1.234,56".
// A comma marks the decimal part, in which case dots are thousands separators.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("money: invalid amount %q", s)
	}
	return d, nil
}
