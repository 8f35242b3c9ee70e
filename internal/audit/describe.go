package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Entry is an event ready for display.
type Entry struct {
	models.HistoryEvent

	Description string `json:"description"`
	Icon        string `json:"icon"`
	Date        string `json:"dateFormatted"`
	Time        string `json:"timeFormatted"`
}

// Describe renders the pt-BR description of ev. Unknown services read as
// "Serviço".
func Describe(ev models.HistoryEvent, services []models.Service, loc *time.Location) Entry {
	if loc == nil {
		loc = time.UTC
	}
	at := ev.Timestamp.In(loc)

	e := Entry{
		HistoryEvent: ev,
		Icon:         "📝",
		Date:         at.Format("02/01/2006"),
		Time:         at.Format("15:04"),
	}

	service := serviceName(ev.Details, services)

	switch Kind(ev.Kind) {
	case ClientCreated:
		e.Description, e.Icon = "Cliente cadastrado no sistema", "👤"
	case ClientEdited:
		e.Description, e.Icon = "Informações do cliente atualizadas", "✏️"
	case AppointmentCreated:
		e.Description, e.Icon = "Agendamento criado - "+service, "📅"
		date, _ := ev.Details[KeyDate].(string)
		hour, _ := ev.Details[KeyTime].(string)
		if date != "" && hour != "" {
			e.Description += fmt.Sprintf(" para %s às %s", date, hour)
		}
	case AppointmentCompleted:
		e.Description, e.Icon = "Serviço concluído - "+service, "✅"
		if v := detailMoney(ev.Details[KeyValue]); !v.IsZero() {
			e.Description += " - " + FormatBRL(v)
		}
	case AppointmentCancelled:
		e.Description, e.Icon = "Agendamento cancelado - "+service, "❌"
	case AppointmentEdited:
		e.Description = "Agendamento modificado"
	case PaymentReceived:
		e.Description, e.Icon = "Pagamento recebido - "+FormatBRL(detailMoney(ev.Details[KeyValue])), "💰"
	case NoteAdded:
		text, _ := ev.Details[KeyText].(string)
		e.Description = "Observação: " + text
	default:
		e.Description = "Evento registrado"
		if d, ok := ev.Details["description"].(string); ok && d != "" {
			e.Description = d
		}
	}
	return e
}

// FormatBRL writes v as "R$ 1234,50".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}

func serviceName(details map[string]any, services []models.Service) string {
	id := detailID(details[KeyServiceID])
	if id != "" {
		for _, s := range services {
			if s.ID == id {
				return s.Name
			}
		}
	}
	return "Serviço"
}

// Details survive a JSON round trip as float64, json.Number or string.
func detailMoney(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case models.Money:
		return x.Decimal
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := models.ParseMoney(x)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

func detailID(v any) models.ID {
	switch x := v.(type) {
	case models.ID:
		return x
	case string:
		return models.ID(x)
	case float64:
		return models.ID(decimal.NewFromFloat(x).String())
	}
	return ""
}
