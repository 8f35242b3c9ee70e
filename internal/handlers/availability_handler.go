package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	day   *ucAppointment.GetAvailability
	month *ucAppointment.GetMonthCalendar
}

func NewAvailabilityHandler(
	day *ucAppointment.GetAvailability,
	month *ucAppointment.GetMonthCalendar,
) *AvailabilityHandler {
	return &AvailabilityHandler{day: day, month: month}
}

// GET /api/availability?date=DD/MM/YYYY
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	out, err := h.day.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// GET /api/availability/summary?date=DD/MM/YYYY, plain text for sharing.
func (h *AvailabilityHandler) Summary(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	text, err := h.day.Summary(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Text(c, text)
}

// GET /api/availability/month?year=2024&month=10 (defaults to this month)
func (h *AvailabilityHandler) Month(c *gin.Context) {
	year, okYear := queryInt(c, "year")
	month, okMonth := queryInt(c, "month")
	if !okYear || !okMonth {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	out, err := h.month.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
