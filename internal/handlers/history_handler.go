package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucHistory "github.com/BruksfildServices01/salon-scheduler/internal/usecase/history"
)

type HistoryHandler struct {
	all   *ucHistory.ListHistory
	list  *ucHistory.ListClientHistory
	stats *ucHistory.GetClientStats
	clear *ucHistory.ClearHistory
}

func NewHistoryHandler(
	all *ucHistory.ListHistory,
	list *ucHistory.ListClientHistory,
	stats *ucHistory.GetClientStats,
	clr *ucHistory.ClearHistory,
) *HistoryHandler {
	return &HistoryHandler{all: all, list: list, stats: stats, clear: clr}
}

// GET /api/clients/:id/history
func (h *HistoryHandler) ForClient(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context(), idParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, entries)
}

// GET /api/clients/:id/stats
func (h *HistoryHandler) Stats(c *gin.Context) {
	st, err := h.stats.Execute(c.Request.Context(), idParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, st)
}

// DELETE /api/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	n, err := h.clear.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"removed": n})
}

// GET /api/history?kind=&client=&from=DD/MM/YYYY&to=DD/MM/YYYY&page=1&limit=50
func (h *HistoryHandler) List(c *gin.Context) {
	page, okPage := queryInt(c, "page")
	limit, okLimit := queryInt(c, "limit")
	if !okPage || !okLimit {
		httperr.BadRequest(c, "invalid_pagination", "Paginação inválida.")
		return
	}

	from, err := optionalDate(c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}
	to, err := optionalDate(c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	out, err := h.all.Execute(c.Request.Context(), ucHistory.ListInput{
		Kind:     strings.TrimSpace(c.Query("kind")),
		ClientID: models.ID(strings.TrimSpace(c.Query("client"))),
		From:     from,
		To:       to,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func optionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return calendar.ParseDate(s)
}
