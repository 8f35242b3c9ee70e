package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/salon-scheduler/internal/usecase/dashboard"
)

type DashboardHandler struct {
	get *ucDashboard.GetDashboard
}

func NewDashboardHandler(get *ucDashboard.GetDashboard) *DashboardHandler {
	return &DashboardHandler{get: get}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
