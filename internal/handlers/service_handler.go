package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucService "github.com/BruksfildServices01/salon-scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	create *ucService.CreateService
	update *ucService.UpdateService
	delete *ucService.DeleteService
	list   *ucService.ListServices
}

func NewServiceHandler(
	create *ucService.CreateService,
	update *ucService.UpdateService,
	del *ucService.DeleteService,
	list *ucService.ListServices,
) *ServiceHandler {
	return &ServiceHandler{create: create, update: update, delete: del, list: list}
}

func (h *ServiceHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), ucService.ListInput{
		Query:   c.Query("query"),
		OrderBy: c.Query("order"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.update.Execute(c.Request.Context(), idParam(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), idParam(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
