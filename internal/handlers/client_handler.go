package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucClient "github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	create  *ucClient.CreateClient
	update  *ucClient.UpdateClient
	delete  *ucClient.DeleteClient
	addNote *ucClient.AddNote
	list    *ucClient.ListClients
	get     *ucClient.GetClient
}

func NewClientHandler(
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	del *ucClient.DeleteClient,
	addNote *ucClient.AddNote,
	list *ucClient.ListClients,
	get *ucClient.GetClient,
) *ClientHandler {
	return &ClientHandler{
		create:  create,
		update:  update,
		delete:  del,
		addNote: addNote,
		list:    list,
		get:     get,
	}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context(), ucClient.ListInput{
		Query:   c.Query("query"),
		OrderBy: c.Query("order"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ClientHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), idParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// WRITE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientInput
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

func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.ClientInput
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

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), idParam(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *ClientHandler) AddNote(c *gin.Context) {
	var req dto.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.addNote.Execute(c.Request.Context(), idParam(c), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
