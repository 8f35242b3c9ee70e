package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/backup"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

// maxImportSize caps the uploaded document.
const maxImportSize = 10 << 20

type BackupHandler struct {
	svc *backup.Service
}

func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

func collectionParam(c *gin.Context) (store.Collection, bool) {
	coll, err := store.ParseCollection(c.Param("collection"))
	if err != nil {
		httperr.NotFound(c, "collection_not_found", "Coleção desconhecida.")
		return "", false
	}
	return coll, true
}

// GET /api/backup/:collection downloads the export document.
func (h *BackupHandler) Export(c *gin.Context) {
	coll, ok := collectionParam(c)
	if !ok {
		return
	}

	doc, err := h.svc.Export(c.Request.Context(), coll)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Attachment(c, h.svc.FileName(coll), doc)
}

// POST /api/backup/:collection replaces the collection with the uploaded
// document.
func (h *BackupHandler) Import(c *gin.Context) {
	coll, ok := collectionParam(c)
	if !ok {
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Arquivo inválido.")
		return
	}

	n, err := h.svc.Import(c.Request.Context(), coll, data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"collection": coll, "imported": n})
}

// POST /api/archive uploads every collection to the bucket.
func (h *BackupHandler) Archive(c *gin.Context) {
	keys, err := h.svc.Archive(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"keys": keys})
}
