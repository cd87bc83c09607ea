package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type ContactHandler struct {
	store store.SessionStore
	svc   services.ContactService
}

func NewContactHandler(st store.SessionStore, svc services.ContactService) *ContactHandler {
	return &ContactHandler{store: st, svc: svc}
}

func (h *ContactHandler) List(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": h.svc.List(sess)})
}

func (h *ContactHandler) Add(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContactHandler.Add", "invalid request body", err))
		return
	}

	contact, err := h.svc.Add(sess, in)
	if err != nil {
		writeError(c, err)
		return
	}
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// ImportCSV accepts the raw export file as the request body. Clients upload
// text/csv directly rather than a multipart form.
func (h *ContactHandler) ImportCSV(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContactHandler.ImportCSV", "failed to read upload", err))
		return
	}

	summary, err := h.svc.ImportCSV(sess, data)
	if err != nil {
		writeError(c, err)
		return
	}
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ContactHandler) ImportDirectory(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	summary, err := h.svc.ImportDirectory(c.Request.Context(), sess)
	if err != nil {
		writeError(c, err)
		return
	}
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ContactHandler) LoadSample(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	n := h.svc.LoadSample(sess)
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": n})
}
