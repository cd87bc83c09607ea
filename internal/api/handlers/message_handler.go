package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type MessageHandler struct {
	store store.SessionStore
	svc   services.MessageService
}

func NewMessageHandler(st store.SessionStore, svc services.MessageService) *MessageHandler {
	return &MessageHandler{store: st, svc: svc}
}

type GenerateMessageRequest struct {
	ContactID   string `json:"contact_id" binding:"required"`
	MessageType string `json:"message_type"`
	Topic       string `json:"topic"`
}

func (h *MessageHandler) Generate(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var req GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MessageHandler.Generate", "invalid request body", err))
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), sess, req.ContactID, req.MessageType, req.Topic)
	if err != nil {
		writeError(c, err)
		return
	}

	sess.SelectedContactID = req.ContactID
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, result)
}

type AnalyzeMessageRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *MessageHandler) Analyze(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var req AnalyzeMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MessageHandler.Analyze", "invalid request body", err))
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), sess, req.ContactID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type ImproveMessageRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *MessageHandler) Improve(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var req ImproveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "MessageHandler.Improve", "invalid request body", err))
		return
	}

	improved, err := h.svc.Improve(c.Request.Context(), sess, req.ContactID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": improved})
}

func (h *MessageHandler) Starters(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	starters, err := h.svc.Starters(sess, c.Param("contact_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"starters": starters})
}
