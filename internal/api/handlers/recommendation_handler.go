package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type RecommendationHandler struct {
	store store.SessionStore
	svc   services.RecommendationService
}

func NewRecommendationHandler(st store.SessionStore, svc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{store: st, svc: svc}
}

// Browse serves the paged recommendation list, optionally filtered by a
// free-text query over name, company, role, expertise and industry.
func (h *RecommendationHandler) Browse(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	query := c.Query("q")
	page := intQuery(c, "page", 0)
	pageSize := intQuery(c, "page_size", 0)

	result := h.svc.Browse(sess, query, page, pageSize)
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecommendationHandler) Top(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	count := intQuery(c, "count", 0)
	recs := h.svc.Top(sess, count)
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (h *RecommendationHandler) Refresh(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	recs := h.svc.Refresh(sess)
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

type SetGoalRequest struct {
	Goal       string `json:"goal" binding:"required"`
	CustomGoal string `json:"custom_goal"`
}

func (h *RecommendationHandler) SetGoal(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RecommendationHandler.SetGoal", "invalid request body", err))
		return
	}

	if err := h.svc.SetGoal(sess, req.Goal, req.CustomGoal); err != nil {
		writeError(c, err)
		return
	}
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goal":            sess.Goal,
		"custom_goal":     sess.CustomGoal,
		"recommendations": sess.Recommendations,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
