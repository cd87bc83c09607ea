package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type ProfileHandler struct {
	store store.SessionStore
	svc   services.ProfileService
}

func NewProfileHandler(st store.SessionStore, svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{store: st, svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Get(sess))
}

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	CurrentRole *string `json:"current_role,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Expertise   *string `json:"expertise,omitempty"`
	Interests   *string `json:"interests,omitempty"`
	Company     *string `json:"company,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	// Apply partial updates
	p := h.svc.Get(sess)
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.CurrentRole != nil {
		p.CurrentRole = *req.CurrentRole
	}
	if req.Industry != nil {
		p.Industry = *req.Industry
	}
	if req.Expertise != nil {
		p.Expertise = *req.Expertise
	}
	if req.Interests != nil {
		p.Interests = *req.Interests
	}
	if req.Company != nil {
		p.Company = *req.Company
	}
	if req.Location != nil {
		p.Location = *req.Location
	}

	updated := h.svc.Update(sess, p)
	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, updated)
}
