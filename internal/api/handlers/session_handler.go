package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mtorelli/linknest/internal/api/middleware"
	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/services"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type SessionHandler struct {
	store  store.SessionStore
	recs   services.RecommendationService
	secret []byte
	ttl    time.Duration
}

func NewSessionHandler(st store.SessionStore, recs services.RecommendationService, secret []byte, ttl time.Duration) *SessionHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionHandler{store: st, recs: recs, secret: secret, ttl: ttl}
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	Goal      string `json:"goal"`
	Contacts  int    `json:"contacts"`
	CreatedAt string `json:"created_at"`
}

// Start mints a session seeded with the default profile and the sample
// contact set, and returns the bearer token every other route requires.
func (h *SessionHandler) Start(c *gin.Context) {
	now := time.Now().UTC()
	sess := &models.SessionState{
		SessionID: uuid.NewString(),
		Profile:   models.DefaultProfile(),
		Contacts:  models.SampleContacts(),
		Goal:      models.GoalIndustryKnowledge,
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.recs.Refresh(sess)

	if !saveSession(c, h.store, sess) {
		return
	}

	token, err := middleware.SignSessionToken(h.secret, sess.SessionID, h.ttl)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "SessionHandler.Start", "failed to sign session token", err))
		return
	}

	c.JSON(http.StatusOK, StartSessionResponse{
		SessionID: sess.SessionID,
		Token:     token,
		Goal:      sess.Goal,
		Contacts:  len(sess.Contacts),
		CreatedAt: sess.CreatedAt.Format(time.RFC3339),
	})
}

// Reset wipes the contact set back to the sample seed, keeping the profile.
func (h *SessionHandler) Reset(c *gin.Context) {
	sess, ok := loadSession(c, h.store)
	if !ok {
		return
	}

	sess.Contacts = models.SampleContacts()
	sess.SelectedContactID = ""
	h.recs.Refresh(sess)

	if !saveSession(c, h.store, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": len(sess.Contacts)})
}
