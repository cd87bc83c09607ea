package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/store"
	"github.com/mtorelli/linknest/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireSessionID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("session_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return "", false
}

// loadSession fetches the caller's session aggregate. Handlers mutate it in
// place and must call saveSession before responding.
func loadSession(c *gin.Context, st store.SessionStore) (*models.SessionState, bool) {
	id, ok := requireSessionID(c)
	if !ok {
		return nil, false
	}

	sess, err := st.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, utils.E(utils.CodeUnauthorized, "Session", "session not found or expired", err))
		return nil, false
	}
	return sess, true
}

func saveSession(c *gin.Context, st store.SessionStore, sess *models.SessionState) bool {
	if err := st.Put(c.Request.Context(), sess); err != nil {
		writeError(c, utils.E(utils.CodeInternal, "Session", "failed to persist session", err))
		return false
	}
	return true
}
