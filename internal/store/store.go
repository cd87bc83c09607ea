package store

import (
	"context"

	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/utils"
)

// SessionStore holds session aggregates. Sessions are transient: the memory
// store loses them on restart and the Redis store expires them by TTL.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionState, error)
	Put(ctx context.Context, s *models.SessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = utils.ErrNotFound
