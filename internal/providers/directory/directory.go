// Package directory integrates with an external professional-network export.
// The client returns raw records in the same shape the ingestor produces, so
// enrichment and scoring treat both sources identically. A failing or absent
// client never disturbs in-memory data; callers simply keep what they have.
package directory

import (
	"context"
	"errors"

	"github.com/mtorelli/linknest/internal/ingest"
)

// ErrUnavailable means the directory source could not be reached or read.
var ErrUnavailable = errors.New("directory source unavailable")

// Import is one pull from the directory: the member's own profile record
// (may be nil) and their connection list.
type Import struct {
	Profile     ingest.RawRecord
	Connections []ingest.RawRecord
}

// Client fetches a profile and connection list from a directory source.
type Client interface {
	Fetch(ctx context.Context) (*Import, error)
}
