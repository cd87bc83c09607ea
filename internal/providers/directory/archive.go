package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtorelli/linknest/internal/ingest"
)

const (
	connectionsFile = "Connections.csv"
	profileFile     = "Profile.csv"
)

// ArchiveClient reads a professional-network data export directory (the
// "download your data" archive) from local disk. Connections.csv is required;
// Profile.csv is optional.
type ArchiveClient struct {
	dir string
}

func NewArchiveClient(dir string) *ArchiveClient {
	return &ArchiveClient{dir: dir}
}

func (a *ArchiveClient) Fetch(ctx context.Context) (*Import, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	data, err := os.ReadFile(filepath.Join(a.dir, connectionsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	res, err := ingest.New(ingest.ConnectionColumns...).Parse(data)
	if err != nil {
		return nil, err
	}
	out := &Import{Connections: res.Records}

	// Profile.csv is a single-row export describing the member; best effort.
	if pdata, err := os.ReadFile(filepath.Join(a.dir, profileFile)); err == nil {
		if pres, err := ingest.New().Parse(pdata); err == nil && len(pres.Records) > 0 {
			out.Profile = pres.Records[0]
		}
	}

	return out, nil
}
