package directory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mtorelli/linknest/internal/ingest"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestArchiveClientFetch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Connections.csv",
		"First Name,Last Name,Email Address,Company,Position,Connected On\n"+
			"Sarah,Chen,sarah@techcorp.example,TechCorp,Engineering Manager,12 Mar 2024\n")
	writeFile(t, dir, "Profile.csv",
		"First Name,Last Name,Company,Position\n"+
			"Jamie,Doe,Initech,Staff Engineer\n")

	imp, err := NewArchiveClient(dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(imp.Connections) != 1 {
		t.Fatalf("connections = %d, want 1", len(imp.Connections))
	}
	if imp.Connections[0][ingest.ColEmail] != "sarah@techcorp.example" {
		t.Fatalf("connection = %v", imp.Connections[0])
	}
	if imp.Profile == nil || imp.Profile[ingest.ColCompany] != "Initech" {
		t.Fatalf("profile = %v", imp.Profile)
	}
}

func TestArchiveClientMissingProfileIsFine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Connections.csv",
		"First Name,Last Name,Email Address\nSarah,Chen,sarah@techcorp.example\n")

	imp, err := NewArchiveClient(dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if imp.Profile != nil {
		t.Fatal("missing Profile.csv should yield a nil profile record")
	}
}

func TestArchiveClientCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Connections.csv",
		"First Name,Last Name,Email Address\nSarah,Chen,sarah@techcorp.example\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewArchiveClient(dir).Fetch(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestArchiveClientMissingConnections(t *testing.T) {
	_, err := NewArchiveClient(t.TempDir()).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
