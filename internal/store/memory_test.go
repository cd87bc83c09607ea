package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mtorelli/linknest/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing session err = %v, want ErrNotFound", err)
	}

	sess := &models.SessionState{SessionID: "s1", Goal: models.GoalMentorship}
	if err := m.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := m.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Goal != models.GoalMentorship {
		t.Fatalf("goal = %q", got.Goal)
	}

	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted session err = %v, want ErrNotFound", err)
	}
}
