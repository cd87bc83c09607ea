package services

import (
	"testing"

	"github.com/mtorelli/linknest/internal/models"
	"github.com/mtorelli/linknest/internal/utils"
)

func recTestSession() *models.SessionState {
	return &models.SessionState{
		SessionID: "s1",
		Profile:   models.UserProfile{Industry: "Technology"},
		Goal:      models.GoalIndustryKnowledge,
		Contacts: []models.Contact{
			{ID: "c1", FirstName: "Low", LastName: "Match", Industry: "Retail"},
			{ID: "c2", FirstName: "High", LastName: "Match", Industry: "Technology",
				Seniority: models.SenioritySenior, ActivityLevel: models.ActivityHigh, MutualConnections: 10},
			{ID: "c3", FirstName: "Mid", LastName: "Match", Industry: "Technology"},
		},
	}
}

func TestRefreshRanksDescending(t *testing.T) {
	svc := newTestRecs()
	sess := recTestSession()

	recs := svc.Refresh(sess)
	if len(recs) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("not sorted descending: %d then %d", recs[i-1].Score, recs[i].Score)
		}
	}
	if recs[0].ID != "c2" {
		t.Fatalf("top contact = %s, want c2", recs[0].ID)
	}
}

func TestSetGoalValidatesAndRescores(t *testing.T) {
	svc := newTestRecs()
	sess := recTestSession()
	svc.Refresh(sess)

	if err := svc.SetGoal(sess, "World Domination", ""); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}

	if err := svc.SetGoal(sess, models.GoalJobSeeking, "  fintech roles  "); err != nil {
		t.Fatalf("SetGoal: %v", err)
	}
	if sess.Goal != models.GoalJobSeeking || sess.CustomGoal != "fintech roles" {
		t.Fatalf("goal state = %q/%q", sess.Goal, sess.CustomGoal)
	}
	if len(sess.Recommendations) != 3 {
		t.Fatal("goal change must rescore")
	}
}

func TestTopDefaultsAndClamps(t *testing.T) {
	svc := newTestRecs()
	sess := recTestSession()

	// Top on a fresh session triggers a lazy refresh.
	top := svc.Top(sess, 0)
	if len(top) != 3 {
		t.Fatalf("top(0) = %d entries, want all 3 (fewer than default page)", len(top))
	}

	if got := svc.Top(sess, 2); len(got) != 2 {
		t.Fatalf("top(2) = %d entries", len(got))
	}
	if got := svc.Top(sess, 50); len(got) != 3 {
		t.Fatalf("top(50) = %d entries, want clamp to 3", len(got))
	}
}

func TestBrowseFilterAndPages(t *testing.T) {
	svc := newTestRecs()
	sess := recTestSession()

	page := svc.Browse(sess, "", 0, 2)
	if page.Total != 3 || page.TotalPages != 2 || len(page.Items) != 2 {
		t.Fatalf("page = %+v", page)
	}

	// Unfiltered out-of-range page clamps to the last page.
	last := svc.Browse(sess, "", 9, 2)
	if last.Page != 1 || len(last.Items) != 1 {
		t.Fatalf("clamped page = %+v", last)
	}

	// A filter that leaves the requested page out of range resets to page 0.
	filtered := svc.Browse(sess, "technology", 9, 2)
	if filtered.Page != 0 || filtered.Total != 2 {
		t.Fatalf("filtered page = %+v", filtered)
	}

	empty := svc.Browse(sess, "nobody", 0, 2)
	if empty.Total != 0 || len(empty.Items) != 0 {
		t.Fatalf("miss filter page = %+v", empty)
	}
}
