package scoring

import (
	"sync"
	"testing"

	"github.com/mtorelli/linknest/internal/models"
)

// fixedNoise pins the random perturbation so tests see exact scores.
// Intn(11) returning 5 makes the noise term 5-5 = 0.
type fixedNoise struct{ v int }

func (f fixedNoise) Intn(n int) int { return f.v }

func zeroNoiseScorer() *Scorer { return NewScorer(fixedNoise{v: 5}) }

func TestScoreBaseline(t *testing.T) {
	s := zeroNoiseScorer()
	c := models.Contact{FirstName: "Ana", LastName: "Ruiz", Industry: "Retail"}
	p := models.UserProfile{Industry: "Technology"}

	got := s.Score(c, p, models.GoalMentorship, "")
	if got.Score != 50 {
		t.Fatalf("baseline score = %d, want 50", got.Score)
	}
	if got.MatchStrength != "Good Match" {
		t.Fatalf("match strength = %q, want Good Match", got.MatchStrength)
	}
}

func TestScoreIndustryMatch(t *testing.T) {
	s := zeroNoiseScorer()
	p := models.UserProfile{Industry: "Technology"}

	same := s.Score(models.Contact{Industry: "Technology"}, p, models.GoalMentorship, "")
	diff := s.Score(models.Contact{Industry: "Finance"}, p, models.GoalMentorship, "")
	if same.Score-diff.Score != 20 {
		t.Fatalf("industry bonus = %d, want 20", same.Score-diff.Score)
	}
}

func TestScoreSeniorityBonusPerGoal(t *testing.T) {
	s := zeroNoiseScorer()
	p := models.UserProfile{}

	tests := []struct {
		goal      string
		seniority string
		want      int
	}{
		{models.GoalCareerAdvancement, models.SenioritySenior, 65},
		{models.GoalCareerAdvancement, models.SeniorityVP, 65},
		{models.GoalCareerAdvancement, models.SeniorityEntry, 50},
		{models.GoalIndustryKnowledge, models.SeniorityDirector, 65},
		{models.GoalIndustryKnowledge, models.SeniorityVP, 50},
		{models.GoalBusinessDevelopment, models.SeniorityCSuite, 65},
		{models.GoalJobSeeking, models.SeniorityManager, 70}, // job seeking pays 20
		{models.GoalJobSeeking, models.SenioritySenior, 50},
		{models.GoalMentorship, models.SeniorityVP, 50}, // mentorship has no seniority bonus
	}
	for _, tc := range tests {
		got := s.Score(models.Contact{Seniority: tc.seniority}, p, tc.goal, "")
		if got.Score != tc.want {
			t.Errorf("goal=%s seniority=%s: score = %d, want %d", tc.goal, tc.seniority, got.Score, tc.want)
		}
	}
}

func TestScoreMutualConnectionsCapped(t *testing.T) {
	s := zeroNoiseScorer()
	p := models.UserProfile{}

	three := s.Score(models.Contact{MutualConnections: 3}, p, models.GoalMentorship, "")
	if three.Score != 59 {
		t.Fatalf("3 mutual connections: score = %d, want 59", three.Score)
	}
	many := s.Score(models.Contact{MutualConnections: 40}, p, models.GoalMentorship, "")
	if many.Score != 65 {
		t.Fatalf("40 mutual connections: score = %d, want 65 (cap at +15)", many.Score)
	}
}

func TestScoreActivityBonus(t *testing.T) {
	s := zeroNoiseScorer()
	p := models.UserProfile{}

	high := s.Score(models.Contact{ActivityLevel: models.ActivityHigh}, p, models.GoalMentorship, "")
	med := s.Score(models.Contact{ActivityLevel: models.ActivityMedium}, p, models.GoalMentorship, "")
	if high.Score != 60 || med.Score != 50 {
		t.Fatalf("activity scores = %d/%d, want 60/50", high.Score, med.Score)
	}
}

func TestScoreCustomGoalSingleBonus(t *testing.T) {
	s := zeroNoiseScorer()
	p := models.UserProfile{}

	// Both industry and expertise match "fintech"; the bonus applies once.
	c := models.Contact{Industry: "Fintech", Expertise: "Fintech Products, Payments"}
	got := s.Score(c, p, models.GoalMentorship, "break into fintech")
	if got.Score != 65 {
		t.Fatalf("custom goal score = %d, want 65 (single +15)", got.Score)
	}

	// Terms of three characters or fewer never match.
	short := s.Score(models.Contact{Industry: "Fin"}, p, models.GoalMentorship, "fin")
	if short.Score != 50 {
		t.Fatalf("short term score = %d, want 50", short.Score)
	}
}

func TestScoreClamping(t *testing.T) {
	// The worst draw subtracts 5; a bare contact lands at 45, above the floor.
	low := NewScorer(fixedNoise{v: 0})
	got := low.Score(models.Contact{}, models.UserProfile{}, models.GoalMentorship, "")
	if got.Score != 45 {
		t.Fatalf("low draw score = %d, want 45", got.Score)
	}

	// Max out every bonus: 50+20+20+10+15+15+5 = 135, clamped to 95.
	high := NewScorer(fixedNoise{v: 10})
	c := models.Contact{
		Industry:          "Technology",
		Seniority:         models.SeniorityDirector,
		ActivityLevel:     models.ActivityHigh,
		MutualConnections: 12,
		Expertise:         "Machine Learning",
	}
	p := models.UserProfile{Industry: "Technology"}
	got = high.Score(c, p, models.GoalJobSeeking, "machine learning roles")
	if got.Score != 95 {
		t.Fatalf("max score = %d, want 95", got.Score)
	}
	if got.MatchStrength != "Exceptional Match" {
		t.Fatalf("match strength = %q, want Exceptional Match", got.MatchStrength)
	}
}

func TestScoreSeededDirectorScenario(t *testing.T) {
	// 50 base + 20 industry + 15 seniority + 10 activity + 15 capped mutual
	// overflows to 110 pre-noise and clamps to the ceiling.
	s := zeroNoiseScorer()
	c := models.Contact{
		Industry:          "Technology",
		Seniority:         models.SeniorityDirector,
		ActivityLevel:     models.ActivityHigh,
		MutualConnections: 5,
	}
	p := models.UserProfile{Industry: "Technology"}

	got := s.Score(c, p, models.GoalBusinessDevelopment, "")
	if got.Score != 95 {
		t.Fatalf("score = %d, want 95", got.Score)
	}
	if got.MatchStrength != "Exceptional Match" {
		t.Fatalf("match strength = %q, want Exceptional Match", got.MatchStrength)
	}
}

func TestMatchStrengthBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Exceptional Match"},
		{80, "Exceptional Match"},
		{79, "Strong Match"},
		{65, "Strong Match"},
		{64, "Good Match"},
		{50, "Good Match"},
		{49, "Moderate Match"},
		{40, "Moderate Match"},
	}
	for _, tc := range tests {
		if got := MatchStrength(tc.score); got != tc.want {
			t.Errorf("MatchStrength(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestBuildInsightsOrderAndCap(t *testing.T) {
	s := zeroNoiseScorer()
	c := models.Contact{
		Industry:          "Technology",
		Expertise:         "Cloud Architecture, DevOps",
		MutualConnections: 7,
		Seniority:         models.SenioritySenior,
		Company:           "Acme",
	}
	p := models.UserProfile{Industry: "Technology"}

	got := s.Score(c, p, models.GoalIndustryKnowledge, "")
	want := []string{
		"Same industry (Technology)",
		"7 mutual connections",
		"Deep experience in Cloud Architecture",
	}
	if len(got.Insights) != len(want) {
		t.Fatalf("insights = %v, want %v", got.Insights, want)
	}
	for i := range want {
		if got.Insights[i] != want[i] {
			t.Errorf("insight[%d] = %q, want %q", i, got.Insights[i], want[i])
		}
	}
}

func TestBuildInsightsTopsUpToTwo(t *testing.T) {
	s := zeroNoiseScorer()
	c := models.Contact{
		Company:     "Acme",
		CompanySize: "Mid-size",
		Seniority:   models.SeniorityMid,
	}
	got := s.Score(c, models.UserProfile{}, models.GoalMentorship, "")
	if len(got.Insights) < 2 {
		t.Fatalf("insights = %v, want at least two entries", got.Insights)
	}
	if got.Insights[0] != "Works at Acme (Mid-size)" {
		t.Errorf("insight[0] = %q, want company fallback first", got.Insights[0])
	}
}

func TestScoreConcurrentDefaultNoise(t *testing.T) {
	// One Scorer serves every request goroutine, so the default noise source
	// must tolerate parallel draws.
	s := NewScorer(nil)
	c := models.Contact{Industry: "Technology", MutualConnections: 3}
	p := models.UserProfile{Industry: "Technology"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := s.Score(c, p, models.GoalMentorship, "")
				if got.Score < 40 || got.Score > 95 {
					t.Errorf("score %d outside [40,95]", got.Score)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestScoreAllPreservesOrder(t *testing.T) {
	s := zeroNoiseScorer()
	contacts := []models.Contact{
		{FirstName: "A"}, {FirstName: "B"}, {FirstName: "C"},
	}
	got := s.ScoreAll(contacts, models.UserProfile{}, models.GoalMentorship, "")
	if len(got) != 3 {
		t.Fatalf("scored %d contacts, want 3", len(got))
	}
	for i, r := range got {
		if r.FirstName != contacts[i].FirstName {
			t.Errorf("scored[%d] = %q, want %q", i, r.FirstName, contacts[i].FirstName)
		}
	}
}
