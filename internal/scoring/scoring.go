// Package scoring ranks contacts against a user profile and networking goal.
// Scores are 40–95 after clamping; every bonus except a small noise term is
// deterministic, and the noise source is injectable so tests can pin it to 0.
package scoring

import (
	"math/rand"
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

const (
	baseScore       = 50
	industryBonus   = 20
	activityBonus   = 10
	mutualBonusCap  = 15
	mutualBonusStep = 3
	customGoalBonus = 15
	minScore        = 40
	maxScore        = 95
)

// Noise supplies the bounded random perturbation added to each score.
// Implementations must be safe for concurrent use: one Scorer serves every
// request goroutine.
type Noise interface {
	Intn(n int) int
}

// stdNoise draws from the lock-protected top-level math/rand source.
type stdNoise struct{}

func (stdNoise) Intn(n int) int { return rand.Intn(n) }

// Scorer computes relevance scores and insight strings for contacts.
type Scorer struct {
	noise Noise
}

// NewScorer returns a Scorer using the given noise source, or the shared
// math/rand source when nil.
func NewScorer(n Noise) *Scorer {
	if n == nil {
		n = stdNoise{}
	}
	return &Scorer{noise: n}
}

// seniorityBonuses maps each goal to the seniority levels that earn a bonus
// and how much they earn. Mentorship has no seniority bonus.
var seniorityBonuses = map[string]struct {
	levels []string
	bonus  int
}{
	models.GoalCareerAdvancement:   {[]string{models.SenioritySenior, models.SeniorityManager, models.SeniorityDirector, models.SeniorityVP}, 15},
	models.GoalIndustryKnowledge:   {[]string{models.SenioritySenior, models.SeniorityManager, models.SeniorityDirector}, 15},
	models.GoalBusinessDevelopment: {[]string{models.SeniorityManager, models.SeniorityDirector, models.SeniorityVP, models.SeniorityCSuite}, 15},
	models.GoalJobSeeking:          {[]string{models.SeniorityManager, models.SeniorityDirector, models.SeniorityVP}, 20},
}

func seniorityBonus(goal, seniority string) int {
	sb, ok := seniorityBonuses[goal]
	if !ok {
		return 0
	}
	for _, lvl := range sb.levels {
		if lvl == seniority {
			return sb.bonus
		}
	}
	return 0
}

// Score evaluates one contact. customGoal is the optional free-text objective;
// its keyword bonus applies at most once per contact.
func (s *Scorer) Score(c models.Contact, p models.UserProfile, goal, customGoal string) models.ScoredRecommendation {
	score := baseScore
	if c.Industry == p.Industry {
		score += industryBonus
	}
	score += seniorityBonus(goal, c.Seniority)
	if c.ActivityLevel == models.ActivityHigh {
		score += activityBonus
	}
	mutual := c.MutualConnections * mutualBonusStep
	if mutual > mutualBonusCap {
		mutual = mutualBonusCap
	}
	score += mutual
	if customGoal != "" && matchesCustomGoal(c, customGoal) {
		score += customGoalBonus
	}

	score += s.noise.Intn(11) - 5
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	return models.ScoredRecommendation{
		Contact:       c,
		Score:         score,
		Insights:      buildInsights(c, p, goal),
		MatchStrength: MatchStrength(score),
	}
}

// ScoreAll scores every contact, preserving input order.
func (s *Scorer) ScoreAll(contacts []models.Contact, p models.UserProfile, goal, customGoal string) []models.ScoredRecommendation {
	out := make([]models.ScoredRecommendation, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, s.Score(c, p, goal, customGoal))
	}
	return out
}

// matchesCustomGoal checks whitespace-split terms longer than three characters
// against industry, expertise, role and company, in that order, and stops at
// the first hit so the bonus is never counted twice.
func matchesCustomGoal(c models.Contact, customGoal string) bool {
	fields := []string{c.Industry, c.Expertise, c.Role, c.Company}
	for _, term := range strings.Fields(customGoal) {
		if len(term) <= 3 {
			continue
		}
		term = strings.ToLower(term)
		for _, f := range fields {
			if f != "" && strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
	}
	return false
}

// MatchStrength maps a clamped score to its categorical label. Boundaries are
// inclusive on the lower bound.
func MatchStrength(score int) string {
	switch {
	case score >= 80:
		return "Exceptional Match"
	case score >= 65:
		return "Strong Match"
	case score >= 50:
		return "Good Match"
	default:
		return "Moderate Match"
	}
}
