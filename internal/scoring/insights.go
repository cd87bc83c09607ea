package scoring

import (
	"fmt"
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

// buildInsights assembles at most three human-readable reasons a contact
// scored the way it did: industry match first, then mutual connections, then
// a goal-specific line, topped up with generic facts until at least two are
// present. The fallback facts are taken in a fixed order so the noise term
// stays the only randomness in a scoring pass.
func buildInsights(c models.Contact, p models.UserProfile, goal string) []string {
	var insights []string

	if c.Industry != "" && c.Industry == p.Industry {
		insights = append(insights, fmt.Sprintf("Same industry (%s)", c.Industry))
	}
	if c.MutualConnections > 0 {
		insights = append(insights, fmt.Sprintf("%d mutual connections", c.MutualConnections))
	}
	if gi := goalInsight(c, goal); gi != "" {
		insights = append(insights, gi)
	}

	if len(insights) < 2 {
		for _, f := range fallbackInsights(c) {
			if len(insights) >= 2 {
				break
			}
			if !contains(insights, f) {
				insights = append(insights, f)
			}
		}
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

func goalInsight(c models.Contact, goal string) string {
	switch goal {
	case models.GoalCareerAdvancement:
		if seniorityBonus(goal, c.Seniority) > 0 {
			return fmt.Sprintf("%s contact who can open doors for your next step", c.Seniority)
		}
	case models.GoalIndustryKnowledge:
		if c.Expertise != "" {
			return fmt.Sprintf("Deep experience in %s", firstTerm(c.Expertise))
		}
	case models.GoalBusinessDevelopment:
		if seniorityBonus(goal, c.Seniority) > 0 {
			if c.Company != "" {
				return fmt.Sprintf("Decision maker at %s", c.Company)
			}
			return "Decision-level contact"
		}
	case models.GoalJobSeeking:
		if seniorityBonus(goal, c.Seniority) > 0 {
			if c.Role != "" {
				return fmt.Sprintf("Likely hiring influence as %s", c.Role)
			}
			return "Likely hiring influence"
		}
	}
	return ""
}

// fallbackInsights lists the generic facts in pick order, skipping blanks.
func fallbackInsights(c models.Contact) []string {
	var out []string
	if c.Expertise != "" {
		out = append(out, fmt.Sprintf("Experienced in %s", firstTerm(c.Expertise)))
	}
	if c.Company != "" {
		if c.CompanySize != "" {
			out = append(out, fmt.Sprintf("Works at %s (%s)", c.Company, c.CompanySize))
		} else {
			out = append(out, fmt.Sprintf("Works at %s", c.Company))
		}
	}
	if c.Seniority != "" {
		out = append(out, fmt.Sprintf("%s level professional", c.Seniority))
	}
	if c.KeyAchievements != "" {
		out = append(out, fmt.Sprintf("Achievement: %s", c.KeyAchievements))
	} else if c.ConnectedOn != "" {
		out = append(out, fmt.Sprintf("Connected since %s", c.ConnectedOn))
	}
	return out
}

// firstTerm returns the first entry of a comma-separated list.
func firstTerm(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
