package models

// NetworkingGoal values selectable by the user. A free-text custom objective
// can augment any of them.
const (
	GoalCareerAdvancement   = "Career Advancement"
	GoalIndustryKnowledge   = "Industry Knowledge"
	GoalBusinessDevelopment = "Business Development"
	GoalJobSeeking          = "Job Seeking"
	GoalMentorship          = "Mentorship"
)

// Goals lists every selectable networking goal.
var Goals = []string{
	GoalCareerAdvancement,
	GoalIndustryKnowledge,
	GoalBusinessDevelopment,
	GoalJobSeeking,
	GoalMentorship,
}

// ValidGoal reports whether g is one of the selectable goals.
func ValidGoal(g string) bool {
	for _, v := range Goals {
		if v == g {
			return true
		}
	}
	return false
}

// UserProfile describes the sender. One instance per session, edited freely.
type UserProfile struct {
	Name        string `json:"name"`
	CurrentRole string `json:"current_role"`
	Industry    string `json:"industry"`
	Expertise   string `json:"expertise"` // comma separated
	Interests   string `json:"interests"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
}
