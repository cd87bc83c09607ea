package models

import "time"

// Seniority levels, ordered roughly by how the enrichment rules rank them.
const (
	SeniorityEntry    = "Entry Level"
	SeniorityMid      = "Mid Level"
	SenioritySenior   = "Senior"
	SeniorityManager  = "Manager"
	SeniorityDirector = "Director"
	SeniorityVP       = "VP"
	SeniorityCSuite   = "C-Suite"
	SeniorityIntern   = "Intern"
)

// Activity levels reported for a contact.
const (
	ActivityLow    = "Low"
	ActivityMedium = "Medium"
	ActivityHigh   = "High"
)

// RecentActivity is the last public action seen for a contact, if any.
type RecentActivity struct {
	Type  string    `json:"type"`  // post|article
	Topic string    `json:"topic"`
	Date  time.Time `json:"date"`
}

// Contact is a person in the user's network. Optional fields default to the
// empty string so enrichment and scoring never have to branch on presence.
type Contact struct {
	ID                string          `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Role              string          `json:"role"`
	Company           string          `json:"company"`
	Industry          string          `json:"industry"`
	Expertise         string          `json:"expertise"` // comma separated
	Seniority         string          `json:"seniority"`
	CompanySize       string          `json:"company_size"`
	ActivityLevel     string          `json:"activity_level"` // Low|Medium|High
	RecentProjects    string          `json:"recent_projects"`
	KeyAchievements   string          `json:"key_achievements"`
	MutualConnections int             `json:"mutual_connections"`
	RecentActivity    *RecentActivity `json:"recent_activity,omitempty"`
	Email             string          `json:"email,omitempty"`
	ProfileURL        string          `json:"profile_url,omitempty"`
	ConnectedOn       string          `json:"connected_on,omitempty"`
}

// FullName joins first and last name, tolerating either being blank.
func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// ScoredRecommendation is a Contact plus the output of one scoring pass.
// It is regenerated wholesale whenever the goal, profile or contact set changes.
type ScoredRecommendation struct {
	Contact
	Score         int      `json:"score"` // clamped to [40,95]
	Insights      []string `json:"insights"`
	MatchStrength string   `json:"match_strength"`
}
