package models

import "time"

// Message types for the outreach drafter.
const (
	MessageColdOutreach           = "coldOutreach"
	MessageFollowUp               = "followUp"
	MessageInformationalInterview = "informationalInterview"
)

// SessionState is the single aggregate holding everything a session owns.
// It is loaded by the handler, mutated in place by the services, and written
// back to the store at the end of the request. Nothing outlives the session.
type SessionState struct {
	SessionID string `json:"session_id"` // uuid v4

	Profile  UserProfile `json:"profile"`
	Contacts []Contact   `json:"contacts"`

	Goal       string `json:"goal"`
	CustomGoal string `json:"custom_goal,omitempty"`

	// Full scored set, sorted descending. Filtering and pagination run over
	// this slice; the top-N view is just its prefix.
	Recommendations []ScoredRecommendation `json:"recommendations"`

	SelectedContactID string `json:"selected_contact_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindContact returns the contact with the given ID, if present.
func (s *SessionState) FindContact(id string) (*Contact, bool) {
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			return &s.Contacts[i], true
		}
	}
	return nil, false
}
