package models

// MessageAnalysis is the structured feedback returned for a drafted message.
// When the generative collaborator is missing or misbehaves the service
// substitutes a fixed default instead of surfacing the failure.
type MessageAnalysis struct {
	OverallScore int      `json:"overallScore"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Suggestions  []string `json:"suggestions"`
	Assessment   string   `json:"assessment"`
}
