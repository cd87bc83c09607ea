package messaging

import (
	"encoding/json"
	"errors"
	"regexp"

	"github.com/mtorelli/linknest/internal/models"
)

// The four fixed analysis defaults. Their scores are deliberately distinct so
// observability can tell "no key configured" (70) from "responded but no JSON"
// (65), "responded with bad JSON" (60) and "call failed" (50).

// NoProviderAnalysis is returned when no generative provider is configured.
func NoProviderAnalysis() *models.MessageAnalysis {
	return &models.MessageAnalysis{
		OverallScore: 70,
		Strengths:    []string{"Basic message structure"},
		Weaknesses:   []string{"AI analysis not available - API credentials not set"},
		Suggestions:  []string{"Configure AI credentials for detailed message analysis"},
		Assessment:   "Basic message but could be improved with AI analysis",
	}
}

// NoJSONAnalysis is returned when the provider replied but its response
// contained no JSON object at all.
func NoJSONAnalysis() *models.MessageAnalysis {
	return &models.MessageAnalysis{
		OverallScore: 65,
		Strengths:    []string{"Message structure is appropriate"},
		Weaknesses:   []string{"Could not extract detailed analysis"},
		Suggestions:  []string{"Try again with more specific message content"},
		Assessment:   "Basic networking message that needs refinement",
	}
}

// InvalidJSONAnalysis is returned when the provider's JSON failed to decode.
func InvalidJSONAnalysis() *models.MessageAnalysis {
	return &models.MessageAnalysis{
		OverallScore: 60,
		Strengths:    []string{"Message has been drafted"},
		Weaknesses:   []string{"Could not parse analysis response"},
		Suggestions:  []string{"Try again with simpler message structure"},
		Assessment:   "Message analysis encountered an error",
	}
}

// ServiceErrorAnalysis is returned when the provider call itself failed.
func ServiceErrorAnalysis() *models.MessageAnalysis {
	return &models.MessageAnalysis{
		OverallScore: 50,
		Strengths:    []string{"Basic message format"},
		Weaknesses:   []string{"Analysis service unavailable"},
		Suggestions:  []string{"Try again or check credential configuration"},
		Assessment:   "Message analysis failed due to an error",
	}
}

var jsonObjectRe = regexp.MustCompile(`(?s)(\{.*\})`)

// ErrNoJSON marks a provider response with no JSON object in it.
var ErrNoJSON = errors.New("no JSON object in response")

// ExtractAnalysis pulls the first JSON object out of free-form provider text
// and decodes it. Models often wrap the object in commentary; the regexp
// tolerates that.
func ExtractAnalysis(text string) (*models.MessageAnalysis, error) {
	match := jsonObjectRe.FindStringSubmatch(text)
	if match == nil {
		return nil, ErrNoJSON
	}
	var out models.MessageAnalysis
	if err := json.Unmarshal([]byte(match[1]), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
