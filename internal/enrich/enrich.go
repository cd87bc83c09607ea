// Package enrich derives industry, expertise and seniority tags from free-text
// job titles and company names when an imported contact lacks them. The rule
// tables are ordered on purpose: overlapping keywords ("digital", "Senior
// Manager") resolve to whichever rule is checked first, and that order is part
// of the observable behavior.
package enrich

import (
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

type keywordRule struct {
	value    string
	keywords []string
}

var industryRules = []keywordRule{
	{"Technology", []string{"tech", "software", "digital", "app", "data", "it ", "computer", "cyber", "web", "cloud"}},
	{"Finance", []string{"bank", "finance", "capital", "financial", "invest", "asset", "wealth", "insurance"}},
	{"Healthcare", []string{"health", "medical", "hospital", "pharma", "biotech", "care", "clinic"}},
	{"Education", []string{"university", "college", "school", "education", "academic", "learning", "teaching"}},
	{"Marketing", []string{"marketing", "advertis", "media", "digital", "brand", "content", "creative"}},
	{"Retail", []string{"retail", "shop", "store", "ecommerce", "commerce", "consumer"}},
}

// expertiseRules pair a detection keyword set with a canned two-term
// expertise string for the category.
var expertiseRules = []keywordRule{
	{"Software Development, System Architecture", []string{"engineer", "developer", "programmer", "software", "devops"}},
	{"Data Analysis, Machine Learning", []string{"data", "analyst", "analytics", "scientist"}},
	{"User Experience, Visual Design", []string{"design", "ux", "creative"}},
	{"Product Strategy, Roadmapping", []string{"product"}},
	{"Growth Marketing, Brand Strategy", []string{"market", "growth", "brand", "content"}},
	{"Sales Strategy, Client Relations", []string{"sales", "account", "business development"}},
	{"Team Leadership, Strategic Planning", []string{"manager", "director", "head", "chief", "lead"}},
}

var seniorityRules = []keywordRule{
	{models.SeniorityCSuite, []string{"ceo", "cto", "cfo", "coo", "chief", "founder", "president"}},
	{models.SeniorityVP, []string{"vp", "vice president"}},
	{models.SeniorityDirector, []string{"director"}},
	{models.SeniorityManager, []string{"manager", "head of"}},
	{models.SenioritySenior, []string{"senior", "sr.", "principal", "staff", "lead"}},
	{models.SeniorityEntry, []string{"junior", "jr.", "entry", "graduate", "trainee", "associate"}},
	{models.SeniorityIntern, []string{"intern"}},
}

func firstMatch(rules []keywordRule, text, fallback string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.value
			}
		}
	}
	return fallback
}

// InferIndustry guesses an industry from company and role text; "Other" when
// nothing matches.
func InferIndustry(company, role string) string {
	text := strings.ToLower(company + " " + role)
	return firstMatch(industryRules, text, "Other")
}

// InferExpertise maps a role title to a canned expertise string.
func InferExpertise(role string) string {
	return firstMatch(expertiseRules, strings.ToLower(role), "Professional Services")
}

// InferSeniority maps a role title to a seniority level. "Senior Manager"
// lands on Manager because the Manager rule is checked first.
func InferSeniority(role string) string {
	return firstMatch(seniorityRules, strings.ToLower(role), models.SeniorityMid)
}

// Apply fills industry, expertise and seniority on a contact when they are
// blank. Fields that already have values pass through untouched.
func Apply(c *models.Contact) {
	if c.Industry == "" {
		c.Industry = InferIndustry(c.Company, c.Role)
	}
	if c.Expertise == "" {
		c.Expertise = InferExpertise(c.Role)
	}
	if c.Seniority == "" {
		c.Seniority = InferSeniority(c.Role)
	}
}
