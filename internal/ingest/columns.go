package ingest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical column names used by the rest of the system.
const (
	ColFirstName    = "First Name"
	ColLastName     = "Last Name"
	ColEmail        = "Email Address"
	ColCompany      = "Company"
	ColPosition     = "Position"
	ColIndustry     = "Industry"
	ColURL          = "Url"
	ColConnectedOn  = "Connected On"
	ColExpertise    = "Expertise"
	ColSeniority    = "Seniority"
	ColCompanySize  = "Company Size"
	ColActivity     = "Activity Level"
	ColProjects     = "Recent Projects"
	ColAchievements = "Key Achievements"
	ColMutual       = "Mutual Connections"
)

// Required column sets per export flavor.
var (
	ContactColumns    = []string{ColFirstName, ColLastName}
	ConnectionColumns = []string{ColFirstName, ColLastName, ColEmail}
)

// columnAliases maps known header variants (after normalization) to the
// canonical name. LinkedIn, Google Contacts and Outlook exports each spell
// these differently.
var columnAliases = map[string]string{
	"E-Mail Address": ColEmail,
	"E-Mail":         ColEmail,
	"Email":          ColEmail,
	"Company Name":   ColCompany,
	"Organization":   ColCompany,
	"Organisation":   ColCompany,
	"Position Title": ColPosition,
	"Title":          ColPosition,
	"Headline":       ColPosition,
	"Job Title":      ColPosition,
	"Given Name":     ColFirstName,
	"Family Name":    ColLastName,
	"Surname":        ColLastName,
	"Profile Url":    ColURL,
	"Website":        ColURL,
	"Connected":      ColConnectedOn,
	"Sector":         ColIndustry,
	"Skills":         ColExpertise,
}

var titler = cases.Title(language.English)

// normalizeColumn trims, collapses whitespace and title-cases a header cell so
// that "  first NAME " and "First Name" resolve to the same key.
func normalizeColumn(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	return titler.String(strings.ToLower(name))
}

// canonicalizeColumns normalizes every header, applies the alias table, and
// finally tries a substring rescue for required columns that are still
// missing (a header merely containing the required name is renamed to it).
func canonicalizeColumns(header []string, required []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		c := normalizeColumn(h)
		if alias, ok := columnAliases[c]; ok {
			c = alias
		}
		cols[i] = c
	}

	for _, want := range required {
		if indexOf(cols, want) >= 0 {
			continue
		}
		for i, c := range cols {
			if c != "" && strings.Contains(c, want) {
				cols[i] = want
				break
			}
		}
	}
	return cols
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}

func missingColumns(cols []string, required []string) []string {
	var missing []string
	for _, want := range required {
		if indexOf(cols, want) < 0 {
			missing = append(missing, want)
		}
	}
	return missing
}
