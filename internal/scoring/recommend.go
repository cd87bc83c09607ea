package scoring

import (
	"sort"
	"strings"

	"github.com/mtorelli/linknest/internal/models"
)

// DefaultPageSize is used when a page request does not specify one.
const DefaultPageSize = 5

// Rank returns a copy of scored sorted by score descending. The sort is
// stable: equal scores keep their relative input order, so a refresh is
// reproducible given fixed noise draws.
func Rank(scored []models.ScoredRecommendation) []models.ScoredRecommendation {
	out := make([]models.ScoredRecommendation, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommend returns the top count entries of the ranked set. A negative count
// means no limit.
func Recommend(scored []models.ScoredRecommendation, count int) []models.ScoredRecommendation {
	ranked := Rank(scored)
	if count >= 0 && count < len(ranked) {
		ranked = ranked[:count]
	}
	return ranked
}

// Filter keeps entries whose identity text contains query, case-insensitively.
// The haystack is first name, last name, company, role, expertise and industry
// joined together. An empty query keeps everything.
func Filter(scored []models.ScoredRecommendation, query string) []models.ScoredRecommendation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return scored
	}
	out := make([]models.ScoredRecommendation, 0, len(scored))
	for _, r := range scored {
		haystack := strings.ToLower(strings.Join([]string{
			r.FirstName, r.LastName, r.Company, r.Role, r.Expertise, r.Industry,
		}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, r)
		}
	}
	return out
}

// Page is one pagination window over a filtered, ranked set.
type Page struct {
	Items      []models.ScoredRecommendation `json:"items"`
	Page       int                           `json:"page"` // zero-based, clamped
	PageSize   int                           `json:"page_size"`
	Total      int                           `json:"total"`
	TotalPages int                           `json:"total_pages"`
}

// Paginate slices items into the requested zero-based page, clamping the page
// index into range instead of failing. An empty set yields page 0 of 0 pages.
func Paginate(items []models.ScoredRecommendation, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if totalPages == 0 {
		return Page{Items: []models.ScoredRecommendation{}, Page: 0, PageSize: pageSize, Total: 0, TotalPages: 0}
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{Items: items[start:end], Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}
