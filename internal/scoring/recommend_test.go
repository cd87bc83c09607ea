package scoring

import (
	"testing"

	"github.com/mtorelli/linknest/internal/models"
)

func rec(first string, score int) models.ScoredRecommendation {
	return models.ScoredRecommendation{
		Contact: models.Contact{FirstName: first},
		Score:   score,
	}
}

func TestRankDescendingAndStable(t *testing.T) {
	in := []models.ScoredRecommendation{
		rec("a", 60), rec("b", 80), rec("c", 60), rec("d", 95),
	}
	got := Rank(in)

	wantOrder := []string{"d", "b", "a", "c"}
	for i, name := range wantOrder {
		if got[i].FirstName != name {
			t.Fatalf("rank[%d] = %q, want %q", i, got[i].FirstName, name)
		}
	}
	// input untouched
	if in[0].FirstName != "a" {
		t.Fatal("Rank mutated its input")
	}
}

func TestRecommendCount(t *testing.T) {
	in := []models.ScoredRecommendation{rec("a", 50), rec("b", 90), rec("c", 70)}

	top := Recommend(in, 2)
	if len(top) != 2 || top[0].FirstName != "b" || top[1].FirstName != "c" {
		t.Fatalf("Recommend(2) = %v", names(top))
	}
	all := Recommend(in, -1)
	if len(all) != 3 {
		t.Fatalf("Recommend(-1) returned %d entries, want all 3", len(all))
	}
	over := Recommend(in, 10)
	if len(over) != 3 {
		t.Fatalf("Recommend(10) returned %d entries, want 3", len(over))
	}
}

func TestFilter(t *testing.T) {
	in := []models.ScoredRecommendation{
		{Contact: models.Contact{FirstName: "Sarah", LastName: "Chen", Company: "TechCorp", Role: "Engineering Manager", Industry: "Technology"}},
		{Contact: models.Contact{FirstName: "Miguel", LastName: "Santos", Company: "FinServe", Role: "Analyst", Industry: "Finance"}},
	}

	if got := Filter(in, ""); len(got) != 2 {
		t.Fatalf("empty query kept %d, want 2", len(got))
	}
	if got := Filter(in, "techcorp"); len(got) != 1 || got[0].FirstName != "Sarah" {
		t.Fatalf("company query = %v", names(got))
	}
	if got := Filter(in, "  FINANCE "); len(got) != 1 || got[0].FirstName != "Miguel" {
		t.Fatalf("industry query = %v", names(got))
	}
	if got := Filter(in, "nobody"); len(got) != 0 {
		t.Fatalf("miss query kept %d, want 0", len(got))
	}
}

func TestPaginatePartitions(t *testing.T) {
	var in []models.ScoredRecommendation
	for i := 0; i < 12; i++ {
		in = append(in, rec(string(rune('a'+i)), 95-i))
	}

	seen := 0
	for p := 0; p < 3; p++ {
		page := Paginate(in, p, 5)
		if page.Total != 12 || page.TotalPages != 3 {
			t.Fatalf("page %d: total=%d totalPages=%d", p, page.Total, page.TotalPages)
		}
		seen += len(page.Items)
	}
	if seen != 12 {
		t.Fatalf("pages covered %d items, want 12", seen)
	}

	last := Paginate(in, 2, 5)
	if len(last.Items) != 2 {
		t.Fatalf("last page has %d items, want 2", len(last.Items))
	}
}

func TestPaginateClamps(t *testing.T) {
	in := []models.ScoredRecommendation{rec("a", 90), rec("b", 80)}

	over := Paginate(in, 9, 5)
	if over.Page != 0 || len(over.Items) != 2 {
		t.Fatalf("out-of-range page = %d with %d items, want clamp to 0", over.Page, len(over.Items))
	}
	neg := Paginate(in, -3, 5)
	if neg.Page != 0 {
		t.Fatalf("negative page = %d, want 0", neg.Page)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, 4, 5)
	if page.Page != 0 || page.TotalPages != 0 || page.Total != 0 {
		t.Fatalf("empty set page = %+v, want page 0 of 0", page)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatal("empty set should serialize as an empty list, not null")
	}
}

func names(rs []models.ScoredRecommendation) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.FirstName
	}
	return out
}
