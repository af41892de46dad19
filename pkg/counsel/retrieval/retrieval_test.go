package retrieval

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVectorizerFitTransform(t *testing.T) {
	v := NewVectorizer(strings.Fields)
	v.Fit([]string{
		"theft dishonest appropriation",
		"robbery theft force",
		"assault bodily harm",
	})

	if v.VocabSize() != 8 {
		t.Fatalf("vocab size = %d, want 8", v.VocabSize())
	}

	vec := v.Transform("theft force")
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if !almostEqual(norm, 1) {
		t.Errorf("transform not L2-normalized, squared norm = %f", norm)
	}

	// "force" appears in one document, "theft" in two; the rarer term
	// carries more weight.
	var theftW, forceW float64
	for i, x := range vec {
		switch {
		case x == 0:
			continue
		case i == v.vocab["theft"]:
			theftW = x
		case i == v.vocab["force"]:
			forceW = x
		}
	}
	if forceW <= theftW {
		t.Errorf("idf weighting: force = %f, theft = %f, want force > theft", forceW, theftW)
	}
}

func TestTransformUnknownTermsIsZero(t *testing.T) {
	v := NewVectorizer(strings.Fields)
	v.Fit([]string{"theft dishonest"})

	vec := v.Transform("bicycle helmet")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("vec[%d] = %f, want zero vector for unknown terms", i, x)
		}
	}
}

func TestCosine(t *testing.T) {
	v := NewVectorizer(strings.Fields)
	v.Fit([]string{"theft dishonest appropriation", "assault bodily harm"})

	a := v.Transform("theft dishonest appropriation")
	if got := Cosine(a, a); !almostEqual(got, 1) {
		t.Errorf("self similarity = %f, want 1", got)
	}
	b := v.Transform("assault bodily harm")
	if got := Cosine(a, b); !almostEqual(got, 0) {
		t.Errorf("disjoint similarity = %f, want 0", got)
	}
	if got := Cosine(a, nil); got != 0 {
		t.Errorf("mismatched length similarity = %f, want 0", got)
	}
}

func TestScorerBreakdown(t *testing.T) {
	s := NewScorer(DefaultWeights(), 10)
	c := store.Case{
		ID:       "C1",
		Year:     2020,
		Court:    "Court of Final Appeal",
		Keywords: []string{"theft", "shop"},
	}

	b := s.Score([]string{"theft", "shop"}, 1.0, c, 2030)

	if !almostEqual(b.TermSim, 0.6) {
		t.Errorf("TermSim = %f, want 0.6", b.TermSim)
	}
	if !almostEqual(b.KeywordOverlap, 0.2) {
		t.Errorf("KeywordOverlap = %f, want 0.2", b.KeywordOverlap)
	}
	// Ten years old at a ten-year half-life.
	if !almostEqual(b.Recency, 0.1*0.5) {
		t.Errorf("Recency = %f, want 0.05", b.Recency)
	}
	if !almostEqual(b.Authority, 0.1) {
		t.Errorf("Authority = %f, want 0.1", b.Authority)
	}
	want := 0.6 + 0.2 + 0.05 + 0.1
	if !almostEqual(b.Total, want) {
		t.Errorf("Total = %f, want %f", b.Total, want)
	}
}

func TestScorerUnknownCourtHasNoAuthority(t *testing.T) {
	s := NewScorer(DefaultWeights(), 10)
	b := s.Score(nil, 0, store.Case{Court: "Coroner's Court", Year: 2026, Keywords: []string{"x"}}, 2026)
	if b.Authority != 0 {
		t.Errorf("Authority = %f, want 0 for unranked court", b.Authority)
	}
}

func TestCaseIndexSearch(t *testing.T) {
	ix, err := NewCaseIndex(store.DefaultCases())
	if err != nil {
		t.Fatalf("NewCaseIndex: %v", err)
	}
	if ix.Len() != len(store.DefaultCases()) {
		t.Fatalf("Len = %d, want %d", ix.Len(), len(store.DefaultCases()))
	}

	hits, err := ix.Search(context.Background(), "robbery with a knife demanding money", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("Search returned no hits")
	}
	if hits[0].Case.ID != "ROBBERY_001" {
		t.Errorf("top hit = %s, want ROBBERY_001", hits[0].Case.ID)
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Score > hits[i-1].Score {
			t.Errorf("hits not sorted: %f after %f", hits[i].Score, hits[i-1].Score)
		}
	}
	for _, h := range hits {
		if h.Score < DefaultMinSimilarity {
			t.Errorf("hit %s below similarity floor: %f", h.Case.ID, h.Score)
		}
		if !almostEqual(h.Score, h.Breakdown.Total) {
			t.Errorf("hit %s Score %f != Breakdown.Total %f", h.Case.ID, h.Score, h.Breakdown.Total)
		}
	}
}

func TestCaseIndexTopNTruncates(t *testing.T) {
	ix, err := NewCaseIndex(store.DefaultCases())
	if err != nil {
		t.Fatalf("NewCaseIndex: %v", err)
	}
	hits, err := ix.Search(context.Background(), "theft", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) > 2 {
		t.Errorf("got %d hits, want at most 2", len(hits))
	}
}

func TestCaseIndexCachedQuery(t *testing.T) {
	ix, err := NewCaseIndex(store.DefaultCases())
	if err != nil {
		t.Fatalf("NewCaseIndex: %v", err)
	}
	ctx := context.Background()
	first, err := ix.Search(ctx, "assault causing grievous bodily harm", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	again, err := ix.Search(ctx, "assault causing grievous bodily harm", 3)
	if err != nil {
		t.Fatalf("cached Search: %v", err)
	}
	if len(first) != len(again) {
		t.Fatalf("cached result length %d != %d", len(again), len(first))
	}
	for i := range first {
		if first[i].Case.ID != again[i].Case.ID || !almostEqual(first[i].Score, again[i].Score) {
			t.Errorf("cached hit %d differs: %+v vs %+v", i, again[i], first[i])
		}
	}
}

func TestCaseIndexCancelledContext(t *testing.T) {
	ix, err := NewCaseIndex(store.DefaultCases())
	if err != nil {
		t.Fatalf("NewCaseIndex: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ix.Search(ctx, "theft", 3); err == nil {
		t.Error("Search with cancelled context did not fail")
	}
}

func TestCaseIndexEmptyCorpus(t *testing.T) {
	if _, err := NewCaseIndex(nil); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("NewCaseIndex(nil) error = %v, want ErrInvalidInput", err)
	}
}

func TestSimilarByFacts(t *testing.T) {
	ix, err := NewCaseIndex(store.DefaultCases())
	if err != nil {
		t.Fatalf("NewCaseIndex: %v", err)
	}
	hits, err := ix.SimilarByFacts(context.Background(), []string{"trafficking", "dangerous", "drugs", "ketamine"}, 2)
	if err != nil {
		t.Fatalf("SimilarByFacts: %v", err)
	}
	if len(hits) == 0 || hits[0].Case.ID != "DRUG_001" {
		t.Errorf("SimilarByFacts top hit = %+v, want DRUG_001", hits)
	}
}

func TestSectionIndexSearch(t *testing.T) {
	db := &legislation.Database{
		Ordinances: map[string]legislation.Ordinance{
			"cap_210": {
				Chapter: "210",
				Title:   "Theft Ordinance",
				Sections: map[string]legislation.Section{
					"2": {
						Number:  "2",
						Title:   "Basic definition of theft",
						Text:    "A person commits theft if he dishonestly appropriates property belonging to another with the intention of permanently depriving the other of it.",
						Penalty: "Imprisonment for 10 years",
					},
					"10": {
						Number:  "10",
						Title:   "Robbery",
						Text:    "A person commits robbery if he steals, and immediately before or at the time of doing so, and in order to do so, he uses force on any person.",
						Penalty: "Imprisonment for life",
					},
				},
			},
		},
	}

	ix, err := NewSectionIndex(db)
	if err != nil {
		t.Fatalf("NewSectionIndex: %v", err)
	}
	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}

	hits, err := ix.Search(context.Background(), "uses force to steal from a person", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("Search returned no hits")
	}
	if hits[0].Ref != "Cap. 210, s. 10" {
		t.Errorf("top hit = %s, want Cap. 210, s. 10", hits[0].Ref)
	}
	if hits[0].Title != "Robbery" {
		t.Errorf("top hit title = %s, want Robbery", hits[0].Title)
	}
}

func TestSectionIndexEmptyDatabase(t *testing.T) {
	db := &legislation.Database{Ordinances: map[string]legislation.Ordinance{}}
	if _, err := NewSectionIndex(db); !errors.Is(err, internalerr.ErrNotIndexed) {
		t.Errorf("NewSectionIndex error = %v, want ErrNotIndexed", err)
	}
}
