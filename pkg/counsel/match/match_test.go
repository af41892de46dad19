package match

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

var manualSet = []rules.Rule{
	{
		ID:         "THEFT_001",
		Name:       "Theft",
		Kind:       rules.KindOffence,
		Conditions: []string{"appropriates_property", "acts_dishonestly"},
		Conclusion: "guilty_of_theft",
	},
}

var autoSet = []rules.Rule{
	{
		ID:         "AUTO_CAP132_004",
		Name:       "Fixed penalty littering",
		Kind:       rules.KindOffence,
		Conditions: []string{"disposes_of_litter", "in_public_place"},
		Conclusion: "liable_for_littering",
		Confidence: 0.7,
	},
}

type stubSearcher struct {
	hits []SectionHit
	err  error

	lastQuery string
}

func (s *stubSearcher) SearchSections(ctx context.Context, query string, topN int) ([]SectionHit, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	if len(s.hits) > topN {
		return s.hits[:topN], s.err
	}
	return s.hits, s.err
}

func newTestCascade(searcher Searcher) *Cascade {
	return NewCascade(
		ManualRules(manualSet),
		AutoRules(autoSet),
		NewFallback(searcher, 5),
	)
}

func TestManualTierWins(t *testing.T) {
	c := newTestCascade(&stubSearcher{})
	facts := rules.NewFactSet("appropriates_property", "acts_dishonestly")

	res, err := c.Match(context.Background(), facts, "stole a wallet")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Strategy != "manual" || res.Confidence != ManualConfidence {
		t.Errorf("Result = (%s, %.1f), want (manual, 1.0)", res.Strategy, res.Confidence)
	}
	if res.Coverage != CoverageFull {
		t.Errorf("Coverage = %s, want full", res.Coverage)
	}
	if len(res.Rules) != 1 || res.Rules[0].ID != "THEFT_001" {
		t.Errorf("Rules = %v", res.Rules)
	}
}

func TestAutoTierWhenManualMisses(t *testing.T) {
	c := newTestCascade(&stubSearcher{})
	facts := rules.NewFactSet("disposes_of_litter", "in_public_place")

	res, err := c.Match(context.Background(), facts, "dropped trash in the park")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Strategy != "auto" || res.Confidence != AutoConfidence {
		t.Errorf("Result = (%s, %.1f), want (auto, 0.7)", res.Strategy, res.Confidence)
	}
	if res.Rules[0].ID != "AUTO_CAP132_004" {
		t.Errorf("Rules = %v", res.Rules)
	}
}

func TestFallbackTier(t *testing.T) {
	searcher := &stubSearcher{hits: []SectionHit{
		{Ref: "Cap. 310, s. 4", Title: "Companies Ordinance", Score: 0.42},
	}}
	c := newTestCascade(searcher)
	facts := rules.NewFactSet("unknown_fact")

	res, err := c.Match(context.Background(), facts, "register a company on a work visa")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Strategy != "fallback" || res.Confidence != FallbackConfidence {
		t.Errorf("Result = (%s, %.1f), want (fallback, 0.5)", res.Strategy, res.Confidence)
	}
	if res.Coverage != CoverageFallback {
		t.Errorf("Coverage = %s, want fallback", res.Coverage)
	}
	if len(res.Sections) != 1 || res.Sections[0].Ref != "Cap. 310, s. 4" {
		t.Errorf("Sections = %v", res.Sections)
	}
	// The fallback query is enriched with the extracted facts.
	if !strings.Contains(searcher.lastQuery, "unknown_fact") {
		t.Errorf("Fallback query %q missing facts", searcher.lastQuery)
	}
}

func TestFallbackSkippedWithoutQueryText(t *testing.T) {
	searcher := &stubSearcher{hits: []SectionHit{{Ref: "Cap. 1, s. 1"}}}
	c := newTestCascade(searcher)

	res, err := c.Match(context.Background(), rules.NewFactSet("unknown_fact"), "")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !res.Empty() || res.Coverage != CoverageNone {
		t.Errorf("Expected no-coverage result, got %+v", res)
	}
}

func TestFallbackErrorPropagates(t *testing.T) {
	wantErr := errors.New("index unavailable")
	c := newTestCascade(&stubSearcher{err: wantErr})

	_, err := c.Match(context.Background(), rules.NewFactSet("unknown_fact"), "anything")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestCascadeStats(t *testing.T) {
	c := newTestCascade(&stubSearcher{})
	ctx := context.Background()

	c.Match(ctx, rules.NewFactSet("appropriates_property", "acts_dishonestly"), "")
	c.Match(ctx, rules.NewFactSet("appropriates_property", "acts_dishonestly"), "")
	c.Match(ctx, rules.NewFactSet("disposes_of_litter", "in_public_place"), "")
	c.Match(ctx, rules.NewFactSet("nothing_matches"), "")

	s := c.Stats()
	if s.Queries != 4 {
		t.Errorf("Queries = %d, want 4", s.Queries)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d, want 1", s.Misses)
	}
	want := map[string]int{"auto": 1, "manual": 2}
	for _, tier := range s.Tiers {
		if want[tier.Name] != tier.Hits {
			t.Errorf("Tier %s hits = %d, want %d", tier.Name, tier.Hits, want[tier.Name])
		}
		delete(want, tier.Name)
	}
	if len(want) != 0 {
		t.Errorf("Missing tiers in stats: %v", want)
	}
}
