// Package match implements tiered rule matching: manual expert rules first,
// then auto-generated rules, then a retrieval fallback over legislation
// text. The first tier that produces a result wins, and each tier carries
// its own confidence level.
package match

import (
	"context"
	"sort"
	"sync"

	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// Confidence levels per tier.
const (
	ManualConfidence   = 1.0
	AutoConfidence     = 0.7
	FallbackConfidence = 0.5
)

// Coverage describes how a query was answered.
type Coverage string

const (
	CoverageFull     Coverage = "full"
	CoverageFallback Coverage = "fallback"
	CoverageNone     Coverage = "none"
)

// SectionHit is a legislation section surfaced by the fallback searcher.
type SectionHit struct {
	Ref   string
	Title string
	Text  string
	Score float64
}

// Result is the outcome of one tiered match.
type Result struct {
	Strategy   string
	Confidence float64
	Coverage   Coverage
	Rules      []rules.Rule
	Sections   []SectionHit
}

// Empty reports whether the result carries neither rules nor sections.
func (r Result) Empty() bool {
	return len(r.Rules) == 0 && len(r.Sections) == 0
}

// Strategy is one tier of the cascade.
type Strategy interface {
	// Name identifies the tier in results and statistics.
	Name() string
	// Match evaluates the tier. An empty result hands off to the next tier.
	Match(ctx context.Context, facts rules.FactSet, query string) (Result, error)
}

// RuleStrategy matches a fixed rule set against the fact set.
type RuleStrategy struct {
	name       string
	confidence float64
	rules      []rules.Rule
}

// ManualRules builds the highest-confidence tier over hand-written rules.
func ManualRules(rs []rules.Rule) *RuleStrategy {
	return &RuleStrategy{name: "manual", confidence: ManualConfidence, rules: rs}
}

// AutoRules builds the medium-confidence tier over generated rules.
func AutoRules(rs []rules.Rule) *RuleStrategy {
	return &RuleStrategy{name: "auto", confidence: AutoConfidence, rules: rs}
}

func (s *RuleStrategy) Name() string { return s.name }

func (s *RuleStrategy) Match(ctx context.Context, facts rules.FactSet, query string) (Result, error) {
	var matched []rules.Rule
	for _, r := range s.rules {
		if r.Matches(facts) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return Result{Strategy: s.name, Coverage: CoverageNone}, nil
	}
	return Result{
		Strategy:   s.name,
		Confidence: s.confidence,
		Coverage:   CoverageFull,
		Rules:      matched,
	}, nil
}

// Searcher is the retrieval capability the fallback tier needs.
type Searcher interface {
	SearchSections(ctx context.Context, query string, topN int) ([]SectionHit, error)
}

// Fallback searches legislation text when no rule tier matched. The query
// is enriched with the extracted facts before searching.
type Fallback struct {
	searcher Searcher
	topN     int
}

// NewFallback builds the fallback tier. topN caps the sections returned.
func NewFallback(searcher Searcher, topN int) *Fallback {
	if topN <= 0 {
		topN = 5
	}
	return &Fallback{searcher: searcher, topN: topN}
}

func (f *Fallback) Name() string { return "fallback" }

func (f *Fallback) Match(ctx context.Context, facts rules.FactSet, query string) (Result, error) {
	if query == "" {
		return Result{Strategy: f.Name(), Coverage: CoverageNone}, nil
	}
	enriched := query
	for _, fact := range facts.All() {
		enriched += " " + fact
	}
	hits, err := f.searcher.SearchSections(ctx, enriched, f.topN)
	if err != nil {
		return Result{}, err
	}
	if len(hits) == 0 {
		return Result{Strategy: f.Name(), Coverage: CoverageNone}, nil
	}
	return Result{
		Strategy:   f.Name(),
		Confidence: FallbackConfidence,
		Coverage:   CoverageFallback,
		Sections:   hits,
	}, nil
}

// Cascade runs strategies in order and returns the first non-empty result.
type Cascade struct {
	strategies []Strategy

	mu      sync.Mutex
	queries int
	hits    map[string]int
	misses  int
}

// NewCascade builds a cascade over the given tiers, evaluated in order.
func NewCascade(strategies ...Strategy) *Cascade {
	return &Cascade{strategies: strategies, hits: make(map[string]int)}
}

// Match runs the cascade. When every tier comes up empty the result has
// CoverageNone and zero confidence.
func (c *Cascade) Match(ctx context.Context, facts rules.FactSet, query string) (Result, error) {
	c.mu.Lock()
	c.queries++
	c.mu.Unlock()

	for _, s := range c.strategies {
		res, err := s.Match(ctx, facts, query)
		if err != nil {
			return Result{}, err
		}
		if res.Empty() {
			continue
		}
		c.mu.Lock()
		c.hits[s.Name()]++
		c.mu.Unlock()
		return res, nil
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	return Result{Coverage: CoverageNone}, nil
}

// TierStat is the hit count for one tier.
type TierStat struct {
	Name string
	Hits int
}

// Stats is a snapshot of cascade usage.
type Stats struct {
	Queries int
	Tiers   []TierStat
	Misses  int
}

// Stats returns usage counters, tiers sorted by name.
func (c *Cascade) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Queries: c.queries, Misses: c.misses}
	for name, n := range c.hits {
		s.Tiers = append(s.Tiers, TierStat{Name: name, Hits: n})
	}
	sort.Slice(s.Tiers, func(i, j int) bool { return s.Tiers[i].Name < s.Tiers[j].Name })
	return s
}
