// Package counsel is the main facade: it wires the fact extractor, the
// rule base and inference engine, the tiered matcher, precedent
// retrieval, risk assessment, and report building into one consultation
// flow.
package counsel

import (
	"context"
	"fmt"

	"github.com/openlaw-hk/counsel/pkg/counsel/extract"
	"github.com/openlaw-hk/counsel/pkg/counsel/infer"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/match"
	"github.com/openlaw-hk/counsel/pkg/counsel/report"
	"github.com/openlaw-hk/counsel/pkg/counsel/retrieval"
	"github.com/openlaw-hk/counsel/pkg/counsel/risk"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
	"github.com/openlaw-hk/counsel/pkg/counsel/store/memstore"
)

// Options configures a Counsel instance. Every field has a usable
// default so `New(ctx, Options{})` yields a working in-memory system.
type Options struct {
	// Store persists the corpus and the consultation log. Nil means an
	// in-memory store seeded with the built-in case corpus.
	Store store.Store
	// Base is the hand-written rule base. Nil means the built-in base.
	Base *rules.Base
	// AutoRules is the generated rule set for the medium-confidence
	// matching tier.
	AutoRules []rules.Rule
	// Extractor turns free text into canonical facts. Nil means the
	// built-in lexicon.
	Extractor *extract.Extractor
	// Legislation enables the fallback matching tier and statute
	// search. Optional.
	Legislation *legislation.Database
	// RiskOptions overlay the statutory risk tables.
	RiskOptions []risk.Option
	// SimilarCases caps the precedents attached to a report. Zero
	// means 3.
	SimilarCases int
}

// Counsel is the assembled legal-advice system.
type Counsel struct {
	store     store.Store
	base      *rules.Base
	extractor *extract.Extractor
	cascade   *match.Cascade
	cases     *retrieval.CaseIndex
	sections  *retrieval.SectionIndex
	assessor  *risk.Assessor
	builder   *report.Builder
	topCases  int
}

// sectionSearcher adapts the statute index to the matcher's fallback
// tier.
type sectionSearcher struct {
	index *retrieval.SectionIndex
}

func (s sectionSearcher) SearchSections(ctx context.Context, query string, topN int) ([]match.SectionHit, error) {
	hits, err := s.index.Search(ctx, query, topN)
	if err != nil {
		return nil, err
	}
	out := make([]match.SectionHit, len(hits))
	for i, h := range hits {
		out[i] = match.SectionHit{Ref: h.Ref, Title: h.Title, Text: h.Text, Score: h.Score}
	}
	return out, nil
}

// New assembles a Counsel instance from explicitly constructed parts.
func New(ctx context.Context, opts Options) (*Counsel, error) {
	st := opts.Store
	if st == nil {
		st = memstore.New()
		for _, c := range store.DefaultCases() {
			if err := st.UpsertCase(ctx, c); err != nil {
				return nil, fmt.Errorf("seed corpus: %w", err)
			}
		}
	}

	base := opts.Base
	if base == nil {
		base = rules.DefaultBase()
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = extract.New(nil)
	}

	topCases := opts.SimilarCases
	if topCases <= 0 {
		topCases = 3
	}

	c := &Counsel{
		store:     st,
		base:      base,
		extractor: extractor,
		builder:   report.New(),
		topCases:  topCases,
	}

	corpus, err := st.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load case corpus: %w", err)
	}
	c.assessor = risk.NewAssessor(corpus, opts.RiskOptions...)
	if len(corpus) > 0 {
		index, err := retrieval.NewCaseIndex(corpus)
		if err != nil {
			return nil, fmt.Errorf("index case corpus: %w", err)
		}
		c.cases = index
	}

	tiers := []match.Strategy{match.ManualRules(base.Rules())}
	if len(opts.AutoRules) > 0 {
		tiers = append(tiers, match.AutoRules(opts.AutoRules))
	}
	if opts.Legislation != nil {
		sections, err := retrieval.NewSectionIndex(opts.Legislation)
		if err != nil {
			return nil, fmt.Errorf("index legislation: %w", err)
		}
		c.sections = sections
		tiers = append(tiers, match.NewFallback(sectionSearcher{index: sections}, 5))
	}
	c.cascade = match.NewCascade(tiers...)

	return c, nil
}

// Close shuts down the underlying store.
func (c *Counsel) Close() error {
	return c.store.Close()
}

// Request is one consultation. Facts listed explicitly are merged with
// those extracted from the text.
type Request struct {
	Text  string
	Facts []string
}

// Result is the outcome of a consultation.
type Result struct {
	Report      report.Report
	Summary     infer.Summary
	Engine      *infer.Engine
	Match       match.Result
	Analysis    extract.Analysis
	Risk        risk.Assessment
	SimilarHits []retrieval.Hit
}

// Consult runs the full flow: extract facts, infer offences and
// defenses, match rules or statutes, retrieve precedent, assess risk,
// and log the report.
func (c *Counsel) Consult(ctx context.Context, req Request) (Result, error) {
	analysis := c.extractor.Analyze(req.Text)
	facts := append(analysis.Facts, req.Facts...)

	engine := infer.Analyze(c.base, facts)

	matchRes, err := c.cascade.Match(ctx, rules.NewFactSet(engine.Facts()...), req.Text)
	if err != nil {
		return Result{}, fmt.Errorf("match: %w", err)
	}

	var hits []retrieval.Hit
	if c.cases != nil && req.Text != "" {
		hits, err = c.cases.Search(ctx, req.Text, c.topCases)
		if err != nil {
			return Result{}, fmt.Errorf("retrieve precedent: %w", err)
		}
	}

	assessment := c.assessor.Assess(req.Text, analysis.Amount, analysis.HasAmount, "theft")

	summary := engine.Summary()
	rep := c.builder.Build(report.Input{
		Query:        req.Text,
		Facts:        engine.InputFacts(),
		Explanation:  engine.Explain(),
		Summary:      summary,
		SimilarCases: hits,
		Risk:         &assessment,
	})

	found := engine.Offences()
	offences := make([]string, 0, len(found))
	for _, o := range found {
		offences = append(offences, o.RuleID)
	}
	err = c.store.InsertConsultation(ctx, store.Consultation{
		ID:        rep.ID,
		CreatedAt: rep.CreatedAt,
		Query:     req.Text,
		Facts:     engine.InputFacts(),
		Offences:  offences,
		Report:    rep.Render(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("log consultation: %w", err)
	}

	return Result{
		Report:      rep,
		Summary:     summary,
		Engine:      engine,
		Match:       matchRes,
		Analysis:    analysis,
		Risk:        assessment,
		SimilarHits: hits,
	}, nil
}

// AnalyzeFacts runs inference over explicit canonical facts, without
// extraction, retrieval, or logging.
func (c *Counsel) AnalyzeFacts(facts []string) *infer.Engine {
	return infer.Analyze(c.base, facts)
}

// SearchCases ranks precedents for a free-text query.
func (c *Counsel) SearchCases(ctx context.Context, query string, limit int) ([]retrieval.Hit, error) {
	if c.cases == nil {
		return nil, nil
	}
	return c.cases.Search(ctx, query, limit)
}

// SearchSections ranks legislation sections for a free-text query. The
// second return is false when no legislation database is loaded.
func (c *Counsel) SearchSections(ctx context.Context, query string, limit int) ([]retrieval.SectionResult, bool, error) {
	if c.sections == nil {
		return nil, false, nil
	}
	hits, err := c.sections.Search(ctx, query, limit)
	return hits, true, err
}

// MatchStats reports tier usage of the matching cascade.
func (c *Counsel) MatchStats() match.Stats {
	return c.cascade.Stats()
}

// Store exposes the underlying store, for the consultation log.
func (c *Counsel) Store() store.Store {
	return c.store
}
