package retrieval

import (
	"context"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
)

// SectionResult is one scored legislation section.
type SectionResult struct {
	Ref   string
	Title string
	Text  string
	Score float64
}

// SectionIndex is a TF-IDF index over legislation section text, used as
// the fallback tier when no rule matches.
type SectionIndex struct {
	vec    *Vectorizer
	minSim float64

	refs    []string
	titles  []string
	texts   []string
	vectors [][]float64

	cache *lru.Cache[string, []SectionResult]
}

// NewSectionIndex indexes every section of the database.
func NewSectionIndex(db *legislation.Database, opts ...SectionOption) (*SectionIndex, error) {
	ix := &SectionIndex{
		vec:    NewVectorizer(nil),
		minSim: DefaultMinSimilarity,
	}
	for _, opt := range opts {
		opt(ix)
	}

	for _, ord := range db.Ordinances {
		for _, sec := range ord.Sections {
			ix.refs = append(ix.refs, legislation.Ref(ord.Chapter, sec.Number))
			ix.titles = append(ix.titles, sec.Title)
			ix.texts = append(ix.texts, legislation.EmbeddingText(ord, sec))
		}
	}
	if len(ix.texts) == 0 {
		return nil, fmt.Errorf("empty legislation database: %w", internalerr.ErrNotIndexed)
	}

	ix.vec.Fit(ix.texts)
	ix.vectors = make([][]float64, len(ix.texts))
	for i, text := range ix.texts {
		ix.vectors[i] = ix.vec.Transform(text)
	}

	cache, err := lru.New[string, []SectionResult](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	ix.cache = cache
	return ix, nil
}

// SectionOption configures a SectionIndex.
type SectionOption func(*SectionIndex)

// WithSectionMinSimilarity overrides the similarity floor.
func WithSectionMinSimilarity(min float64) SectionOption {
	return func(ix *SectionIndex) { ix.minSim = min }
}

// Len returns the number of indexed sections.
func (ix *SectionIndex) Len() int { return len(ix.texts) }

// Search returns the topN most similar sections, best first.
func (ix *SectionIndex) Search(ctx context.Context, query string, topN int) ([]SectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = 5
	}

	key := fmt.Sprintf("%d|%s", topN, query)
	if hits, ok := ix.cache.Get(key); ok {
		return hits, nil
	}

	queryVec := ix.vec.Transform(query)
	var hits []SectionResult
	for i := range ix.texts {
		score := Cosine(queryVec, ix.vectors[i])
		if score < ix.minSim {
			continue
		}
		hits = append(hits, SectionResult{
			Ref:   ix.refs[i],
			Title: ix.titles[i],
			Text:  ix.texts[i],
			Score: score,
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Ref < hits[j].Ref
	})
	if len(hits) > topN {
		hits = hits[:topN]
	}

	ix.cache.Add(key, hits)
	return hits, nil
}
