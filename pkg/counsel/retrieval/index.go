package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

// DefaultMinSimilarity drops hits below this total score.
const DefaultMinSimilarity = 0.1

const defaultCacheSize = 256

// Hit is one scored case from a search.
type Hit struct {
	Case      store.Case
	Score     float64
	Breakdown Breakdown
}

// CaseIndex is an in-memory TF-IDF index over the case corpus.
type CaseIndex struct {
	vec     *Vectorizer
	scorer  *Scorer
	minSim  float64
	nowYear int

	cases   []store.Case
	vectors [][]float64

	cache *lru.Cache[string, []Hit]
}

// IndexOption configures a CaseIndex.
type IndexOption func(*CaseIndex)

// WithWeights overrides the hybrid score weights.
func WithWeights(w Weights) IndexOption {
	return func(ix *CaseIndex) { ix.scorer = NewScorer(w, 0) }
}

// WithMinSimilarity overrides the score floor.
func WithMinSimilarity(min float64) IndexOption {
	return func(ix *CaseIndex) { ix.minSim = min }
}

// WithTokenizer overrides the tokenizer used for indexing and queries.
func WithTokenizer(tokenize func(string) []string) IndexOption {
	return func(ix *CaseIndex) { ix.vec = NewVectorizer(tokenize) }
}

// NewCaseIndex builds an index over the corpus.
func NewCaseIndex(cases []store.Case, opts ...IndexOption) (*CaseIndex, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("empty case corpus: %w", internalerr.ErrInvalidInput)
	}

	ix := &CaseIndex{
		vec:     NewVectorizer(nil),
		scorer:  NewScorer(DefaultWeights(), 0),
		minSim:  DefaultMinSimilarity,
		nowYear: time.Now().Year(),
		cases:   cases,
	}
	for _, opt := range opts {
		opt(ix)
	}

	texts := make([]string, len(cases))
	for i, c := range cases {
		texts[i] = c.SearchText()
	}
	ix.vec.Fit(texts)
	ix.vectors = make([][]float64, len(cases))
	for i, text := range texts {
		ix.vectors[i] = ix.vec.Transform(text)
	}

	cache, err := lru.New[string, []Hit](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	ix.cache = cache
	return ix, nil
}

// Len returns the number of indexed cases.
func (ix *CaseIndex) Len() int { return len(ix.cases) }

// Search returns the topN most similar cases to the query text, best
// first, dropping hits under the similarity floor.
func (ix *CaseIndex) Search(ctx context.Context, query string, topN int) ([]Hit, error) {
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
	queryTokens := ix.vec.tokenize(strings.ToLower(query))

	hits := make([]Hit, 0, len(ix.cases))
	for i, c := range ix.cases {
		cos := Cosine(queryVec, ix.vectors[i])
		b := ix.scorer.Score(queryTokens, cos, c, ix.nowYear)
		if b.Total < ix.minSim {
			continue
		}
		hits = append(hits, Hit{Case: c, Score: b.Total, Breakdown: b})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Case.ID < hits[j].Case.ID
	})
	if len(hits) > topN {
		hits = hits[:topN]
	}

	ix.cache.Add(key, hits)
	return hits, nil
}

// SimilarByFacts searches using a list of canonical facts as the query.
func (ix *CaseIndex) SimilarByFacts(ctx context.Context, facts []string, topN int) ([]Hit, error) {
	return ix.Search(ctx, strings.Join(facts, " "), topN)
}

// Compare returns the TF-IDF cosine similarity of two free texts under
// the index vocabulary.
func (ix *CaseIndex) Compare(a, b string) float64 {
	return Cosine(ix.vec.Transform(a), ix.vec.Transform(b))
}
