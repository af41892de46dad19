package retrieval

import (
	"math"
	"strings"

	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

// Weights controls the hybrid score components.
type Weights struct {
	TermSim        float64 // TF-IDF cosine similarity
	KeywordOverlap float64 // Jaccard over query tokens and case keywords
	Recency        float64 // exponential decay by case age in years
	Authority      float64 // court level of the deciding court
}

// DefaultWeights favors text similarity, with keyword overlap as the
// secondary signal and recency and authority as tie-breakers.
func DefaultWeights() Weights {
	return Weights{TermSim: 0.6, KeywordOverlap: 0.2, Recency: 0.1, Authority: 0.1}
}

// courtAuthority ranks Hong Kong courts, normalized to [0,1].
var courtAuthority = map[string]float64{
	"Court of Final Appeal":   1.0,
	"Court of Appeal":         0.85,
	"Court of First Instance": 0.7,
	"District Court":          0.5,
	"Magistrates' Court":      0.3,
	"Labour Tribunal":         0.2,
	"Small Claims Tribunal":   0.2,
	"Family Court":            0.3,
}

// Scorer blends similarity components into one hybrid score.
type Scorer struct {
	weights       Weights
	halfLifeYears float64
}

// NewScorer creates a scorer. halfLifeYears controls recency decay; zero
// or negative means a 10-year half-life.
func NewScorer(w Weights, halfLifeYears float64) *Scorer {
	if halfLifeYears <= 0 {
		halfLifeYears = 10
	}
	return &Scorer{weights: w, halfLifeYears: halfLifeYears}
}

// Breakdown reports the weighted value of each score component.
type Breakdown struct {
	TermSim        float64
	KeywordOverlap float64
	Recency        float64
	Authority      float64
	Total          float64
}

// Score computes the hybrid score of a case for a query.
//
//	score = w1*cosine + w2*keyword_overlap + w3*recency + w4*authority
func (s *Scorer) Score(queryTokens []string, cosine float64, c store.Case, nowYear int) Breakdown {
	overlap := jaccard(queryTokens, lowerAll(c.Keywords))

	ageYears := float64(nowYear - c.Year)
	if ageYears < 0 {
		ageYears = 0
	}
	recency := math.Exp(-ageYears * math.Ln2 / s.halfLifeYears)

	authority := courtAuthority[c.Court]

	b := Breakdown{
		TermSim:        s.weights.TermSim * cosine,
		KeywordOverlap: s.weights.KeywordOverlap * overlap,
		Recency:        s.weights.Recency * recency,
		Authority:      s.weights.Authority * authority,
	}
	b.Total = b.TermSim + b.KeywordOverlap + b.Recency + b.Authority
	return b
}

func lowerAll(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strings.ToLower(x)
	}
	return out
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	aSet := make(map[string]struct{}, len(a))
	for _, s := range a {
		aSet[s] = struct{}{}
	}
	bSet := make(map[string]struct{}, len(b))
	for _, s := range b {
		bSet[s] = struct{}{}
	}
	intersection := 0
	for s := range aSet {
		if _, ok := bSet[s]; ok {
			intersection++
		}
	}
	union := len(aSet) + len(bSet) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
