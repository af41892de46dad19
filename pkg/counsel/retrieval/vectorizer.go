// Package retrieval implements precedent and statute search: TF-IDF
// vectorization with cosine similarity, a hybrid scorer blending term
// similarity with keyword overlap, recency, and court authority, and an
// LRU query cache.
package retrieval

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/openlaw-hk/counsel/pkg/counsel/extract"
)

// Vectorizer maps texts to L2-normalized TF-IDF vectors over a fitted
// vocabulary. Terms unseen at fit time are ignored at transform time.
type Vectorizer struct {
	tokenize func(string) []string
	vocab    map[string]int
	idf      []float64
	docs     int
}

// NewVectorizer creates a vectorizer. A nil tokenize uses the legal-phrase
// tokenizer from the extract package.
func NewVectorizer(tokenize func(string) []string) *Vectorizer {
	if tokenize == nil {
		tokenize = extract.New(nil).Tokens
	}
	return &Vectorizer{tokenize: tokenize, vocab: make(map[string]int)}
}

// Fit builds the vocabulary and IDF table from the corpus.
func (v *Vectorizer) Fit(texts []string) {
	v.vocab = make(map[string]int)
	v.docs = len(texts)

	df := []int{}
	for _, text := range texts {
		seen := make(map[int]struct{})
		for _, tok := range v.tokenize(text) {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if _, dup := seen[idx]; !dup {
				seen[idx] = struct{}{}
				df[idx]++
			}
		}
	}

	// Smoothed IDF keeps terms that appear in every document from
	// vanishing entirely.
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log(float64(1+v.docs)/float64(1+d)) + 1
	}
}

// VocabSize returns the number of fitted terms.
func (v *Vectorizer) VocabSize() int { return len(v.vocab) }

// Transform maps a text to its TF-IDF vector, L2-normalized. The zero
// vector is returned when no term is in the vocabulary.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx]++
		}
	}
	for i := range vec {
		vec[i] *= v.idf[i]
	}
	norm := floats.Norm(vec, 2)
	if norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors produced by this
// vectorizer. Vectors are already normalized, so this is a dot product.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}
