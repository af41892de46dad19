package extract

import (
	"strings"
	"unicode"
)

// Tokenizer splits free text into normalized lowercase tokens.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// DefaultStopwords is the stopword list used when none is supplied. It is
// deliberately small; legal prose carries meaning in common words like
// "force" or "intent" that aggressive lists would strip.
func DefaultStopwords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
		"from", "had", "has", "have", "he", "her", "his", "i", "in", "is",
		"it", "its", "of", "on", "or", "she", "that", "the", "their",
		"them", "they", "this", "to", "was", "were", "with",
	}
}

// Tokenize splits text into normalized tokens, removing stopwords and
// pure-numeric tokens. Mixed tokens like "s-10" or "cap210" are kept.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := t.processToken(current.String())
		if word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

func (t *Tokenizer) processToken(token string) string {
	word := strings.Trim(token, "-")
	for strings.Contains(word, "--") {
		word = strings.ReplaceAll(word, "--", "-")
	}
	if len(word) <= 1 {
		return ""
	}
	if isNumericOnly(word) {
		return ""
	}
	if _, stop := t.stopwords[word]; stop {
		return ""
	}
	return word
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// PhraseParser recognizes multi-word legal terms and collapses them into a
// single canonical token using greedy longest-match.
type PhraseParser struct {
	dict   map[string]string // phrase -> canonical form
	maxLen int
}

// Phrase maps a canonical term to the surface forms it may appear as.
type Phrase struct {
	Canonical string
	Variants  []string
}

// NewPhraseParser creates a parser over the given phrase dictionary.
func NewPhraseParser(phrases []Phrase) *PhraseParser {
	dict := make(map[string]string)
	maxLen := 1
	add := func(form, canonical string) {
		form = strings.ToLower(form)
		dict[form] = canonical
		if l := len(strings.Fields(form)); l > maxLen {
			maxLen = l
		}
	}
	for _, p := range phrases {
		add(strings.ReplaceAll(p.Canonical, "_", " "), p.Canonical)
		for _, v := range p.Variants {
			add(v, p.Canonical)
		}
	}
	return &PhraseParser{dict: dict, maxLen: maxLen}
}

// DefaultPhrases covers the multi-word terms of Hong Kong criminal law that
// the fact lexicon and retrieval layer treat as single units.
func DefaultPhrases() []Phrase {
	return []Phrase{
		{Canonical: "grievous_bodily_harm", Variants: []string{"grievous bodily harm", "gbh"}},
		{Canonical: "actual_bodily_harm", Variants: []string{"actual bodily harm", "abh"}},
		{Canonical: "dangerous_drugs", Variants: []string{"dangerous drugs", "dangerous drug"}},
		{Canonical: "false_representation", Variants: []string{"false representation"}},
		{Canonical: "breaking_and_entering", Variants: []string{"break in", "broke in", "breaking and entering"}},
		{Canonical: "theft_ordinance", Variants: []string{"theft ordinance", "cap 210"}},
		{Canonical: "crimes_ordinance", Variants: []string{"crimes ordinance", "cap 200"}},
	}
}

// Parse collapses recognized phrases in the token stream, longest match
// first, and leaves unknown tokens untouched.
func (p *PhraseParser) Parse(tokens []string) []string {
	var result []string
	i := 0
	for i < len(tokens) {
		matched := ""
		matchLen := 1

		maxPhrase := p.maxLen
		if remaining := len(tokens) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}
		for n := maxPhrase; n >= 2; n-- {
			phrase := strings.Join(tokens[i:i+n], " ")
			if canonical, ok := p.dict[phrase]; ok {
				matched = canonical
				matchLen = n
				break
			}
		}

		if matched == "" {
			if canonical, ok := p.dict[tokens[i]]; ok {
				matched = canonical
			} else {
				matched = tokens[i]
			}
		}
		result = append(result, matched)
		i += matchLen
	}
	return result
}
