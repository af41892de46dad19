package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Extractor turns a free-text scenario description into canonical facts,
// offence categories, and supporting details for downstream analysis.
type Extractor struct {
	lex     *Lexicon
	tok     *Tokenizer
	phrases *PhraseParser
}

// New creates an extractor over the given lexicon. A nil lexicon uses the
// built-in tables.
func New(lex *Lexicon) *Extractor {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Extractor{
		lex:     lex,
		tok:     NewTokenizer(DefaultStopwords()),
		phrases: NewPhraseParser(DefaultPhrases()),
	}
}

// NewWithStopwords creates an extractor with a custom stopword list.
func NewWithStopwords(lex *Lexicon, stopwords []string) *Extractor {
	x := New(lex)
	x.tok = NewTokenizer(stopwords)
	return x
}

// Category is an offence category spotted in the text, with a confidence
// proportional to the number of matching keywords, capped at 1.0.
type Category struct {
	Name       string
	Confidence float64
	Matches    int
}

// Analysis is the full result of analyzing one scenario description.
type Analysis struct {
	Facts      []string
	Categories []Category
	Parties    []string
	Dates      []string
	Locations  []string
	Amount     int64
	HasAmount  bool
	Issues     []string
	WordCount  int
}

// Facts extracts the canonical facts asserted by the text, sorted.
func (x *Extractor) Facts(text string) []string {
	lower := strings.ToLower(text)
	var facts []string
	for fact, keywords := range x.lex.FactTriggers {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				facts = append(facts, fact)
				break
			}
		}
	}
	sort.Strings(facts)
	return facts
}

// Categories spots offence categories in the text, strongest first. Each
// keyword hit adds 0.2 confidence.
func (x *Extractor) Categories(text string) []Category {
	lower := strings.ToLower(text)
	var out []Category
	for name, keywords := range x.lex.CategoryKeywords {
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		conf := float64(matches) * 0.2
		if conf > 1.0 {
			conf = 1.0
		}
		out = append(out, Category{Name: name, Confidence: conf, Matches: matches})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Tokens tokenizes the text and collapses known legal phrases. Used by the
// retrieval layer to index scenarios consistently.
func (x *Extractor) Tokens(text string) []string {
	return x.phrases.Parse(x.tok.Tokenize(text))
}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)HK\$\s*([\d,]+)`),
		regexp.MustCompile(`(?i)worth\s+\$?\s*([\d,]+)`),
		regexp.MustCompile(`(?i)value[^$]*?\$\s*([\d,]+)`),
		regexp.MustCompile(`\$\s*([\d,]+)`),
	}
	partyPattern = regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`),
	}
)

// smallItems are low-value goods estimated at roughly HK$10 when no
// explicit amount appears in the text.
var smallItems = []string{"candy", "chocolate", "snack", "gum", "drink"}

// Amount extracts a monetary amount in Hong Kong dollars from the text.
// Explicit HK$ figures win; otherwise small-value items get a HK$10
// estimate. The second return is false when no amount can be determined.
func (x *Extractor) Amount(text string) (int64, bool) {
	for _, p := range amountPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		return n, true
	}

	lower := strings.ToLower(text)
	for _, item := range smallItems {
		if strings.Contains(lower, item) {
			return 10, true
		}
	}
	return 0, false
}

// hkLocations are districts and landmarks recognized in scenario text.
var hkLocations = []string{
	"Central", "Causeway Bay", "Mong Kok", "Tsim Sha Tsui", "Wan Chai",
	"Sham Shui Po", "Yau Ma Tei", "Jordan", "Admiralty", "Sheung Wan",
	"North Point", "Quarry Bay", "Tai Koo", "Kowloon", "Hong Kong Island",
	"New Territories", "Nathan Road", "MTR",
}

// Analyze runs the full extraction over one scenario description.
func (x *Extractor) Analyze(text string) Analysis {
	a := Analysis{
		Facts:      x.Facts(text),
		Categories: x.Categories(text),
		Parties:    extractParties(text),
		Dates:      extractDates(text),
		Locations:  extractLocations(text),
		WordCount:  len(strings.Fields(text)),
	}
	a.Amount, a.HasAmount = x.Amount(text)
	if len(a.Categories) > 0 {
		a.Issues = x.lex.Issues[a.Categories[0].Name]
	}
	return a
}

func extractParties(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range partyPattern.FindAllStringSubmatch(text, -1) {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

func extractDates(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range datePatterns {
		for _, m := range p.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

func extractLocations(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, loc := range hkLocations {
		if strings.Contains(lower, strings.ToLower(loc)) {
			out = append(out, loc)
		}
	}
	return out
}
