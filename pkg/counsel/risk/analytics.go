package risk

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

var (
	yearsPattern  = regexp.MustCompile(`(?i)(\d+)\s*years?`)
	monthsPattern = regexp.MustCompile(`(?i)(\d+)\s*months?`)
)

// SentenceRange summarizes custodial terms observed in precedent, in
// months.
type SentenceRange struct {
	LowMonths     int
	TypicalMonths int
	HighMonths    int
	BasedOnCases  int
	Confidence    int
}

// keywordRange accumulates sentence lengths for one keyword.
type keywordRange struct {
	min   int
	max   int
	sum   int
	count int
}

// Analytics derives sentencing patterns and appeal outcomes from the
// case corpus.
type Analytics struct {
	total     int
	ranges    map[string]keywordRange
	keywords  map[string]int
	dismissed int
	allowed   int
	reduced   int
}

// NewAnalytics analyzes the corpus once up front.
func NewAnalytics(cases []store.Case) *Analytics {
	a := &Analytics{
		total:    len(cases),
		ranges:   make(map[string]keywordRange),
		keywords: make(map[string]int),
	}

	for _, c := range cases {
		outcome := strings.ToLower(c.Outcome)
		switch {
		case strings.Contains(outcome, "dismissed"):
			a.dismissed++
		case strings.Contains(outcome, "allowed"):
			a.allowed++
		case strings.Contains(outcome, "reduced"):
			a.reduced++
		}

		months := ParseSentenceMonths(c.Sentence)
		for _, kw := range c.Keywords {
			kw = strings.ToLower(kw)
			a.keywords[kw]++
			if months <= 0 {
				continue
			}
			r, ok := a.ranges[kw]
			if !ok || months < r.min {
				r.min = months
			}
			if months > r.max {
				r.max = months
			}
			r.sum += months
			r.count++
			a.ranges[kw] = r
		}
	}
	return a
}

// ParseSentenceMonths extracts the custodial term from free sentence
// text like "4 years imprisonment" or "18 months". Zero means none
// found.
func ParseSentenceMonths(text string) int {
	if text == "" {
		return 0
	}
	months := 0
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		months += y * 12
	}
	if m := monthsPattern.FindStringSubmatch(text); m != nil {
		mo, _ := strconv.Atoi(m[1])
		months += mo
	}
	return months
}

// SentenceRangeFor combines the observed ranges of the given keywords.
// The second return is false when no keyword has sentencing data.
func (a *Analytics) SentenceRangeFor(keywords []string) (SentenceRange, bool) {
	var (
		low, high int
		avgSum    float64
		matched   int
		cases     int
	)
	for _, kw := range keywords {
		r, ok := a.ranges[strings.ToLower(kw)]
		if !ok || r.count == 0 {
			continue
		}
		if matched == 0 || r.min < low {
			low = r.min
		}
		if r.max > high {
			high = r.max
		}
		avgSum += float64(r.sum) / float64(r.count)
		matched++
		cases += r.count
	}
	if matched == 0 {
		return SentenceRange{}, false
	}

	confidence := cases * 20
	if confidence > 80 {
		confidence = 80
	}
	return SentenceRange{
		LowMonths:     low,
		TypicalMonths: int(avgSum / float64(matched)),
		HighMonths:    high,
		BasedOnCases:  cases,
		Confidence:    confidence,
	}, true
}

// AppealSuccessRate is the share of appeals allowed or with sentence
// reduced, as a percentage of all recorded outcomes.
func (a *Analytics) AppealSuccessRate() float64 {
	outcomes := a.dismissed + a.allowed + a.reduced
	if outcomes == 0 {
		return 0
	}
	return float64(a.allowed+a.reduced) / float64(outcomes) * 100
}

// CorpusStats summarizes what the analytics layer has to work with.
type CorpusStats struct {
	TotalCases        int
	OffenceKeywords   int
	WithSentenceData  int
	AppealSuccessRate float64
}

// Stats reports corpus coverage.
func (a *Analytics) Stats() CorpusStats {
	return CorpusStats{
		TotalCases:        a.total,
		OffenceKeywords:   len(a.keywords),
		WithSentenceData:  len(a.ranges),
		AppealSuccessRate: a.AppealSuccessRate(),
	}
}

// Keywords lists every keyword seen in the corpus, sorted.
func (a *Analytics) Keywords() []string {
	out := make([]string, 0, len(a.keywords))
	for kw := range a.keywords {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}
