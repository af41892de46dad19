// Package report assembles consultation reports: the engine's
// reasoning, comparable precedent, risk figures, and practical advice,
// stamped with a ULID for the consultation log.
package report

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/openlaw-hk/counsel/pkg/counsel/infer"
	"github.com/openlaw-hk/counsel/pkg/counsel/retrieval"
	"github.com/openlaw-hk/counsel/pkg/counsel/risk"
)

// Disclaimer is appended to every report.
const Disclaimer = `IMPORTANT DISCLAIMER:
This system provides general information about Hong Kong criminal law
based on legislative provisions and case precedents. It is NOT a
substitute for professional legal advice. For specific legal issues,
you should:

1. Consult a qualified Hong Kong solicitor or barrister
2. Contact the Duty Lawyer Service (Tel: 2537 7677)
3. Visit the Legal Aid Department if eligible

The analysis provided is based on the facts as presented and may change
if additional information becomes available.`

// Input is everything a consultation produced.
type Input struct {
	Query        string
	Facts        []string
	Explanation  string
	Summary      infer.Summary
	SimilarCases []retrieval.Hit
	Risk         *risk.Assessment
}

// Report is one finished consultation report.
type Report struct {
	ID           string
	CreatedAt    time.Time
	Query        string
	Facts        []string
	Explanation  string
	Summary      infer.Summary
	SimilarCases []retrieval.Hit
	Risk         *risk.Assessment
	Advice       []string
}

// Builder stamps reports with monotonic ULIDs. Safe for concurrent use:
// the entropy source is stateful and shared across Build calls.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Build assembles a report from the consultation output.
func (b *Builder) Build(in Input) Report {
	b.mu.Lock()
	id := ulid.MustNew(ulid.Now(), b.entropy).String()
	b.mu.Unlock()

	r := Report{
		ID:           id,
		CreatedAt:    b.now().UTC(),
		Query:        in.Query,
		Facts:        in.Facts,
		Explanation:  in.Explanation,
		Summary:      in.Summary,
		SimilarCases: in.SimilarCases,
		Risk:         in.Risk,
		Advice:       practicalAdvice(in),
	}
	return r
}

// practicalAdvice collects the actionable points for the client.
func practicalAdvice(in Input) []string {
	var advice []string
	if in.Risk != nil {
		advice = append(advice, in.Risk.Severity.Advice...)
	}
	if in.Summary.DefensesFound > 0 {
		advice = append(advice, "Gather evidence supporting the potential defense as early as possible")
	}
	if in.Summary.OffencesFound > 0 {
		advice = append(advice, "Do not discuss the matter publicly or on social media")
	}
	if len(advice) == 0 {
		advice = append(advice, "No offence was established on these facts; keep records of the incident in case the position changes")
	}
	return advice
}

// Render formats the report as plain text.
func (r Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "CONSULTATION REPORT %s\n", r.ID)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.CreatedAt.Format(time.RFC3339))

	if r.Query != "" {
		fmt.Fprintf(&b, "QUERY:\n%s\n\n", r.Query)
	}

	b.WriteString(r.Explanation)
	b.WriteString("\n")

	if len(r.SimilarCases) > 0 {
		b.WriteString("=== COMPARABLE CASES ===\n\n")
		for i, hit := range r.SimilarCases {
			c := hit.Case
			fmt.Fprintf(&b, "%d. %s (score %.2f)\n", i+1, FormatCitation(c.Name, c.Year, c.Court), hit.Score)
			if c.Outcome != "" {
				fmt.Fprintf(&b, "   Outcome: %s", c.Outcome)
				if c.Sentence != "" {
					fmt.Fprintf(&b, " | Sentence: %s", c.Sentence)
				}
				b.WriteString("\n")
			}
			for _, p := range c.Principles {
				fmt.Fprintf(&b, "   Principle: %s\n", p)
			}
		}
		b.WriteString("\n")
	}

	if r.Risk != nil {
		b.WriteString("=== RISK ASSESSMENT ===\n\n")
		fmt.Fprintf(&b, "Overall risk: %s (%d/100)\n", r.Risk.Overall.Level, r.Risk.Overall.Score)
		fmt.Fprintf(&b, "Prosecution likelihood: %d%% (%s)\n", r.Risk.Prosecution.Likelihood, r.Risk.Prosecution.Category)
		for _, adj := range r.Risk.Prosecution.Adjustments {
			fmt.Fprintf(&b, "  %s %s\n", adj.Delta, adj.Reason)
		}
		s := r.Risk.Sentence
		if s.FineOnly {
			fmt.Fprintf(&b, "Expected penalty: fine of HK$%s\n", s.FineRange)
		} else {
			fmt.Fprintf(&b, "Expected sentence: %s to %s (typically %s)\n",
				risk.FormatMonths(s.LowMonths), risk.FormatMonths(s.HighMonths), risk.FormatMonths(s.TypicalMonths))
		}
		fmt.Fprintf(&b, "Basis: %s\n", s.Basis)
		fmt.Fprintf(&b, "Conviction likelihood if prosecuted: %d%%\n", r.Risk.Outcomes.ConvictionLikelihood)
		fmt.Fprintf(&b, "Custodial sentence likelihood: %d%%\n\n", r.Risk.Outcomes.CustodialSentence)
	}

	if len(r.Advice) > 0 {
		b.WriteString("=== PRACTICAL ADVICE ===\n\n")
		for _, a := range r.Advice {
			fmt.Fprintf(&b, "- %s\n", a)
		}
		b.WriteString("\n")
	}

	b.WriteString(Disclaimer)
	b.WriteString("\n")
	return b.String()
}

// FormatCitation renders a case citation, e.g.
// "HKSAR v. Chan Tai Man (2019) District Court".
func FormatCitation(name string, year int, court string) string {
	return fmt.Sprintf("%s (%d) %s", name, year, court)
}
