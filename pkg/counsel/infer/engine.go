// Package infer implements the forward-chaining inference engine. One Engine
// instance holds the working memory for one consultation: facts accumulate,
// ForwardChain runs the rulebase to a fixed point, and the accessors expose
// conclusions, applicable defenses, and the full reasoning chain.
//
// The engine is synchronous and owns its working memory exclusively.
// Concurrent consultations each construct their own Engine over the shared,
// read-only rules.Base.
package infer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// DefaultMaxIterations caps forward-chaining passes. A monotone conjunctive
// rulebase reaches its fixed point within len(rules) passes, so the cap is a
// safety valve for pathological rule sets, not an expected operating mode.
const DefaultMaxIterations = 100

// Engine is a forward-chaining inference engine over a shared rulebase.
type Engine struct {
	base          *rules.Base
	maxIterations int

	facts      rules.FactSet
	derived    map[string]struct{} // conclusions added during chaining
	fired      []rules.Rule
	firedIDs   map[string]struct{}
	conclusion []Conclusion
	defenses   []rules.Defense
	chain      []Step
	iterations int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxIterations overrides the forward-chaining pass cap.
// Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxIterations = n
		}
	}
}

// New creates an engine with empty working memory over the given base.
func New(base *rules.Base, opts ...Option) *Engine {
	e := &Engine{base: base, maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset clears the working memory for a new session. The rulebase and the
// iteration cap are retained.
func (e *Engine) Reset() {
	e.facts = make(rules.FactSet)
	e.derived = make(map[string]struct{})
	e.fired = nil
	e.firedIDs = make(map[string]struct{})
	e.conclusion = nil
	e.defenses = nil
	e.chain = nil
	e.iterations = 0
}

// AddFact asserts a single fact into working memory.
func (e *Engine) AddFact(fact string) {
	e.facts.Add(fact)
}

// AddFacts asserts multiple facts. Duplicates and empty strings are dropped.
func (e *Engine) AddFacts(facts []string) {
	for _, f := range facts {
		e.facts.Add(f)
	}
}

// Facts returns all current facts, sorted.
func (e *Engine) Facts() []string {
	return e.facts.All()
}

// Query reports whether a fact (input or derived) has been established.
func (e *Engine) Query(fact string) bool {
	return e.facts.Has(fact)
}

// Conclusion records one rule firing.
type Conclusion struct {
	Conclusion string
	Rule       rules.Rule
	Iteration  int
}

// StepType distinguishes reasoning-chain entries.
type StepType int

const (
	// StepRule records a rule firing during forward chaining.
	StepRule StepType = iota
	// StepDefense records a defense found applicable after chaining.
	StepDefense
)

// Step is one entry of the reasoning chain. For rule steps Conclusion and
// Citation are set; for defense steps Effect is set instead.
type Step struct {
	Number      int
	Type        StepType
	ID          string
	Name        string
	Conditions  []string
	Conclusion  string
	Effect      string
	Citation    string
	Explanation string
}

// ForwardChain repeatedly applies rules until a pass adds no new fact or the
// iteration cap is reached, then evaluates every defense against the final
// fact set. Each rule fires at most once per session; facts only grow, so
// the loop is a monotone fixed-point computation. Hitting the cap is not an
// error: the session keeps whatever was derived so far.
func (e *Engine) ForwardChain() []Conclusion {
	progress := true
	for progress && e.iterations < e.maxIterations {
		progress = false
		e.iterations++

		for _, rule := range e.base.Rules() {
			if _, done := e.firedIDs[rule.ID]; done {
				continue
			}
			if !rule.Matches(e.facts) {
				continue
			}

			e.firedIDs[rule.ID] = struct{}{}
			e.fired = append(e.fired, rule)

			if !e.facts.Has(rule.Conclusion) {
				e.facts.Add(rule.Conclusion)
				e.derived[rule.Conclusion] = struct{}{}
				progress = true
			}

			e.conclusion = append(e.conclusion, Conclusion{
				Conclusion: rule.Conclusion,
				Rule:       rule,
				Iteration:  e.iterations,
			})
			e.chain = append(e.chain, Step{
				Number:      len(e.chain) + 1,
				Type:        StepRule,
				ID:          rule.ID,
				Name:        rule.Name,
				Conditions:  rule.Conditions,
				Conclusion:  rule.Conclusion,
				Citation:    rule.Citation,
				Explanation: rule.Explanation,
			})
		}
	}

	e.checkDefenses()
	return e.conclusion
}

// checkDefenses evaluates every defense against the final fact set. Runs
// exactly once, after the fixed point; defenses never feed back into facts.
func (e *Engine) checkDefenses() {
	for _, d := range e.base.Defenses() {
		if !d.Applies(e.facts) {
			continue
		}
		e.defenses = append(e.defenses, d)
		e.chain = append(e.chain, Step{
			Number:      len(e.chain) + 1,
			Type:        StepDefense,
			ID:          d.ID,
			Name:        d.Name,
			Conditions:  d.Conditions,
			Effect:      d.Effect,
			Explanation: d.Explanation,
		})
	}
}

// Iterations returns the number of passes the last ForwardChain executed.
func (e *Engine) Iterations() int { return e.iterations }

// Conclusions returns every rule firing in order.
func (e *Engine) Conclusions() []Conclusion { return e.conclusion }

// FiredRules returns the rules fired this session, in firing order.
func (e *Engine) FiredRules() []rules.Rule { return e.fired }

// Chain returns the full reasoning chain.
func (e *Engine) Chain() []Step { return e.chain }

// Offence is a concluded criminal offence projected for consumers.
type Offence struct {
	Label    string
	RuleID   string
	RuleName string
	Citation string
	Penalty  string
}

// Offences returns the concluded offences: conclusions whose rule is tagged
// KindOffence. The tag replaces the legacy "guilty_of_" prefix convention.
func (e *Engine) Offences() []Offence {
	var out []Offence
	for _, c := range e.conclusion {
		if c.Rule.Kind != rules.KindOffence {
			continue
		}
		out = append(out, Offence{
			Label:    offenceLabel(c.Conclusion),
			RuleID:   c.Rule.ID,
			RuleName: c.Rule.Name,
			Citation: c.Rule.Citation,
			Penalty:  c.Rule.Penalty,
		})
	}
	return out
}

// Defenses returns the defenses found applicable, in rulebase order.
func (e *Engine) Defenses() []rules.Defense { return e.defenses }

// InputFacts returns the facts that were asserted by the caller rather than
// derived by a rule, sorted.
func (e *Engine) InputFacts() []string {
	var out []string
	for f := range e.facts {
		if _, ok := e.derived[f]; !ok {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// Summary is a compact statistics view of one session.
type Summary struct {
	TotalFacts     int
	RulesFired     int
	OffencesFound  int
	Offences       []string
	DefensesFound  int
	Defenses       []string
	ReasoningSteps int
}

// Summary returns session statistics for programmatic consumers.
func (e *Engine) Summary() Summary {
	offences := e.Offences()
	s := Summary{
		TotalFacts:     len(e.InputFacts()),
		RulesFired:     len(e.fired),
		OffencesFound:  len(offences),
		DefensesFound:  len(e.defenses),
		ReasoningSteps: len(e.chain),
	}
	for _, o := range offences {
		s.Offences = append(s.Offences, o.Label)
	}
	for _, d := range e.defenses {
		s.Defenses = append(s.Defenses, d.Name)
	}
	return s
}

// Explain renders the full reasoning as human-readable text: input facts,
// the numbered reasoning chain, concluded offences with citation and
// penalty, and applicable defenses with effect and burden of proof. The
// output is deterministic for a given session state.
func (e *Engine) Explain() string {
	var b strings.Builder

	b.WriteString("=== LEGAL ANALYSIS ===\n\n")

	b.WriteString("INPUT FACTS:\n")
	for _, f := range e.InputFacts() {
		fmt.Fprintf(&b, "  - %s\n", humanize(f))
	}
	b.WriteString("\n")

	b.WriteString("REASONING PROCESS:\n")
	for _, step := range e.chain {
		switch step.Type {
		case StepRule:
			fmt.Fprintf(&b, "\nStep %d: %s\n", step.Number, step.Name)
			fmt.Fprintf(&b, "  Reference: %s\n", step.Citation)
			b.WriteString("  Conditions satisfied:\n")
			for _, c := range step.Conditions {
				fmt.Fprintf(&b, "    * %s\n", humanize(c))
			}
			fmt.Fprintf(&b, "  Conclusion: %s\n", humanize(step.Conclusion))
			fmt.Fprintf(&b, "  Explanation: %s\n", step.Explanation)
		case StepDefense:
			fmt.Fprintf(&b, "\nStep %d: Potential Defense - %s\n", step.Number, step.Name)
			b.WriteString("  Conditions satisfied:\n")
			for _, c := range step.Conditions {
				fmt.Fprintf(&b, "    * %s\n", humanize(c))
			}
			fmt.Fprintf(&b, "  Effect: %s\n", step.Effect)
			fmt.Fprintf(&b, "  Explanation: %s\n", step.Explanation)
		}
	}

	b.WriteString("\n=== CONCLUSIONS ===\n\n")

	offences := e.Offences()
	if len(offences) > 0 {
		b.WriteString("OFFENCES ESTABLISHED:\n")
		for i, o := range offences {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, o.Label)
			fmt.Fprintf(&b, "   Legal basis: %s\n", o.Citation)
			fmt.Fprintf(&b, "   Maximum penalty: %s\n", o.Penalty)
		}
	} else {
		b.WriteString("No criminal offences established based on the facts provided.\n")
	}

	if len(e.defenses) > 0 {
		b.WriteString("\nPOTENTIAL DEFENSES:\n")
		for i, d := range e.defenses {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, d.Name)
			fmt.Fprintf(&b, "   Effect: %s\n", d.Effect)
			fmt.Fprintf(&b, "   Burden of proof: %s\n", d.BurdenOfProof)
			fmt.Fprintf(&b, "   Explanation: %s\n", d.Explanation)
		}
	} else {
		b.WriteString("\nNo defenses appear to be applicable.\n")
	}

	return b.String()
}

// Analyze is a convenience wrapper: fresh engine, assert facts, chain.
func Analyze(base *rules.Base, facts []string, opts ...Option) *Engine {
	e := New(base, opts...)
	e.AddFacts(facts)
	e.ForwardChain()
	return e
}

// offenceLabel turns a conclusion fact into a display label, e.g.
// "guilty_of_aggravated_burglary" becomes "Aggravated Burglary".
func offenceLabel(conclusion string) string {
	s := strings.TrimPrefix(conclusion, "guilty_of_")
	return titleWords(strings.ReplaceAll(s, "_", " "))
}

// humanize renders a fact token for display.
func humanize(fact string) string {
	return strings.ReplaceAll(fact, "_", " ")
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
