// Package rules defines the legal rule and defense data model: conjunctive
// IF-THEN units with citation and penalty metadata, and the immutable Base
// that holds them for the lifetime of the process.
package rules

import "sort"

// Kind classifies what a rule's conclusion means. It replaces the older
// convention of inferring offence status from a "guilty_of_" fact prefix.
type Kind int

const (
	// KindIntermediate marks a rule whose conclusion only feeds other rules.
	KindIntermediate Kind = iota
	// KindOffence marks a rule whose conclusion establishes a criminal offence.
	KindOffence
	// KindDefenseTrigger marks a rule whose conclusion enables a defense check.
	KindDefenseTrigger
)

// String returns the YAML/serialization name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOffence:
		return "offence"
	case KindDefenseTrigger:
		return "defense_trigger"
	default:
		return "intermediate"
	}
}

// ParseKind converts a serialized kind name back to a Kind.
// Unknown names map to KindIntermediate.
func ParseKind(s string) Kind {
	switch s {
	case "offence", "offense":
		return KindOffence
	case "defense_trigger", "defence_trigger":
		return KindDefenseTrigger
	default:
		return KindIntermediate
	}
}

// FactSet is a working set of fact identifiers. Facts are opaque tokens
// compared by exact equality; there is no unification and no variables.
type FactSet map[string]struct{}

// NewFactSet builds a set from the given facts, dropping empty strings.
func NewFactSet(facts ...string) FactSet {
	s := make(FactSet, len(facts))
	for _, f := range facts {
		if f != "" {
			s[f] = struct{}{}
		}
	}
	return s
}

// Has reports whether the fact is in the set.
func (s FactSet) Has(fact string) bool {
	_, ok := s[fact]
	return ok
}

// Add inserts a fact. Empty facts are ignored.
func (s FactSet) Add(fact string) {
	if fact != "" {
		s[fact] = struct{}{}
	}
}

// All returns the facts in sorted order.
func (s FactSet) All() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Rule is an immutable IF-THEN unit: when every condition fact is present,
// the conclusion fact is established.
type Rule struct {
	ID          string
	Name        string
	Kind        Kind
	Conditions  []string
	Conclusion  string
	Citation    string // ordinance chapter and section, e.g. "Cap. 210, s. 2"
	Penalty     string
	Confidence  float64
	Explanation string
}

// Matches reports whether every condition is satisfied by the given facts.
// Pure conjunction: no negation, no disjunction, no counting.
func (r Rule) Matches(facts FactSet) bool {
	for _, c := range r.Conditions {
		if !facts.Has(c) {
			return false
		}
	}
	return true
}

// Defense is the Rule's counterpart for exculpation: when every condition is
// present its effect applies. A defense never adds facts to working memory.
type Defense struct {
	ID            string
	Name          string
	Conditions    []string
	Effect        string // e.g. "Complete defense"
	BurdenOfProof string
	LegalBasis    string // common law or statutory
	Explanation   string
}

// Applies reports whether every condition is satisfied by the given facts.
func (d Defense) Applies(facts FactSet) bool {
	for _, c := range d.Conditions {
		if !facts.Has(c) {
			return false
		}
	}
	return true
}
