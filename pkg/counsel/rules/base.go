package rules

import "fmt"

// Base holds the ordered rule and defense collections for one process.
// It is loaded once, shared read-only across sessions, and never mutated;
// WithRules returns a new Base rather than changing an existing one.
type Base struct {
	rules    []Rule
	defenses []Defense
	byID     map[string]Rule
}

// NewBase constructs a Base. Rule order is preserved; it determines the
// iteration numbers recorded during forward chaining but not the final
// fact set.
func NewBase(rs []Rule, ds []Defense) *Base {
	b := &Base{
		rules:    make([]Rule, len(rs)),
		defenses: make([]Defense, len(ds)),
		byID:     make(map[string]Rule, len(rs)),
	}
	copy(b.rules, rs)
	copy(b.defenses, ds)
	for _, r := range b.rules {
		b.byID[r.ID] = r
	}
	return b
}

// Rules returns the rule list in load order. Callers must not modify it.
func (b *Base) Rules() []Rule { return b.rules }

// Defenses returns the defense list in load order. Callers must not modify it.
func (b *Base) Defenses() []Defense { return b.defenses }

// Rule looks up a rule by ID.
func (b *Base) Rule(id string) (Rule, bool) {
	r, ok := b.byID[id]
	return r, ok
}

// WithRules returns a new Base with extra rules appended after the existing
// ones. Used to mix auto-generated rules into a manual rulebase.
func (b *Base) WithRules(extra []Rule) *Base {
	merged := make([]Rule, 0, len(b.rules)+len(extra))
	merged = append(merged, b.rules...)
	merged = append(merged, extra...)
	return NewBase(merged, b.defenses)
}

// Problem describes a defect found by Validate.
type Problem struct {
	RuleID string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.RuleID, p.Reason)
}

// Validate flags malformed records: rules with no conditions, rules whose
// conclusion duplicates one of their own conditions, duplicate IDs, and
// defenses with no conditions. Such records are not rejected, since a rule
// with an unreachable condition is simply inert, but flagging them at load time
// surfaces authoring mistakes early.
func (b *Base) Validate() []Problem {
	var problems []Problem
	seen := make(map[string]struct{}, len(b.rules))
	for _, r := range b.rules {
		if _, dup := seen[r.ID]; dup {
			problems = append(problems, Problem{RuleID: r.ID, Reason: "duplicate rule id"})
		}
		seen[r.ID] = struct{}{}
		if len(r.Conditions) == 0 {
			problems = append(problems, Problem{RuleID: r.ID, Reason: "empty conditions"})
		}
		if r.Conclusion == "" {
			problems = append(problems, Problem{RuleID: r.ID, Reason: "empty conclusion"})
		}
		for _, c := range r.Conditions {
			if c == r.Conclusion {
				problems = append(problems, Problem{RuleID: r.ID, Reason: "conclusion appears in own conditions"})
				break
			}
		}
	}
	for _, d := range b.defenses {
		if len(d.Conditions) == 0 {
			problems = append(problems, Problem{RuleID: d.ID, Reason: "empty conditions"})
		}
	}
	return problems
}
