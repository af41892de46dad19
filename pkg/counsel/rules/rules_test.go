package rules

import "testing"

func TestRuleMatches(t *testing.T) {
	r := Rule{
		ID:         "R1",
		Conditions: []string{"a", "b", "c"},
		Conclusion: "d",
	}

	tests := []struct {
		name  string
		facts []string
		want  bool
	}{
		{"all present", []string{"a", "b", "c"}, true},
		{"extra facts", []string{"a", "b", "c", "x", "y"}, true},
		{"one missing", []string{"a", "b"}, false},
		{"empty facts", nil, false},
		{"no overlap", []string{"x", "y", "z"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Matches(NewFactSet(tt.facts...)); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.facts, got, tt.want)
			}
		})
	}
}

func TestDefenseApplies(t *testing.T) {
	d := Defense{
		ID:         "D1",
		Conditions: []string{"defendant_faced_unlawful_force", "force_used_was_reasonable"},
	}

	facts := NewFactSet("defendant_faced_unlawful_force", "force_used_was_reasonable", "unrelated")
	if !d.Applies(facts) {
		t.Error("Expected defense to apply when all conditions present")
	}

	if d.Applies(NewFactSet("defendant_faced_unlawful_force")) {
		t.Error("Expected defense not to apply with a missing condition")
	}
}

func TestFactSet(t *testing.T) {
	s := NewFactSet("b", "a", "", "a")

	if len(s) != 2 {
		t.Errorf("Expected 2 facts (empty and duplicate dropped), got %d", len(s))
	}

	s.Add("c")
	s.Add("")
	if !s.Has("c") {
		t.Error("Expected c after Add")
	}
	if s.Has("") {
		t.Error("Empty fact should never be stored")
	}

	all := s.All()
	want := []string{"a", "b", "c"}
	if len(all) != len(want) {
		t.Fatalf("All() = %v, want %v", all, want)
	}
	for i, f := range want {
		if all[i] != f {
			t.Errorf("All()[%d] = %q, want %q (sorted order)", i, all[i], f)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"offence", KindOffence},
		{"offense", KindOffence},
		{"intermediate", KindIntermediate},
		{"defense_trigger", KindDefenseTrigger},
		{"", KindIntermediate},
		{"nonsense", KindIntermediate},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Round trip through String for the named kinds.
	for _, k := range []Kind{KindOffence, KindIntermediate, KindDefenseTrigger} {
		if got := ParseKind(k.String()); got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestBaseLookupAndOrder(t *testing.T) {
	b := DefaultBase()

	if len(b.Rules()) == 0 {
		t.Fatal("Default base has no rules")
	}

	r, ok := b.Rule("THEFT_001")
	if !ok {
		t.Fatal("THEFT_001 not found")
	}
	if r.Conclusion != "guilty_of_theft" {
		t.Errorf("THEFT_001 conclusion = %q", r.Conclusion)
	}
	if r.Kind != KindOffence {
		t.Errorf("THEFT_001 kind = %v, want offence", r.Kind)
	}

	// Robbery must come after theft so the default base chains in load order.
	var theftIdx, robberyIdx int
	for i, rule := range b.Rules() {
		switch rule.ID {
		case "THEFT_001":
			theftIdx = i
		case "THEFT_002":
			robberyIdx = i
		}
	}
	if robberyIdx < theftIdx {
		t.Error("Expected robbery rule after basic theft in load order")
	}
}

func TestBaseWithRules(t *testing.T) {
	b := NewBase([]Rule{{ID: "R1", Conditions: []string{"a"}, Conclusion: "b"}}, nil)
	extra := Rule{ID: "AUTO_1", Conditions: []string{"b"}, Conclusion: "c", Confidence: 0.7}

	merged := b.WithRules([]Rule{extra})

	if len(b.Rules()) != 1 {
		t.Error("WithRules must not mutate the original base")
	}
	if len(merged.Rules()) != 2 {
		t.Fatalf("Expected 2 rules in merged base, got %d", len(merged.Rules()))
	}
	if merged.Rules()[1].ID != "AUTO_1" {
		t.Error("Extra rules must append after existing ones")
	}
	if _, ok := merged.Rule("AUTO_1"); !ok {
		t.Error("Merged base must index extra rules by ID")
	}
}

func TestBaseValidate(t *testing.T) {
	b := NewBase([]Rule{
		{ID: "OK", Conditions: []string{"a"}, Conclusion: "b"},
		{ID: "EMPTY", Conditions: nil, Conclusion: "x"},
		{ID: "SELF", Conditions: []string{"y", "z"}, Conclusion: "y"},
		{ID: "OK", Conditions: []string{"c"}, Conclusion: "d"},
	}, []Defense{
		{ID: "DEF_EMPTY", Conditions: nil},
	})

	problems := b.Validate()
	if len(problems) != 4 {
		t.Fatalf("Expected 4 problems, got %d: %v", len(problems), problems)
	}

	byID := make(map[string]string)
	for _, p := range problems {
		byID[p.RuleID] = p.Reason
	}
	if byID["EMPTY"] != "empty conditions" {
		t.Errorf("EMPTY: got %q", byID["EMPTY"])
	}
	if byID["SELF"] != "conclusion appears in own conditions" {
		t.Errorf("SELF: got %q", byID["SELF"])
	}
	if byID["OK"] != "duplicate rule id" {
		t.Errorf("OK: got %q", byID["OK"])
	}
	if byID["DEF_EMPTY"] != "empty conditions" {
		t.Errorf("DEF_EMPTY: got %q", byID["DEF_EMPTY"])
	}
}

func TestDefaultBaseIsClean(t *testing.T) {
	if problems := DefaultBase().Validate(); len(problems) != 0 {
		t.Errorf("Default base has validation problems: %v", problems)
	}
}
