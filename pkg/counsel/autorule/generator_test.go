package autorule

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

func theftOrdinance() legislation.Ordinance {
	return legislation.Ordinance{
		Chapter:  "210",
		Title:    "Theft Ordinance",
		Category: "Criminal Law",
		Sections: map[string]legislation.Section{
			"1": {Number: "1", Title: "Short title",
				Text: "This Ordinance may be cited as the Theft Ordinance."},
			"9": {Number: "9", Title: "Theft",
				Text: "A person who commits theft is guilty of an offence and is liable to imprisonment for 10 years. A person steals dishonestly with intent."},
		},
	}
}

func TestFromSection(t *testing.T) {
	g := New()
	ord := theftOrdinance()

	r, ok := g.FromSection(ord, ord.Sections["9"])
	if !ok {
		t.Fatal("Expected a rule from the theft section")
	}

	if r.ID != "AUTO_CAP210_9" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.Kind != rules.KindOffence {
		t.Errorf("Kind = %v, want offence", r.Kind)
	}
	if r.Confidence != GeneratedConfidence {
		t.Errorf("Confidence = %v, want %v", r.Confidence, GeneratedConfidence)
	}
	if r.Conclusion != "guilty_of_theft" {
		t.Errorf("Conclusion = %q", r.Conclusion)
	}
	if r.Citation != "Cap. 210, s. 9" {
		t.Errorf("Citation = %q", r.Citation)
	}
	if r.Penalty != "Imprisonment for 10 years" {
		t.Errorf("Penalty = %q", r.Penalty)
	}

	wantConditions := map[string]bool{
		"appropriates_property": false,
		"acts_dishonestly":      false,
		"acts_with_intent":      false,
	}
	for _, c := range r.Conditions {
		if _, ok := wantConditions[c]; ok {
			wantConditions[c] = true
		}
	}
	for c, found := range wantConditions {
		if !found {
			t.Errorf("Missing condition %q in %v", c, r.Conditions)
		}
	}
}

func TestNonSubstantiveSectionSkipped(t *testing.T) {
	g := New()
	ord := theftOrdinance()

	if _, ok := g.FromSection(ord, ord.Sections["1"]); ok {
		t.Error("Short-title section must not produce a rule")
	}
}

func TestSectionWithoutProhibitionSkipped(t *testing.T) {
	g := New()
	sec := legislation.Section{Number: "3", Title: "Savings",
		Text: "Nothing in this Ordinance affects any other enactment concerning the matters herein."}

	if _, ok := g.FromSection(theftOrdinance(), sec); ok {
		t.Error("Non-prohibition section must not produce a rule")
	}
}

func TestCategoryFilter(t *testing.T) {
	g := New("Criminal Law")
	ord := theftOrdinance()
	ord.Category = "Tax & Revenue"

	if got := g.FromOrdinance(ord); len(got) != 0 {
		t.Errorf("Out-of-scope category produced %d rules", len(got))
	}
}

func TestConditionCap(t *testing.T) {
	g := New()
	sec := legislation.Section{Number: "99", Title: "Compound offence",
		Text: "A person is guilty of an offence who steals, acts dishonestly, commits assault causing bodily harm, kills, traffics in a dangerous drug, damages property, and enters as trespasser using force or threat."}

	r, ok := g.FromSection(theftOrdinance(), sec)
	if !ok {
		t.Fatal("Expected a rule")
	}
	if len(r.Conditions) > maxConditions {
		t.Errorf("Conditions = %d, cap is %d", len(r.Conditions), maxConditions)
	}
}

func TestConclusionFallsBackToTitle(t *testing.T) {
	g := New()
	sec := legislation.Section{Number: "12", Title: "Obstruction of waterworks!",
		Text: "A person shall not obstruct any waterworks by force and commits an offence if he does so."}

	r, ok := g.FromSection(theftOrdinance(), sec)
	if !ok {
		t.Fatal("Expected a rule")
	}
	if r.Conclusion != "guilty_of_obstruction_of_waterworks" {
		t.Errorf("Conclusion = %q", r.Conclusion)
	}
	if strings.ContainsAny(r.Conclusion, "! ") {
		t.Errorf("Conclusion %q not slugified", r.Conclusion)
	}
}

func TestFromDatabaseDeterministicOrder(t *testing.T) {
	g := New()
	db := &legislation.Database{Ordinances: map[string]legislation.Ordinance{
		"cap_210": theftOrdinance(),
	}}

	first := g.FromDatabase(db)
	second := g.FromDatabase(db)
	if len(first) == 0 {
		t.Fatal("Expected generated rules")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("Rule order differs at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	g := New()
	ord := theftOrdinance()
	r, ok := g.FromSection(ord, ord.Sections["9"])
	if !ok {
		t.Fatal("Expected a rule")
	}

	var buf bytes.Buffer
	if err := Export(&buf, []rules.Rule{r}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var doc struct {
		GeneratedAt string `yaml:"generated_at"`
		Rules       []struct {
			ID         string   `yaml:"id"`
			Kind       string   `yaml:"kind"`
			Conditions []string `yaml:"conditions"`
			Conclusion string   `yaml:"conclusion"`
			Confidence float64  `yaml:"confidence"`
		} `yaml:"rules"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(doc.Rules) != 1 || doc.Rules[0].ID != "AUTO_CAP210_9" {
		t.Fatalf("Exported doc = %+v", doc)
	}
	if doc.Rules[0].Kind != "offence" {
		t.Errorf("Kind = %q, want offence", doc.Rules[0].Kind)
	}
	if doc.GeneratedAt == "" {
		t.Error("generated_at missing")
	}
}
