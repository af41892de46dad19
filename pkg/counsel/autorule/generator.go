// Package autorule generates medium-confidence inference rules from
// legislation section text. Pattern matching over prohibition and penalty
// clauses turns a section into an executable rule; generated rules sit one
// confidence tier below the hand-written rulebase.
package autorule

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// GeneratedConfidence is assigned to every generated rule.
const GeneratedConfidence = 0.7

// maxConditions caps rule complexity; sections matching more keywords keep
// only the first conditions in mapping order.
const maxConditions = 5

// Generator turns legislation sections into rules.
type Generator struct {
	categories map[string]struct{}
}

// New creates a generator restricted to the given ordinance categories.
// With no categories, the default substantive-law set is used.
func New(categories ...string) *Generator {
	if len(categories) == 0 {
		categories = []string{"Criminal Law", "Public Health", "Environment", "Employment Law", "Property & Land"}
	}
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &Generator{categories: set}
}

// conditionMapping maps a keyword in section text to a canonical condition.
// Order matters: when a section exceeds maxConditions, earlier mappings win.
type conditionMapping struct {
	keyword   string
	condition string
}

var conditionMappings = []conditionMapping{
	{"steal", "appropriates_property"},
	{"theft", "appropriates_property"},
	{"dishonest", "acts_dishonestly"},
	{"without consent", "victim_does_not_consent"},
	{"assault", "applies_force"},
	{"attack", "applies_force"},
	{"bodily harm", "causes_bodily_harm"},
	{"kill", "causes_death"},
	{"murder", "causes_death"},
	{"drug", "possesses_dangerous_drugs"},
	{"trafficking", "intent_to_traffic"},
	{"damage", "damages_property"},
	{"destroy", "damages_property"},
	{"trespasser", "as_trespasser"},
	{"enter", "enters_building"},
	{"force", "uses_force"},
	{"threat", "makes_threat"},
	{"smoke", "smoking_activity"},
	{"litter", "disposes_of_litter"},
	{"spit", "spitting_in_public"},
	{"public place", "in_public_place"},
}

// offenceKeywords tags a generated conclusion with an offence type.
// Checked in order; first type with a keyword hit wins.
var offenceKeywords = []struct {
	offence  string
	keywords []string
}{
	{"murder", []string{"murder", "unlawful killing", "malice aforethought"}},
	{"robbery", []string{"robbery"}},
	{"burglary", []string{"burglary", "trespasser"}},
	{"theft", []string{"steal", "theft", "appropriate"}},
	{"fraud", []string{"fraud", "deception", "false representation"}},
	{"drugs", []string{"dangerous drug", "narcotic", "trafficking"}},
	{"assault", []string{"assault", "bodily harm", "violence"}},
	{"property_damage", []string{"damage", "destroy", "arson"}},
	{"public_order", []string{"riot", "unlawful assembly", "public order"}},
	{"regulatory_offence", []string{"smoking", "littering", "spitting", "noise", "nuisance"}},
}

var nonSubstantive = []string{
	"short title", "commencement", "interpretation", "definition",
	"application", "repeal", "amendment", "schedule", "transitional",
}

var (
	imprisonmentPattern = regexp.MustCompile(`imprisonment\s+for\s+(\d+)\s+year`)
	finePattern         = regexp.MustCompile(`fine\s+(?:of\s+|at\s+level\s+\d+\s+of\s+)?\$?([\d,]+)`)
	nonWordPattern      = regexp.MustCompile(`[^a-z0-9\s]`)
)

// FromDatabase generates rules for every eligible section of the database,
// sorted by rule ID for determinism.
func (g *Generator) FromDatabase(db *legislation.Database) []rules.Rule {
	var out []rules.Rule
	for _, ord := range db.Ordinances {
		out = append(out, g.FromOrdinance(ord)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FromOrdinance generates rules from one ordinance, skipping categories the
// generator is not configured for.
func (g *Generator) FromOrdinance(ord legislation.Ordinance) []rules.Rule {
	if _, ok := g.categories[ord.Category]; !ok {
		return nil
	}
	var out []rules.Rule
	for _, num := range sortedSectionNumbers(ord) {
		if r, ok := g.FromSection(ord, ord.Sections[num]); ok {
			out = append(out, r)
		}
	}
	return out
}

// FromSection attempts to generate a rule from one section. The second
// return is false when the section is non-substantive or yields no
// recognizable conditions.
func (g *Generator) FromSection(ord legislation.Ordinance, sec legislation.Section) (rules.Rule, bool) {
	text := strings.ToLower(sec.Text)
	title := strings.ToLower(sec.Title)

	if isNonSubstantive(title, text) {
		return rules.Rule{}, false
	}
	// Only prohibition-shaped sections become rules.
	if !strings.Contains(text, "guilty") && !strings.Contains(text, "offence") &&
		!(strings.Contains(text, "shall") && strings.Contains(text, "not")) {
		return rules.Rule{}, false
	}

	conditions := extractConditions(text, ord.Category)
	if len(conditions) == 0 {
		return rules.Rule{}, false
	}

	name := sec.Title
	if name == "" {
		name = fmt.Sprintf("%s s. %s", ord.Title, sec.Number)
	}

	return rules.Rule{
		ID:          ruleID(ord.Chapter, sec.Number),
		Name:        name,
		Kind:        rules.KindOffence,
		Conditions:  conditions,
		Conclusion:  conclusion(title, text),
		Citation:    legislation.Ref(ord.Chapter, sec.Number),
		Penalty:     extractPenalty(sec, text),
		Confidence:  GeneratedConfidence,
		Explanation: fmt.Sprintf("Generated from %s, %s: %s", ord.Title, legislation.Ref(ord.Chapter, sec.Number), sec.Title),
	}, true
}

func isNonSubstantive(title, text string) bool {
	for _, kw := range nonSubstantive {
		if strings.Contains(title, kw) {
			return true
		}
		if strings.Contains(text, kw) && len(text) < 200 {
			return true
		}
	}
	return false
}

func extractConditions(text, category string) []string {
	var conditions []string
	seen := make(map[string]struct{})
	for _, m := range conditionMappings {
		if len(conditions) == maxConditions {
			break
		}
		if !strings.Contains(text, m.keyword) {
			continue
		}
		if _, dup := seen[m.condition]; dup {
			continue
		}
		seen[m.condition] = struct{}{}
		conditions = append(conditions, m.condition)
	}
	// Criminal offences usually carry a mental element.
	if category == "Criminal Law" && len(conditions) > 0 && len(conditions) < maxConditions {
		if strings.Contains(text, "intent") || strings.Contains(text, "knowingly") || strings.Contains(text, "willfully") {
			if _, dup := seen["acts_with_intent"]; !dup {
				conditions = append(conditions, "acts_with_intent")
			}
		}
	}
	return conditions
}

func extractPenalty(sec legislation.Section, text string) string {
	if sec.Penalty != "" {
		return sec.Penalty
	}
	if m := imprisonmentPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("Imprisonment for %s years", m[1])
	}
	if strings.Contains(text, "life imprisonment") {
		return "Life imprisonment"
	}
	if m := finePattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("Fine of HK$%s", m[1])
	}
	if strings.Contains(text, "imprisonment") && strings.Contains(text, "fine") {
		return "Imprisonment and fine"
	}
	return "Penalty as specified in ordinance"
}

func conclusion(title, text string) string {
	if strings.Contains(text, "guilty") {
		for _, ok := range offenceKeywords {
			for _, kw := range ok.keywords {
				if strings.Contains(text, kw) {
					return "guilty_of_" + ok.offence
				}
			}
		}
	}
	clean := strings.TrimSpace(nonWordPattern.ReplaceAllString(title, ""))
	slug := strings.ReplaceAll(clean, " ", "_")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	if slug == "" {
		slug = "statutory_offence"
	}
	return "guilty_of_" + slug
}

func ruleID(chapter, section string) string {
	id := fmt.Sprintf("AUTO_CAP%s_%s", chapter, section)
	id = strings.ReplaceAll(id, " ", "_")
	return strings.ReplaceAll(id, ".", "_")
}

func sortedSectionNumbers(ord legislation.Ordinance) []string {
	nums := make([]string, 0, len(ord.Sections))
	for n := range ord.Sections {
		nums = append(nums, n)
	}
	sort.Strings(nums)
	return nums
}
