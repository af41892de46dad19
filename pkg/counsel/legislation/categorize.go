package legislation

import "strings"

// categoryRule defines the chapters and title keywords of one category.
type categoryRule struct {
	name     string
	chapters []string
	keywords []string
}

// Category rules are checked in order; chapter matches beat keyword matches.
var categoryRules = []categoryRule{
	{
		name:     "Criminal Law",
		chapters: []string{"200", "201", "210", "221", "228", "245", "374"},
		keywords: []string{"crime", "offence", "punishment", "criminal", "theft", "assault", "drug"},
	},
	{
		name:     "Civil Law",
		chapters: []string{"26", "29", "35", "347"},
		keywords: []string{"contract", "tort", "negligence", "sale of goods", "damages"},
	},
	{
		name:     "Employment Law",
		chapters: []string{"57", "282", "608"},
		keywords: []string{"employment", "labour", "employee", "employer", "wages", "termination"},
	},
	{
		name:     "Property & Land",
		chapters: []string{"7", "28", "123", "124"},
		keywords: []string{"land", "property", "landlord", "tenant", "lease", "conveyancing"},
	},
	{
		name:     "Commercial & Company",
		chapters: []string{"32", "333", "571", "622"},
		keywords: []string{"company", "business", "commercial", "securities", "banking"},
	},
	{
		name:     "Family Law",
		chapters: []string{"179", "181", "192"},
		keywords: []string{"marriage", "divorce", "matrimonial", "custody"},
	},
	{
		name:     "Immigration",
		chapters: []string{"115"},
		keywords: []string{"immigration", "deportation", "visa"},
	},
	{
		name:     "Tax & Revenue",
		chapters: []string{"112", "117"},
		keywords: []string{"tax", "revenue", "stamp duty", "inland revenue"},
	},
	{
		name:     "Intellectual Property",
		chapters: []string{"528", "559"},
		keywords: []string{"copyright", "trademark", "patent", "intellectual property"},
	},
}

// Categorize assigns a category to an ordinance from its chapter number and
// title. Unmatched ordinances fall into "Other".
func Categorize(chapter, title string) string {
	for _, rule := range categoryRules {
		for _, c := range rule.chapters {
			if c == chapter {
				return rule.name
			}
		}
	}
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name
			}
		}
	}
	return "Other"
}

// Categories returns all known category names in rule order, plus "Other".
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.name)
	}
	return append(out, "Other")
}
