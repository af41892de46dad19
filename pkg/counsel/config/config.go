// Package config loads the YAML configuration files: the rulebase, the
// fact lexicon, the stopword list, and the risk tables. Every loader
// has a built-in default so a bare deployment works without any file.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openlaw-hk/counsel/pkg/counsel/extract"
	"github.com/openlaw-hk/counsel/pkg/counsel/risk"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// ruleYAML mirrors the rulebase document schema, the same layout the
// autorule exporter writes.
type ruleYAML struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Conditions  []string `yaml:"conditions"`
	Conclusion  string   `yaml:"conclusion"`
	Citation    string   `yaml:"citation,omitempty"`
	Penalty     string   `yaml:"penalty,omitempty"`
	Confidence  float64  `yaml:"confidence,omitempty"`
	Explanation string   `yaml:"explanation,omitempty"`
}

type defenseYAML struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Conditions    []string `yaml:"conditions"`
	Effect        string   `yaml:"effect"`
	BurdenOfProof string   `yaml:"burden_of_proof,omitempty"`
	LegalBasis    string   `yaml:"legal_basis,omitempty"`
	Explanation   string   `yaml:"explanation,omitempty"`
}

type rulebaseDoc struct {
	Rules    []ruleYAML    `yaml:"rules"`
	Defenses []defenseYAML `yaml:"defenses"`
}

// DecodeRulebase reads a YAML rulebase document.
func DecodeRulebase(r io.Reader) (*rules.Base, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc rulebaseDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rulebase: %w", err)
	}

	rs := make([]rules.Rule, 0, len(doc.Rules))
	for _, y := range doc.Rules {
		rs = append(rs, rules.Rule{
			ID:          y.ID,
			Name:        y.Name,
			Kind:        rules.ParseKind(y.Kind),
			Conditions:  y.Conditions,
			Conclusion:  y.Conclusion,
			Citation:    y.Citation,
			Penalty:     y.Penalty,
			Confidence:  y.Confidence,
			Explanation: y.Explanation,
		})
	}
	ds := make([]rules.Defense, 0, len(doc.Defenses))
	for _, d := range doc.Defenses {
		ds = append(ds, rules.Defense{
			ID:            d.ID,
			Name:          d.Name,
			Conditions:    d.Conditions,
			Effect:        d.Effect,
			BurdenOfProof: d.BurdenOfProof,
			LegalBasis:    d.LegalBasis,
			Explanation:   d.Explanation,
		})
	}
	return rules.NewBase(rs, ds), nil
}

// LoadRulebase reads the rulebase from a YAML file.
func LoadRulebase(path string) (*rules.Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRulebase(f)
}

// lexiconDoc mirrors the lexicon YAML layout.
type lexiconDoc struct {
	FactTriggers     map[string][]string `yaml:"fact_triggers"`
	CategoryKeywords map[string][]string `yaml:"category_keywords"`
	Issues           map[string][]string `yaml:"issues"`
}

// LoadLexicon reads a fact lexicon from a YAML file.
func LoadLexicon(path string) (*extract.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc lexiconDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	return &extract.Lexicon{
		FactTriggers:     doc.FactTriggers,
		CategoryKeywords: doc.CategoryKeywords,
		Issues:           doc.Issues,
	}, nil
}

// Stoplist is the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist reads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist: %w", err)
	}
	return &sl, nil
}

// penaltyYAML mirrors one statutory penalty entry.
type penaltyYAML struct {
	MaxMonths   int    `yaml:"max_months"`
	TypicalLow  int    `yaml:"typical_low"`
	TypicalHigh int    `yaml:"typical_high"`
	FineRange   string `yaml:"fine_range,omitempty"`
	FineOnly    bool   `yaml:"fine_only,omitempty"`
}

// riskDoc mirrors the risk tables YAML layout.
type riskDoc struct {
	ProsecutionRates   map[string]int         `yaml:"prosecution_rates"`
	StatutoryPenalties map[string]penaltyYAML `yaml:"statutory_penalties"`
}

// LoadRiskTables reads risk table overlays from a YAML file.
func LoadRiskTables(path string) ([]risk.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc riskDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse risk tables: %w", err)
	}

	var opts []risk.Option
	if len(doc.ProsecutionRates) > 0 {
		opts = append(opts, risk.WithProsecutionRates(doc.ProsecutionRates))
	}
	if len(doc.StatutoryPenalties) > 0 {
		penalties := make(map[string]risk.StatutoryPenalty, len(doc.StatutoryPenalties))
		for k, p := range doc.StatutoryPenalties {
			penalties[k] = risk.StatutoryPenalty{
				MaxMonths:   p.MaxMonths,
				TypicalLow:  p.TypicalLow,
				TypicalHigh: p.TypicalHigh,
				FineRange:   p.FineRange,
				FineOnly:    p.FineOnly,
			}
		}
		opts = append(opts, risk.WithStatutoryPenalties(penalties))
	}
	return opts, nil
}
