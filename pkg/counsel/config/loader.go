package config

import (
	"fmt"

	"github.com/openlaw-hk/counsel/pkg/counsel/extract"
	"github.com/openlaw-hk/counsel/pkg/counsel/risk"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
)

// Loader reads all configuration files and constructs components.
// Empty paths fall back to the built-in defaults.
type Loader struct {
	RulebasePath string
	LexiconPath  string
	StoplistPath string
	RiskPath     string
}

// Components holds the constructed configuration components.
type Components struct {
	Base        *rules.Base
	Extractor   *extract.Extractor
	RiskOptions []risk.Option
}

// Load reads every configured file and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.RulebasePath != "" {
		base, err := LoadRulebase(l.RulebasePath)
		if err != nil {
			return nil, fmt.Errorf("load rulebase: %w", err)
		}
		comp.Base = base
	} else {
		comp.Base = rules.DefaultBase()
	}

	var lex *extract.Lexicon
	if l.LexiconPath != "" {
		loaded, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Extractor = extract.NewWithStopwords(lex, sl.Terms)
	} else {
		comp.Extractor = extract.New(lex)
	}

	if l.RiskPath != "" {
		opts, err := LoadRiskTables(l.RiskPath)
		if err != nil {
			return nil, fmt.Errorf("load risk tables: %w", err)
		}
		comp.RiskOptions = opts
	}

	return comp, nil
}
