// Package cli implements the counsel CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel"
	"github.com/openlaw-hk/counsel/pkg/counsel/config"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/rules"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
	"github.com/openlaw-hk/counsel/pkg/counsel/store/memstore"
	"github.com/openlaw-hk/counsel/pkg/counsel/store/sqlite"
)

var (
	dbPath          string
	rulebasePath    string
	autoRulesPath   string
	lexiconPath     string
	stoplistPath    string
	riskPath        string
	legislationPath string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "counsel",
	Short: "Hong Kong criminal law advisor",
	Long: "Rule-based legal analysis for Hong Kong criminal law: fact extraction,\n" +
		"forward-chaining inference, precedent retrieval, and risk assessment.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite corpus path (default: in-memory with built-in cases)")
	RootCmd.PersistentFlags().StringVar(&rulebasePath, "rules", "", "YAML rulebase path (default: built-in rules)")
	RootCmd.PersistentFlags().StringVar(&autoRulesPath, "auto-rules", "", "YAML generated rules for the auto-matched tier")
	RootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "YAML fact lexicon path")
	RootCmd.PersistentFlags().StringVar(&stoplistPath, "stoplist", "", "YAML stopword list path")
	RootCmd.PersistentFlags().StringVar(&riskPath, "risk-tables", "", "YAML risk table overlay path")
	RootCmd.PersistentFlags().StringVarP(&legislationPath, "legislation", "L", "", "Preprocessed legislation database (JSON)")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func openStore(ctx context.Context) (store.Store, error) {
	if dbPath != "" {
		return sqlite.Open(ctx, dbPath)
	}
	st := memstore.New()
	for _, c := range store.DefaultCases() {
		if err := st.UpsertCase(ctx, c); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func loadLegislation() (*legislation.Database, error) {
	if legislationPath == "" {
		return nil, nil
	}
	return legislation.Load(legislationPath)
}

// newCounsel assembles the facade from the flag-configured parts.
func newCounsel(ctx context.Context) (*counsel.Counsel, error) {
	loader := config.Loader{
		RulebasePath: rulebasePath,
		LexiconPath:  lexiconPath,
		StoplistPath: stoplistPath,
		RiskPath:     riskPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}

	st, err := openStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	db, err := loadLegislation()
	if err != nil {
		return nil, fmt.Errorf("load legislation: %w", err)
	}

	var auto []rules.Rule
	if autoRulesPath != "" {
		base, err := config.LoadRulebase(autoRulesPath)
		if err != nil {
			return nil, fmt.Errorf("load auto rules: %w", err)
		}
		auto = base.Rules()
	}

	return counsel.New(ctx, counsel.Options{
		Store:       st,
		Base:        comp.Base,
		AutoRules:   auto,
		Extractor:   comp.Extractor,
		Legislation: db,
		RiskOptions: comp.RiskOptions,
	})
}
