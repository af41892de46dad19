package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel/report"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func init() {
	var (
		chapter string
		section string
		outcome string
		keyword string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "cases [id]",
		Short: "Browse the precedent corpus",
		Long: "Lists cases from the corpus, filtered by ordinance reference, outcome,\n" +
			"or keyword. With an id argument, prints that one case in full.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			st, err := openStore(cmd.Context())
			if err != nil {
				exitErr("open store", err)
			}
			defer st.Close()

			if len(args) == 1 {
				c, err := st.GetCase(cmd.Context(), args[0])
				if err != nil {
					exitErr("lookup", err)
				}
				printCase(c)
				return
			}

			var list []store.Case
			switch {
			case chapter != "":
				list, err = st.CasesByOrdinance(cmd.Context(), chapter, section)
			case outcome != "":
				list, err = st.CasesByOutcome(cmd.Context(), outcome)
			case keyword != "":
				list, err = st.SearchCases(cmd.Context(), keyword, limit)
			default:
				list, err = st.ListCases(cmd.Context())
			}
			if err != nil {
				exitErr("list cases", err)
			}

			for _, c := range list {
				fmt.Printf("%-12s %s\n", c.ID, report.FormatCitation(c.Name, c.Year, c.Court))
			}
		},
	}

	cmd.Flags().StringVar(&chapter, "chapter", "", "filter by ordinance chapter, e.g. 210")
	cmd.Flags().StringVar(&section, "section", "", "filter by section within --chapter")
	cmd.Flags().StringVar(&outcome, "outcome", "", "filter by outcome, e.g. Guilty")
	cmd.Flags().StringVar(&keyword, "keyword", "", "keyword search over case text")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum results for --keyword")

	RootCmd.AddCommand(cmd)
}

func printCase(c store.Case) {
	fmt.Println(report.FormatCitation(c.Name, c.Year, c.Court))
	fmt.Printf("Outcome: %s", c.Outcome)
	if c.Sentence != "" {
		fmt.Printf(" (%s)", c.Sentence)
	}
	fmt.Println()
	if len(c.OrdinanceRefs) > 0 {
		fmt.Printf("Ordinances: %v\n", c.OrdinanceRefs)
	}
	fmt.Printf("\n%s\n", c.Facts)
	for _, p := range c.Principles {
		fmt.Printf("  - %s\n", p)
	}
}
