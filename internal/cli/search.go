package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel/report"
)

func init() {
	var (
		limit    int
		sections bool
	)

	cmd := &cobra.Command{
		Use:   "search query...",
		Short: "Search the case corpus or legislation",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			query := strings.Join(args, " ")

			svc, err := newCounsel(cmd.Context())
			if err != nil {
				exitErr("setup", err)
			}
			defer svc.Close()

			if sections {
				hits, loaded, err := svc.SearchSections(cmd.Context(), query, limit)
				if err != nil {
					exitErr("search", err)
				}
				if !loaded {
					exitErr("search", fmt.Errorf("no legislation database loaded, pass --legislation"))
				}
				for _, h := range hits {
					fmt.Printf("%.3f  %s  %s\n", h.Score, h.Ref, h.Title)
				}
				return
			}

			hits, err := svc.SearchCases(cmd.Context(), query, limit)
			if err != nil {
				exitErr("search", err)
			}
			for _, h := range hits {
				c := h.Case
				fmt.Printf("%.3f  %s\n", h.Score, report.FormatCitation(c.Name, c.Year, c.Court))
				if c.Outcome != "" {
					fmt.Printf("       %s", c.Outcome)
					if c.Sentence != "" {
						fmt.Printf(", %s", c.Sentence)
					}
					fmt.Println()
				}
			}
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum results")
	cmd.Flags().BoolVar(&sections, "sections", false, "search legislation sections instead of cases")

	RootCmd.AddCommand(cmd)
}
