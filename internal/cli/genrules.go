package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel/autorule"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
)

func init() {
	var (
		out        string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "gen-rules",
		Short: "Generate candidate rules from the legislation database",
		Long: "Scans the loaded ordinance database for offence-creating sections and\n" +
			"writes the generated rules as YAML, for review before use with --rules.",
		Run: func(cmd *cobra.Command, args []string) {
			if legislationPath == "" {
				exitErr("gen-rules", fmt.Errorf("no legislation database loaded, pass --legislation"))
			}
			db, err := legislation.Load(legislationPath)
			if err != nil {
				exitErr("load legislation", err)
			}

			rs := autorule.New(categories...).FromDatabase(db)
			if out == "" {
				if err := autorule.Export(os.Stdout, rs); err != nil {
					exitErr("export", err)
				}
				return
			}
			if err := autorule.ExportFile(out, rs); err != nil {
				exitErr("export", err)
			}
			fmt.Printf("wrote %d rules to %s\n", len(rs), out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "restrict to these legislation categories")

	RootCmd.AddCommand(cmd)
}
