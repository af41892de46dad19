package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel"
)

func init() {
	var facts []string

	cmd := &cobra.Command{
		Use:   "consult [situation text]",
		Short: "Run a full consultation and print the report",
		Long: "Reads the client's situation from the arguments, or from stdin when no\n" +
			"arguments are given, and prints the rendered consultation report.",
		Run: func(cmd *cobra.Command, args []string) {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					exitErr("read stdin", err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" && len(facts) == 0 {
				exitErr("consult", fmt.Errorf("no situation text or facts given"))
			}

			svc, err := newCounsel(cmd.Context())
			if err != nil {
				exitErr("setup", err)
			}
			defer svc.Close()

			res, err := svc.Consult(cmd.Context(), counsel.Request{Text: text, Facts: facts})
			if err != nil {
				exitErr("consult", err)
			}
			fmt.Println(res.Report.Render())
		},
	}

	cmd.Flags().StringSliceVarP(&facts, "fact", "f", nil, "supplementary established fact (repeatable)")

	RootCmd.AddCommand(cmd)
}
