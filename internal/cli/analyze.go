package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze fact...",
		Short: "Run inference over explicit facts",
		Long: "Runs the forward-chaining engine over the given facts and prints the\n" +
			"reasoning chain, offences, and applicable defenses.",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			svc, err := newCounsel(cmd.Context())
			if err != nil {
				exitErr("setup", err)
			}
			defer svc.Close()

			eng := svc.AnalyzeFacts(args)
			fmt.Println(eng.Explain())
		},
	}

	RootCmd.AddCommand(cmd)
}
