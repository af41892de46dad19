package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import-cases [file.json]",
		Short: "Import precedent cases into the corpus",
		Long: "Reads a JSON array of cases from the given file, or from stdin, and\n" +
			"upserts them into the case corpus.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					exitErr("open", err)
				}
				defer f.Close()
				in = f
			}

			var cases []store.Case
			if err := json.NewDecoder(in).Decode(&cases); err != nil {
				exitErr("decode cases", err)
			}

			st, err := openStore(cmd.Context())
			if err != nil {
				exitErr("open store", err)
			}
			defer st.Close()

			for _, c := range cases {
				if err := st.UpsertCase(cmd.Context(), c); err != nil {
					exitErr(fmt.Sprintf("upsert %s", c.ID), err)
				}
			}
			fmt.Printf("imported %d cases\n", len(cases))
		},
	}

	RootCmd.AddCommand(cmd)
}
