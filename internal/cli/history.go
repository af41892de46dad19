package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	var (
		limit int
		id    string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged consultations",
		Run: func(cmd *cobra.Command, args []string) {
			st, err := openStore(cmd.Context())
			if err != nil {
				exitErr("open store", err)
			}
			defer st.Close()

			if id != "" {
				c, err := st.GetConsultation(cmd.Context(), id)
				if err != nil {
					exitErr("lookup", err)
				}
				fmt.Println(c.Report)
				return
			}

			list, err := st.RecentConsultations(cmd.Context(), limit)
			if err != nil {
				exitErr("list consultations", err)
			}
			for _, c := range list {
				fmt.Printf("%s  %s  %s\n", c.ID, c.CreatedAt.Format("2006-01-02 15:04"), strings.Join(c.Offences, ", "))
			}
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum entries")
	cmd.Flags().StringVar(&id, "id", "", "print the full report for one consultation")

	RootCmd.AddCommand(cmd)
}
