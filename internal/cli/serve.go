package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openlaw-hk/counsel/internal/httpapi"
)

func init() {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			log, err := zap.NewProduction()
			if err != nil {
				exitErr("logger", err)
			}
			defer log.Sync()

			svc, err := newCounsel(cmd.Context())
			if err != nil {
				exitErr("setup", err)
			}
			defer svc.Close()

			srv := httpapi.NewServer(svc, log)
			if err := srv.Run(addr); err != nil {
				exitErr("serve", err)
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8710", "listen address")

	RootCmd.AddCommand(cmd)
}
