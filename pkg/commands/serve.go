package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmate/pkg/commands/options"
	"tableflip.dev/mindmate/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}
	verbose := false

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the journal as a local JSON API",
		Long: `Start an HTTP server exposing entries, the weekly trend, the profile,
suggestions and chat under /api. It binds to localhost and has no
authentication.`,
		Example: `
mindmate serve
mindmate serve --addr 127.0.0.1:8080 -v
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService(cmd.Context(), aiOptional)
			if err != nil {
				return err
			}
			defer svc.Close()

			addr := so.Addr
			if addr == "" {
				addr = cfg.ServeAddr
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MindMate API listening on http://%s/api\n", addr)
			return serve.NewServer(svc, verbose).Start(cmd.Context(), addr)
		},
	}

	options.AddServeArgs(cmd, so)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every request.")

	topLevel.AddCommand(cmd)
}
