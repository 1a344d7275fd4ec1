package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaprule/gaprule/pkg/server"
)

// serveCommand creates the serve command running the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var flags cacheFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			runner, err := c.newRunner(ctx, &flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			printInfo("Serving on %s", addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	flags.register(cmd)

	return cmd
}
