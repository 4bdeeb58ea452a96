package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/internal/server"
	"github.com/matzehuels/tagcloud/pkg/cache"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tag cloud HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			// keep API entries apart from CLI entries in a shared backend
			runner.Keyer = cache.NewScopedKeyer(runner.Keyer, "api:")

			printInfo("Serving on %s", StyleValue.Render(addr))
			return server.New(runner, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
