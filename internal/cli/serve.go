package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/pipeline"
	"github.com/vidhisaar/vidhisaar/internal/server"
)

var (
	serveAddr    string
	serveNoCache bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve exposes the resolver over HTTP:
  POST /api/v1/analyze          resolve a grievance description
  GET  /api/v1/sections/:code   look up a statutory section
  GET  /api/v1/sections?q=      search the statute catalog
  GET  /healthz                 liveness probe

Example:
  vidhisaar serve
  vidhisaar serve --addr :9090 --providers openai,anthropic`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "disable result cache")

	// AI flags shared with analyze
	serveCmd.Flags().StringVar(&aiProviders, "providers", "", "comma-separated AI providers in priority order")
	serveCmd.Flags().StringVar(&aiModel, "model", "", "provider model name (default per provider)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Addr = serveAddr
	cfg.Cache.Enabled = !serveNoCache
	cfg.Output.Verbose = verbose

	if aiProviders != "" {
		providers, err := buildProviderConfigs(aiProviders, aiModel)
		if err != nil {
			return err
		}
		cfg.Providers = providers
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	return server.New(p).Run(cfg.Server.Addr)
}
