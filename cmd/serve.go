package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/helmcode/skillready/pkg/analyzer"
	"github.com/helmcode/skillready/pkg/config"
	"github.com/helmcode/skillready/pkg/server"
	"github.com/helmcode/skillready/pkg/taxonomy"
)

var (
	servePort     string
	serveTaxonomy string
	serveConfig   config.AppConfig
)

func NewServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve assessments over HTTP",
		Long: `Start the HTTP API.

Endpoints:
  POST /api/v1/assess          assess a JSON or YAML profile
  GET  /api/v1/roles           list role profiles
  GET  /api/v1/roles/resolve   resolve ?role= to a profile
  GET  /livez, /readyz         health checks

Examples:
  skillready serve --port 9090
  APP_ENV=production skillready serve --taxonomy roles.yaml`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	serveConfig = cfg.App
	cmd.Flags().StringVar(&servePort, "port", cfg.App.Port, "Listen address (e.g. :8080)")
	cmd.Flags().StringVar(&serveTaxonomy, "taxonomy", cfg.TaxonomyPath, "Custom role taxonomy file (YAML or JSON)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := taxonomy.LoadFile(serveTaxonomy)
	if err != nil {
		return fmt.Errorf("failed to load taxonomy: %w", err)
	}

	appConfig := serveConfig
	appConfig.Port = config.NormalizePort(servePort)

	app := server.New(appConfig, analyzer.New(store))

	go func() {
		<-cmd.Context().Done()
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Starting %s (%s) on %s with %d roles", appConfig.Name, appConfig.Env, appConfig.Port, len(store.Roles()))
	return app.Listen(appConfig.Port)
}
