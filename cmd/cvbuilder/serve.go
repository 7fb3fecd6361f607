package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/server"
	"github.com/spf13/cobra"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the CV builder REST API: public intake, admin review endpoints,
PDF download and preview, settings and AI assistance.

Configuration comes from the environment (or a .env file): DATABASE_URL and
JWT_SECRET are required; PORT, CORS_ORIGIN, CHROME_PATH, GEMINI_API_KEY,
SMTP_* and ADMIN_EMAIL/ADMIN_PASSWORD are optional.`,
	RunE: serveCmd,
}

func init() {
	rootCmd.AddCommand(serveCommand)
}

func serveCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
