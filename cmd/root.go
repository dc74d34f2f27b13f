package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsportal/config"
	"newsportal/database"
	"newsportal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "newsportal",
	Short: "News portal API server",
	Long: `newsportal serves the public news site API and its admin back office.

Subcommands:
  serve         - Run the HTTP server
  migrate       - Apply, roll back or inspect database migrations
  create-admin  - Create or promote an administrator account`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

// bootstrap loads configuration, installs the logger and opens the database.
func bootstrap() (*config.Config, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if _, err := logging.Init(&cfg.Logging); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Open(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logging.L().Error("Failed to connect to database", zap.Error(err))
		return nil, nil, err
	}
	return cfg, db, nil
}
