package main

import (
	"fmt"

	"portfolio/database"
	"portfolio/internal/config"
	"portfolio/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Portfolio API maintenance CLI",
	Long: `portfolioctl manages the portfolio database outside the API server.

Configuration is read the same way as the server: .env, then the YAML file
named by PORTFOLIO_CONFIG, then environment variables.

Example usage:
  portfolioctl migrate                  # Create or update tables
  portfolioctl seed --articles 20       # Insert sample content
  portfolioctl seed clean               # Remove sample content
  portfolioctl hash-password            # Produce ADMIN_PASSWORD_HASH`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log, err = logger.New(cfg.Log.Level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// openDatabase connects with the configured pool and a quiet SQL logger.
func openDatabase() (*gorm.DB, error) {
	db, err := database.ConnectDatabase(cfg.Database, logger.Gorm(log, 0))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}
