// Package migrate runs schema migrations without starting the bot.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"unibot/internal/infrastructure/config"
	"unibot/internal/infrastructure/database"
	"unibot/internal/infrastructure/migration"
	"unibot/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment override for server mode")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}
