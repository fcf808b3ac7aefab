package main

import (
	"os"

	"github.com/spf13/cobra"

	"unibot/internal/interfaces/cli/migrate"
	"unibot/internal/interfaces/cli/serve"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "unibot",
		Short: "Unibot - university support Telegram bot",
		Long:  `Unibot answers student questions from the FAQ base, manages support tickets, shows schedules and documents, and broadcasts announcements.`,
	}

	rootCmd.AddCommand(
		serve.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
