package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/leitner-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "leitner",
		Short:        "Leitner-box flashcard API",
		Long:         "leitner serves the flashcard REST API and manages its PostgreSQL schema.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides CONFIG_PATH env var)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig reads the config named by --config, falling back to CONFIG_PATH.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.LoadFile(p)
	}
	return config.Load()
}
