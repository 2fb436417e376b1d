package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultPort       = "8080"
	defaultConfigPath = "config/config.yaml"
)

var (
	port       string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trivia-duel",
		Short: "1v1 trivia duel server: topic matchmaking, timed questions and live scoring over WebSocket",
	}

	cmd.PersistentFlags().StringVar(&port, "port", envOr("PORT", defaultPort), "HTTP listen port")
	cmd.PersistentFlags().StringVar(&configPath, "config", envOr("CONFIG_PATH", defaultConfigPath), "path to the YAML config file")
	cmd.AddCommand(NewStartCmd(&configPath, &port))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
