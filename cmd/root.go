package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vedantvaibhav/Lumus/internal/config"
	"github.com/vedantvaibhav/Lumus/internal/logger"
	"github.com/vedantvaibhav/Lumus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lumus",
	Short: "Turn any text, URL or PDF into a quiz",
	Long: "Lumus reads content from URLs, PDFs, files or raw text and uses a\n" +
		"generative model to synthesize self-study quizzes from it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides LUMUS_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadApp resolves config and the logger shared by every command.
func loadApp() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// resolveDBPath returns the history database path using the --db flag
// (highest priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
