// Package cmd provides CLI commands for FinNova.
//
// Commands:
//   - serve: HTTP API server for the chat assistant
//   - ask: one-shot question from the command line
//   - version: version and configuration information
//
// Signal handling and graceful shutdown are implemented for serve via
// context cancellation.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finnova/finnova/internal/log"
)

// Version information (injected at build time via ldflags).
var (
	AppVersion = "0.1.0"
	BuildTime  = "unknown"
	GitCommit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finnova",
	Short: "FinNova - personal finance chat assistant",
	Long: `FinNova answers personal finance questions in Thai and English.

Salary questions are answered by a deterministic progressive tax
calculator; everything else goes through retrieval-augmented generation
over a curated financial knowledge base.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the process logger from environment settings.
// Commands call this before config.Load so early failures are logged too.
func newLogger() log.Logger {
	level := slog.LevelInfo
	switch os.Getenv("FINNOVA_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return log.New(log.Config{
		Level: level,
		JSON:  os.Getenv("FINNOVA_LOG_JSON") == "true",
	})
}
