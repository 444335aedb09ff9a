// Command candidate-settings resolves the candidate service settings from the
// environment and prints the effective values as YAML.
//
// It exits non-zero when a value cannot be coerced, so it doubles as a
// startup check for deployments.
package main

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"resume-ranker/internal/config"
	"resume-ranker/internal/runid"
)

func fatal(msg string, err error, attrs ...any) {
	args := make([]any, 0, 2+len(attrs))
	args = append(args, "err", err)
	args = append(args, attrs...)
	slog.Error(msg, args...)
	os.Exit(1)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("run_id", runid.New()))

	cfg, err := config.Load()
	if err != nil {
		fatal("config load failed", err)
	}
	slog.Info("settings loaded", "settings", cfg)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatal("write settings failed", err)
	}
	if err := enc.Close(); err != nil {
		fatal("write settings failed", err)
	}
}
