// Package main is the entry point for the gitmeta CLI.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/docbuilder/gitmeta/cmd/gitmeta/app"
	"github.com/docbuilder/gitmeta/internal/config"
)

// getLogLevel parses the GITMETA_LOG_LEVEL environment variable and returns
// the corresponding slog.Level. Defaults to slog.LevelInfo if unset or invalid.
func getLogLevel() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return slog.LevelInfo
	}
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: getLogLevel(),
	})))

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
