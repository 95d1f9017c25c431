// Package app provides the commands for the gitmeta CLI.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docbuilder/gitmeta/internal/versions"
)

var rootCmd = &cobra.Command{
	Use:               "gitmeta",
	DisableAutoGenTag: true,
	Short:             "Extract versioned build metadata from git repositories",
	Long: `gitmeta resolves version tags to commit SHAs, canonicalizes origin URLs,
and fetches project configuration files at historical revisions for the
documentation pipeline.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			slog.Error("Error displaying help", "error", err)
		}
	},
}

// NewRootCmd creates a new root command for the gitmeta CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := versions.Get()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			slog.Error("Error retrieving format flag", "error", err)
			return
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				slog.Error("Error formatting version info as JSON", "error", err)
				return
			}
			fmt.Println(string(output))
		} else {
			slog.Info("gitmeta version",
				"version", info.Version,
				"commit", info.Commit,
				"built", info.BuildDate,
				"go", info.GoVersion,
				"platform", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}
