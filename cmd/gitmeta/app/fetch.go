package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/docbuilder/gitmeta/internal/config"
	"github.com/docbuilder/gitmeta/pkg/git"
	"github.com/docbuilder/gitmeta/pkg/gitmeta"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Assemble metadata for every configured project",
	Long: `Assemble the metadata record (origin URL, tag, commit SHA) and project
configuration for each project listed in the configuration file.

Projects are processed concurrently, one repository handle each, and the
resulting records are printed as JSON to stdout.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("config", config.DefaultConfigFile, "Path to configuration file (YAML format)")

	if err := viper.BindPFlag("config", fetchCmd.Flags().Lookup("config")); err != nil {
		slog.Error("Failed to bind config flag", "error", err)
		os.Exit(1)
	}
}

// projectReport is one line of fetch output
type projectReport struct {
	Project  string                `json:"project"`
	Metadata *gitmeta.RepoMetadata `json:"metadata"`
	Config   string                `json:"config,omitempty"`
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(config.WithConfigPath(viper.GetString("config")))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	reports := make([]*projectReport, len(cfg.Projects))
	group, ctx := errgroup.WithContext(cmd.Context())

	for i, project := range cfg.Projects {
		i, project := i, project
		group.Go(func() error {
			report, err := fetchProject(ctx, project)
			if err != nil {
				return fmt.Errorf("project %s: %w", project.Name, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	for _, report := range reports {
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}
	return nil
}

func fetchProject(ctx context.Context, project config.ProjectConfig) (*projectReport, error) {
	repo, err := openOrClone(ctx, project)
	if err != nil {
		return nil, err
	}

	meta, err := gitmeta.Assemble(repo, project.Version)
	if err != nil {
		return nil, err
	}

	// Read the config at the resolved commit; an absent commit falls through
	// to the default branch inside ReadConfig.
	content, err := gitmeta.ReadConfig(repo, meta.Commit)
	if err != nil {
		return nil, err
	}

	return &projectReport{
		Project:  project.Name,
		Metadata: meta,
		Config:   string(content),
	}, nil
}

// openOrClone opens a local working copy in place, or clones a remote URI
// into the project's directory (a temporary one when unset)
func openOrClone(ctx context.Context, project config.ProjectConfig) (*git.Repository, error) {
	if stat, err := os.Stat(project.Repository); err == nil && stat.IsDir() {
		return git.Open(project.Repository)
	}

	targetDir := project.Dir
	if targetDir == "" {
		tempDir, err := os.MkdirTemp("", "gitmeta-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create clone directory: %w", err)
		}
		targetDir = tempDir
	}

	var auth git.AuthProvider
	if project.Auth != nil {
		password, err := project.Auth.GetPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve git password: %w", err)
		}
		auth = &git.BasicAuth{Username: project.Auth.Username, Password: password}
	}

	return git.Clone(ctx, project.Repository, targetDir, auth)
}
