// Package config provides configuration loading for the gitmeta CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the environment variable prefix for application settings
const EnvPrefix = "GITMETA"

// DefaultConfigFile is the config filename used when none is given
const DefaultConfigFile = "gitmeta.yaml"

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Projects lists the repositories the pipeline extracts metadata from
	Projects []ProjectConfig `yaml:"projects"`
}

// ProjectConfig defines a single project whose metadata is assembled
type ProjectConfig struct {
	// Name is the identifier for this project
	Name string `yaml:"name"`

	// Repository is the repository URL or an already-cloned local directory
	Repository string `yaml:"repository"`

	// Version is the semantic version whose tag is resolved
	Version string `yaml:"version"`

	// Dir is the directory to clone into (a temporary directory if empty)
	Dir string `yaml:"dir,omitempty"`

	// Auth configures transport credentials for cloning private repositories
	Auth *AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig defines HTTP basic auth credentials for a project
type AuthConfig struct {
	// Username is the auth username
	Username string `yaml:"username"`

	// PasswordEnv names the environment variable holding the password,
	// keeping the secret itself out of the config file
	PasswordEnv string `yaml:"passwordEnv,omitempty"`
}

// GetPassword resolves the password from the configured environment variable
func (a *AuthConfig) GetPassword() (string, error) {
	if a.PasswordEnv == "" {
		return "", nil
	}
	password, ok := os.LookupEnv(a.PasswordEnv)
	if !ok {
		return "", fmt.Errorf("environment variable %s is not set", a.PasswordEnv)
	}
	return password, nil
}

// LoadConfig loads and validates configuration using the given options
func LoadConfig(opts ...Option) (*Config, error) {
	loader := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loader); err != nil {
			return nil, err
		}
	}

	if loader.path == "" {
		return nil, fmt.Errorf("no configuration path provided")
	}

	data, err := os.ReadFile(loader.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for missing or conflicting settings
func (c *Config) Validate() error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("at least one project is required")
	}

	seen := make(map[string]bool, len(c.Projects))
	for i := range c.Projects {
		project := &c.Projects[i]

		if project.Name == "" {
			return fmt.Errorf("project %d: name is required", i)
		}
		if seen[project.Name] {
			return fmt.Errorf("duplicate project name: %s", project.Name)
		}
		seen[project.Name] = true

		if project.Repository == "" {
			return fmt.Errorf("project %s: repository is required", project.Name)
		}
		if project.Version == "" {
			return fmt.Errorf("project %s: version is required", project.Name)
		}
		if project.Auth != nil && project.Auth.Username == "" {
			return fmt.Errorf("project %s: auth requires a username", project.Name)
		}
	}
	return nil
}
