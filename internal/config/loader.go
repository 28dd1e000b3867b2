package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	configFile string
	searchDirs []string
}

// NewLoader creates a loader. When configFile is empty the loader looks for
// "settings.{json,yaml,toml}" in DefaultConfigDir; a missing file there is
// not an error. An explicit configFile must exist.
func NewLoader(configFile string) Loader {
	var dirs []string
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	return &loader{configFile: configFile, searchDirs: dirs}
}

// NewLoaderWithDirs is like NewLoader but searches the given directories.
func NewLoaderWithDirs(configFile string, dirs ...string) Loader {
	return &loader{configFile: configFile, searchDirs: dirs}
}

// DefaultConfigDir returns ~/.config/todocol.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", "todocol"), nil
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (TODOCOL_*)
// 2. Config file
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		path := ExpandPath(l.configFile)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("settings")
		for _, dir := range l.searchDirs {
			v.AddConfigPath(dir)
		}
	}

	// Replace . with _ in env var names (e.g., TODOCOL_OUTFILE_FORMAT)
	v.SetEnvPrefix("TODOCOL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("prefix")
	v.BindEnv("outfile.name")
	v.BindEnv("outfile.format")
	v.BindEnv("ignore")
	v.BindEnv("ignore_patterns")
	v.BindEnv("workspaces")
	v.BindEnv("workers")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Normalize()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("prefix", defaults.Prefixes)
	v.SetDefault("outfile.name", defaults.Outfile.Name)
	v.SetDefault("outfile.format", defaults.Outfile.Format)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("ignore_patterns", defaults.IgnorePatterns)
	v.SetDefault("workspaces", defaults.Workspaces)
	v.SetDefault("workers", defaults.Workers)
}
