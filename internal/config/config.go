// Package config provides configuration loading for todocol.
//
// Configuration Hierarchy (highest to lowest priority):
//  1. Command line flags (applied by the cli package)
//  2. Environment variables (TODOCOL_*)
//  3. Config file (--config, or ~/.config/todocol/settings.{json,yaml,toml})
//  4. Built-in defaults
package config

import (
	"os"
)

// DefaultIgnore lists entries that are always skipped during traversal.
var DefaultIgnore = []string{".git", ".gitignore", ".gitmodules", ".vscode"}

// Config represents the complete todocol configuration.
type Config struct {
	Prefixes       []string      `yaml:"prefix" mapstructure:"prefix"`                   // comment markers, e.g. ["TODO", "FIXME"]
	Outfile        OutfileConfig `yaml:"outfile" mapstructure:"outfile"`                 // report file settings
	Ignore         []string      `yaml:"ignore" mapstructure:"ignore"`                   // exact file or directory names to skip
	IgnorePatterns []string      `yaml:"ignore_patterns" mapstructure:"ignore_patterns"` // glob patterns on file or directory names
	Workspaces     []string      `yaml:"workspaces" mapstructure:"workspaces"`           // workspace roots for "todocol workspaces"
	Workers        int           `yaml:"workers" mapstructure:"workers"`                 // parallel file scanners, 1 = sequential
}

// OutfileConfig configures the generated report file.
type OutfileConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`     // base name without extension
	Format string `yaml:"format" mapstructure:"format"` // raw|txt|markdown|md|json
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Prefixes: []string{"TODO"},
		Outfile: OutfileConfig{
			Name:   "TODO",
			Format: "raw",
		},
		Ignore:  append([]string(nil), DefaultIgnore...),
		Workers: 1,
	}
}

// SetPrefixes replaces the marker list. An empty list keeps the current one.
func (c *Config) SetPrefixes(prefixes []string) {
	if len(prefixes) == 0 {
		return
	}
	c.Prefixes = nil
	for _, p := range prefixes {
		c.AddPrefix(p)
	}
}

// AddPrefix appends a marker unless it is empty or already present.
// It reports whether the marker was added.
func (c *Config) AddPrefix(prefix string) bool {
	added, list := appendUnique(c.Prefixes, prefix)
	c.Prefixes = list
	return added
}

// AddIgnore appends an ignore entry unless it is empty or already present.
// It reports whether the entry was added.
func (c *Config) AddIgnore(name string) bool {
	added, list := appendUnique(c.Ignore, name)
	c.Ignore = list
	return added
}

// Normalize removes duplicate markers and ignore entries, adds the
// default ignore entries and expands environment variables in workspace
// paths.
func (c *Config) Normalize() {
	prefixes := c.Prefixes
	c.Prefixes = nil
	for _, p := range prefixes {
		c.AddPrefix(p)
	}

	ignore := c.Ignore
	c.Ignore = nil
	for _, name := range ignore {
		c.AddIgnore(name)
	}
	for _, name := range DefaultIgnore {
		c.AddIgnore(name)
	}

	workspaces := make([]string, 0, len(c.Workspaces))
	for _, w := range c.Workspaces {
		if expanded := ExpandPath(w); expanded != "" {
			workspaces = append(workspaces, expanded)
		}
	}
	c.Workspaces = workspaces
}

// ExpandPath replaces $VAR and ${VAR} references in path.
func ExpandPath(path string) string {
	return os.ExpandEnv(path)
}

func appendUnique(list []string, value string) (bool, []string) {
	if value == "" {
		return false, list
	}
	for _, existing := range list {
		if existing == value {
			return false, list
		}
	}
	return true, append(list, value)
}
