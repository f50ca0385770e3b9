// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the mdwkit configuration file in the working directory
//              or the user's config directory.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: mdwkit search locations, optional by default

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	"github.com/msto63/mdwkit/foundation/utils/filex"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether a missing file is an error
}

// DefaultDiscoveryOptions searches ./mdwkit.{toml,yaml,yml} and then
// $HOME/.config/mdwkit/mdwkit.{toml,yaml,yml}. A missing file is not an error.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mdwkit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"mdwkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration that still honors environment overrides,
// unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load it").
			WithOperation("config.discover").
			WithDetail("config_path", path)
	}
	return cfg, nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if filex.IsFile(candidate) {
			return candidate, nil
		}
	}
	return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("discover").
		Message("no configuration file found").
		Code(mdwerror.CodeNotFound).
		Severity(mdwerror.SeverityLow).
		Detail("search_paths", candidates).
		Build()
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
