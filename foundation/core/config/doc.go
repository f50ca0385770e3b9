// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads mdwkit configuration files into ordered
//              value trees and exposes typed, environment aware getters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Backed by valuex, discovery of mdwkit.toml and mdwkit.yaml

/*
Package config provides configuration management for mdwkit.

Files are decoded with the valuex codecs, so TOML, YAML and JSON files all
produce the same ordered tree and key order is preserved for display. Values
are addressed with dot separated keys:

	cfg, err := config.Load("mdwkit.toml")
	if err != nil {
		return err
	}
	marker := cfg.GetString("text.marker", "…")
	level := cfg.GetString("log.level", "warn")

# Environment overrides

When an environment prefix is set, every key can be overridden by an
environment variable named PREFIX_KEY with dots replaced by underscores. The
command line tool uses the prefix MDWKIT, so MDWKIT_TEXT_MARKER overrides
text.marker.

# Discovery

DiscoverWithDefaults looks for mdwkit.toml, mdwkit.yaml or mdwkit.yml in the
working directory and then in $HOME/.config/mdwkit. A missing file yields an
empty configuration.

# Validation

	result := cfg.Validate(config.ValidationRules{
		"log.level":   {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"text.marker": {Kind: valuex.KindString, Max: config.Bound(8)},
	})
	if err := result.Err(); err != nil {
		return err
	}

GetAll returns a deep copy of the tree; changing it never affects the
configuration.
*/
package config
