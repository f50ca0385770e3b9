// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     settings
// Description: Typed tool settings read from the configuration tree
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package settings

import (
	"dario.cat/mergo"
	"golang.org/x/text/language"

	"github.com/msto63/mdwkit/foundation/core/config"
	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	mdwlog "github.com/msto63/mdwkit/foundation/core/log"
	mdwstringx "github.com/msto63/mdwkit/foundation/utils/stringx"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
	"github.com/msto63/mdwkit/pkg/core/logging"
)

// Settings holds the complete tool configuration
type Settings struct {
	Log    LogSettings    `toml:"log"`
	Text   TextSettings   `toml:"text"`
	Output OutputSettings `toml:"output"`
}

// LogSettings controls diagnostics on stderr
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// TextSettings holds defaults for the text commands
type TextSettings struct {
	Marker string `toml:"marker"`
	Locale string `toml:"locale"`
}

// OutputSettings holds defaults for the document commands
type OutputSettings struct {
	Format string `toml:"format"`
}

// Defaults returns the settings used where the configuration is silent
func Defaults() Settings {
	return Settings{
		Log: LogSettings{
			Level:  mdwlog.DefaultLevel().String(),
			Format: mdwlog.FormatConsole.String(),
		},
		Text: TextSettings{
			Marker: mdwstringx.TruncationMarker,
			Locale: language.Und.String(),
		},
		Output: OutputSettings{
			Format: string(valuex.FormatJSON),
		},
	}
}

// Rules returns the validation rules for the keys read by FromConfig
func Rules() config.ValidationRules {
	levels := make([]string, 0, len(mdwlog.AllLevels()))
	for _, l := range mdwlog.AllLevels() {
		levels = append(levels, l.String())
	}
	formats := make([]string, 0, len(valuex.Formats()))
	for _, f := range valuex.Formats() {
		formats = append(formats, string(f))
	}

	return config.ValidationRules{
		"log.level":     {Kind: valuex.KindString, OneOf: levels},
		"log.format":    {Kind: valuex.KindString, OneOf: []string{"console", "text", "json", "logfmt"}},
		"text.marker":   {Kind: valuex.KindString, Max: config.Bound(16)},
		"text.locale":   {Kind: valuex.KindString},
		"output.format": {Kind: valuex.KindString, OneOf: formats},
	}
}

// FromConfig reads settings from cfg, including environment overrides, and
// fills unset values from Defaults
func FromConfig(cfg *config.Config) (*Settings, error) {
	if err := cfg.Validate(Rules()).Err(); err != nil {
		return nil, err
	}

	s := Settings{
		Log: LogSettings{
			Level:  cfg.GetString("log.level"),
			Format: cfg.GetString("log.format"),
		},
		Text: TextSettings{
			Marker: cfg.GetString("text.marker"),
			Locale: cfg.GetString("text.locale"),
		},
		Output: OutputSettings{
			Format: cfg.GetString("output.format"),
		},
	}

	if err := mergo.Merge(&s, Defaults()); err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "settings", mdwerror.CodeInternal, err)
	}

	if _, err := s.LocaleTag(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LocaleTag parses the configured locale. "und" selects locale independent
// case mapping.
func (s *Settings) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(s.Text.Locale)
	if err != nil {
		return language.Und, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("settings").
			Messagef("invalid locale %q", s.Text.Locale).
			Cause(err).
			Code(mdwerror.CodeInvalidConfig).
			Severity(mdwerror.SeverityLow).
			Detail("key", "text.locale").
			Build()
	}
	return tag, nil
}

// OutputFormat returns the default document format
func (s *Settings) OutputFormat() valuex.Format {
	f, err := valuex.ParseFormat(s.Output.Format)
	if err != nil {
		return valuex.FormatJSON
	}
	return f
}

// LoggerConfig returns the logger configuration for a command
func (s *Settings) LoggerConfig(name string) logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig(name)
	cfg.Level = s.Log.Level
	cfg.Format = s.Log.Format
	return cfg
}
