package settings

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/msto63/mdwkit/foundation/core/config"
	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwlog "github.com/msto63/mdwkit/foundation/core/log"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
	"github.com/msto63/mdwkit/pkg/core/logging"
)

func TestFromConfigDefaults(t *testing.T) {
	s, err := FromConfig(config.New(""))
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}
	if diff := cmp.Diff(Defaults(), *s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
	if s.Text.Marker != "…" {
		t.Errorf("Marker = %q, want …", s.Text.Marker)
	}
}

func TestFromConfigFileValues(t *testing.T) {
	cfg, err := config.LoadFromString(`
[log]
level = "debug"

[text]
locale = "tr"

[output]
format = "yaml"
`, valuex.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}

	want := Defaults()
	want.Log.Level = "debug"
	want.Text.Locale = "tr"
	want.Output.Format = "yaml"
	if diff := cmp.Diff(want, *s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	tag, err := s.LocaleTag()
	if err != nil || tag != language.Turkish {
		t.Errorf("LocaleTag() = %v, %v; want tr", tag, err)
	}
	if s.OutputFormat() != valuex.FormatYAML {
		t.Errorf("OutputFormat() = %v, want yaml", s.OutputFormat())
	}
}

func TestFromConfigEnvironment(t *testing.T) {
	t.Setenv("MDWKIT_TEXT_MARKER", "»")
	t.Setenv("MDWKIT_LOG_FORMAT", "json")

	s, err := FromConfig(config.New(config.EnvPrefix))
	if err != nil {
		t.Fatalf("FromConfig() error: %v", err)
	}
	if s.Text.Marker != "»" || s.Log.Format != "json" {
		t.Errorf("environment ignored: %+v", s)
	}
}

func TestFromConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    mdwerror.Code
	}{
		{"level", "[log]\nlevel = \"loud\"\n", mdwerror.CodeValidationFailed},
		{"marker kind", "[text]\nmarker = 3\n", mdwerror.CodeValidationFailed},
		{"output format", "[output]\nformat = \"xml\"\n", mdwerror.CodeValidationFailed},
		{"locale", "[text]\nlocale = \"not a locale\"\n", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadFromString(tt.content, valuex.FormatTOML)
			if err != nil {
				t.Fatalf("LoadFromString() error: %v", err)
			}
			if _, err := FromConfig(cfg); !mdwerror.HasCode(err, tt.code) {
				t.Errorf("FromConfig() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	s := Defaults()
	s.Log.Level = "info"
	s.Log.Format = "logfmt"

	cfg := s.LoggerConfig("capitalize")
	want := logging.LoggerConfig{Name: "capitalize", Level: "info", Format: "logfmt"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoggerConfig() mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	cfg.Output = &buf
	logger, err := logging.NewLogger(cfg)
	if err != nil || logger.GetLevel() != mdwlog.LevelInfo {
		t.Errorf("NewLogger() = %v, %v", logger.GetLevel(), err)
	}
}
