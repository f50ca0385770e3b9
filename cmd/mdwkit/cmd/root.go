// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration loading and error reporting
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/mdwkit/foundation/core/config"
	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	"github.com/msto63/mdwkit/pkg/core/logging"
	"github.com/msto63/mdwkit/pkg/core/settings"
)

// app carries the state shared by all subcommands of one run
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings *settings.Settings
	log      *logging.Logger
	runID    string
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mdwkit",
		Short: "mdwkit - Unicode aware text and value toolkit",
		Long: `mdwkit works on user-perceived characters instead of bytes or code
points, and copies structured documents without sharing any part of them.

Text commands:
  capitalize  - upper-case the first character
  truncate    - shorten to a number of characters
  replace     - replace all matches, ignoring case
  inspect     - list characters with code points and display width

Document commands:
  clone       - deep copy a JSON, YAML, TOML, MessagePack or BSON document

Diagnostics go to stderr; results go to stdout.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./mdwkit.toml or ~/.config/mdwkit/mdwkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console, text, json or logfmt")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, err)
	})

	rootCmd.AddCommand(
		newCapitalizeCmd(a),
		newTruncateCmd(a),
		newReplaceCmd(a),
		newInspectCmd(a),
		newCloneCmd(a),
		newVersionCmd(a),
	)
	return rootCmd, a
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd, a := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if a.log != nil {
		a.log.LogError(err)
	}
	fmt.Fprintln(stderr, ErrorStyle.Render("Error:"), err.Error())
	return exitCode(err)
}

// exitCode maps error codes to exit statuses. Errors outside the mdwkit
// error type come from cobra argument checks and count as usage errors.
func exitCode(err error) int {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return 2
	}
	return mdwErr.Code().ExitCode()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	s, err := settings.FromConfig(cfg)
	if err != nil {
		return err
	}
	if a.logFormat != "" {
		s.Log.Format = a.logFormat
	}
	if a.verbose {
		s.Log.Level = "debug"
	}

	loggerConfig := s.LoggerConfig(cmd.Name())
	loggerConfig.Output = cmd.ErrOrStderr()
	logger, runID, err := logging.NewRunLogger(loggerConfig)
	if err != nil {
		return err
	}

	a.settings, a.log, a.runID = s, logging.Wrap(logger), runID
	a.log.Debug("configuration loaded", "config_file", cfg.FilePath(), "locale", s.Text.Locale)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DiscoverWithDefaults()
	}
	return config.LoadWithOptions(path, config.LoadOptions{EnvPrefix: config.EnvPrefix})
}

// localeTag returns the tag from a --locale flag, falling back to settings
func (a *app) localeTag(flag string) (language.Tag, error) {
	if flag == "" {
		return a.settings.LocaleTag()
	}
	tag, err := language.Parse(flag)
	if err != nil {
		return language.Und, mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "locale", flag, "a BCP 47 language tag such as tr or de-CH")
	}
	return tag, nil
}

func usageError(cmd *cobra.Command, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Message(err.Error()).
		Code(mdwerror.CodeInvalidArgument).
		Severity(mdwerror.SeverityLow).
		Build()
}
