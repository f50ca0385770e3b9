// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Text commands: capitalize, truncate and replace
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
	mdwstringx "github.com/msto63/mdwkit/foundation/utils/stringx"
)

// maxLineBytes bounds a single line read from stdin
const maxLineBytes = 16 * 1024 * 1024

// textInput returns the arguments joined by spaces as a single line, or the
// lines of stdin when there are no arguments
func textInput(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, readError(cmd, "stdin", err)
	}
	return lines, nil
}

func readError(cmd *cobra.Command, source string, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(cmd.Name()).
		Messagef("cannot read %s", source).
		Cause(err).
		Code(mdwerror.CodeReadFailed).
		Severity(mdwerror.SeverityHigh).
		Detail("source", source).
		Build()
}

func writeLines(cmd *cobra.Command, lines []string, transform func(string) string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, transform(line))
	}
}

func newCapitalizeCmd(a *app) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "capitalize [--locale TAG] [TEXT...]",
		Short: "Upper-case the first character",
		Long: `Upper-cases the first user-perceived character of the text and leaves the
rest unchanged. Without TEXT every line of stdin is capitalized.

With a locale, case mapping follows that language, so "istanbul" becomes
"İstanbul" for --locale tr. The default locale comes from text.locale.`,
		Example: `  mdwkit capitalize élan
  mdwkit capitalize --locale tr istanbul
  printf 'a\nb\n' | mdwkit capitalize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.localeTag(locale)
			if err != nil {
				return err
			}
			lines, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			writeLines(cmd, lines, func(s string) string {
				if tag == language.Und {
					return mdwstringx.Capitalize(s)
				}
				return mdwstringx.CapitalizeIn(s, tag)
			})
			a.log.Debug("capitalized", "lines", len(lines), "locale", tag.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 language tag for case mapping")
	return cmd
}

func newTruncateCmd(a *app) *cobra.Command {
	var (
		maxChars int
		marker   string
	)

	cmd := &cobra.Command{
		Use:   "truncate --max N [--marker M] [TEXT...]",
		Short: "Shorten text to N characters",
		Long: `Keeps the first N user-perceived characters and appends a marker when
anything was cut. Emoji sequences, flags and combined accents are never split.
The marker does not count against N. Its default comes from text.marker.`,
		Example: `  mdwkit truncate --max 3 'Grüße aus Köln'
  mdwkit truncate --max 1 --marker '...' '👨‍👩‍👧 family'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxChars < 0 {
				return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, "truncate", maxChars, "a non-negative --max")
			}
			if !cmd.Flags().Changed("marker") {
				marker = a.settings.Text.Marker
			}
			lines, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			cut := 0
			writeLines(cmd, lines, func(s string) string {
				if mdwstringx.CharCount(s) > maxChars {
					cut++
				}
				return mdwstringx.TruncateWith(s, maxChars, marker)
			})
			a.log.Debug("truncated", "lines", len(lines), "cut", cut, "max", maxChars)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxChars, "max", 0, "maximum number of characters to keep")
	cmd.Flags().StringVar(&marker, "marker", "", "text appended when characters were cut")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var find, with string

	cmd := &cobra.Command{
		Use:   "replace --find F [--with R] [TEXT...]",
		Short: "Replace every match of F, ignoring case",
		Long: `Replaces every occurrence of F in the text with R, comparing without regard
to case. Matches never start or end inside a character, so "e" does not match
the first half of a decomposed "é". R is inserted literally. An empty F leaves
the text unchanged.`,
		Example: `  mdwkit replace --find straße --with Weg 'Hauptstraße, HAUPTSTRASSE'
  mdwkit replace --find kelvin --with K '300 Kelvin'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			matches := 0
			writeLines(cmd, lines, func(s string) string {
				matches += mdwstringx.CountIgnoreCase(s, find)
				return mdwstringx.ReplaceAllCaseInsensitive(s, find, with)
			})
			a.log.Debug("replaced", "lines", len(lines), "matches", matches)
			return nil
		},
	}
	cmd.Flags().StringVar(&find, "find", "", "text to search for")
	cmd.Flags().StringVar(&with, "with", "", "replacement text")
	_ = cmd.MarkFlagRequired("find")
	return cmd
}
