// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Inspect command listing characters and code points
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/mdwkit/foundation/utils/stringx"
)

const (
	colIndex = iota
	colChar
	colCodePoints
	colWidth
	colOffset
)

func newInspectCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [--plain] [TEXT...]",
		Short: "List characters with code points and display width",
		Long: `Breaks the text into user-perceived characters and prints one row per
character: its position, the character, its code points, its width in a
monospace terminal and its byte offset. Control characters are shown quoted.

--plain prints tab separated rows without header or styling.`,
		Example: `  mdwkit inspect 'é'
  mdwkit inspect --plain '🇩🇪👍🏽'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := textInput(cmd, args)
			if err != nil {
				return err
			}
			text := strings.Join(lines, "\n")
			chars := mdwstringx.Inspect(text)

			out := cmd.OutOrStdout()
			if plain {
				writePlain(out, chars)
			} else {
				fmt.Fprintln(out, charTable(chars))
				fmt.Fprintln(out, SummaryStyle.Render(summary(text, chars)))
			}
			a.log.Debug("inspected", "characters", len(chars), "bytes", len(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "tab separated output without styling")
	return cmd
}

func charTable(chars []mdwstringx.CharInfo) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == colCodePoints:
				return CodePointStyle
			case col == colIndex || col == colWidth || col == colOffset:
				return NumberStyle
			default:
				return CellStyle
			}
		}).
		Headers("#", "CHAR", "CODE POINTS", "WIDTH", "BYTE")

	for _, c := range chars {
		t.Row(
			strconv.Itoa(c.Index),
			displayChar(c.Text),
			c.CodePointString(),
			strconv.Itoa(c.Width),
			strconv.Itoa(c.Offset),
		)
	}
	return t
}

func writePlain(w io.Writer, chars []mdwstringx.CharInfo) {
	for _, c := range chars {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", c.Index, displayChar(c.Text), c.CodePointString(), c.Width, c.Offset)
	}
}

// displayChar quotes characters that would break a table row or be invisible
func displayChar(s string) string {
	for _, r := range s {
		if unicode.IsControl(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

func summary(text string, chars []mdwstringx.CharInfo) string {
	return fmt.Sprintf("%d characters, %d code points, %d bytes, display width %d",
		len(chars), utf8.RuneCountInString(text), len(text), mdwstringx.DisplayWidth(text))
}
