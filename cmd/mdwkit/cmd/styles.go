// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Terminal styles for command output
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	CodePointStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 1)

	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			Align(lipgloss.Right)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
