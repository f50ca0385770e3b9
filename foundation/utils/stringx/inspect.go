// File: inspect.go
// Title: Character Inspection
// Description: Breaks a string down into user-perceived characters with their
//              code points, byte offsets and terminal display width.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CharInfo describes one user-perceived character of a string.
type CharInfo struct {
	Index      int    // character position, starting at 0
	Offset     int    // byte offset in the source string
	Text       string // the character itself
	CodePoints []rune // code points forming the character
	Width      int    // monospace display width in cells
}

// CodePointString renders the code points as "U+0065 U+0301".
func (c CharInfo) CodePointString() string {
	parts := make([]string, len(c.CodePoints))
	for i, r := range c.CodePoints {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return strings.Join(parts, " ")
}

// Inspect returns one CharInfo per user-perceived character of s.
func Inspect(s string) []CharInfo {
	chars := Graphemes(s)
	result := make([]CharInfo, len(chars))
	offset := 0
	for i, ch := range chars {
		result[i] = CharInfo{
			Index:      i,
			Offset:     offset,
			Text:       ch,
			CodePoints: []rune(ch),
			Width:      runewidth.StringWidth(ch),
		}
		offset += len(ch)
	}
	return result
}

// DisplayWidth returns the monospace display width of s in cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}
