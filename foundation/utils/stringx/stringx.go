// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements grapheme-aware string operations. A "character" in this
//              package is an extended grapheme cluster (UAX #29), the unit a reader
//              perceives as one character, so emoji sequences and combining marks
//              are never split.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Grapheme clusters replace runes as the character unit

package stringx

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CharCount returns the number of user-perceived characters in s.
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its user-perceived characters.
// Concatenating the result yields s again.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}

	result := make([]string, 0, len(s))
	state := -1
	rest := s
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		result = append(result, cluster)
	}
	return result
}

// Capitalize returns s with its first character upper-cased.
//
// Only the first rune of the first grapheme cluster is mapped, using the simple
// one-to-one Unicode upper-case mapping, so the character count of the result
// always equals that of s. Combining marks that belong to the first character
// stay attached. Empty input and input that starts with invalid UTF-8 are
// returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// CapitalizeIn upper-cases the first character of s using the case rules of
// the given language, e.g. Turkish maps "i" to "İ".
//
// Full case mappings can expand a character ("ß" becomes "SS"); when the
// language mapping would change the character count, CapitalizeIn falls back
// to the simple mapping used by Capitalize.
func CapitalizeIn(s string, tag language.Tag) string {
	if s == "" {
		return s
	}

	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	r, size := utf8.DecodeRuneInString(first)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	// Only the leading rune is mapped; the marks that follow it are kept as-is.
	mapped := cases.Upper(tag).String(first[:size])
	if uniseg.GraphemeClusterCount(mapped+first[size:]) != 1 {
		return Capitalize(s)
	}
	return mapped + first[size:] + rest
}
