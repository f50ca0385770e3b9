// File: replace.go
// Title: Case-Insensitive Literal Search and Replace
// Description: Explicit scan-and-compare matching of a literal search term under
//              Unicode simple case folding. No pattern engine is involved, so
//              characters such as '.', '*' or '$' in the term are plain text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ReplaceAllCaseInsensitive returns a copy of s in which every occurrence of
// find, compared case-insensitively, is replaced by replacement.
//
// Matching runs left to right and is non-overlapping: after a match the scan
// resumes behind it. A match must begin and end on character boundaries of s,
// so a replacement never splits a user-perceived character. Both find and
// replacement are literal text. An empty find leaves s unchanged.
func ReplaceAllCaseInsensitive(s, find, replacement string) string {
	if find == "" || s == "" {
		return s
	}

	m := newMatcher(s, find)
	start, end, ok := m.next(0)
	if !ok {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for ; ok; start, end, ok = m.next(end) {
		b.WriteString(s[last:start])
		b.WriteString(replacement)
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// IndexIgnoreCase returns the byte index of the first case-insensitive
// occurrence of substr in s that lies on character boundaries, or -1.
func IndexIgnoreCase(s, substr string) int {
	if substr == "" {
		return 0
	}
	start, _, ok := newMatcher(s, substr).next(0)
	if !ok {
		return -1
	}
	return start
}

// ContainsIgnoreCase reports whether substr occurs in s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return IndexIgnoreCase(s, substr) >= 0
}

// CountIgnoreCase counts the non-overlapping case-insensitive occurrences of
// substr in s. An empty substr counts as zero occurrences.
func CountIgnoreCase(s, substr string) int {
	if substr == "" {
		return 0
	}
	m := newMatcher(s, substr)
	n := 0
	for _, end, ok := m.next(0); ok; _, end, ok = m.next(end) {
		n++
	}
	return n
}

// matcher scans s for find. Simple case folding maps one rune to one rune, so
// every candidate match spans exactly as many runes as find.
type matcher struct {
	s          string
	find       string
	findRunes  int
	boundaries []int // byte offsets where characters start, plus len(s)
}

func newMatcher(s, find string) *matcher {
	return &matcher{
		s:          s,
		find:       find,
		findRunes:  utf8.RuneCountInString(find),
		boundaries: boundaries(s),
	}
}

// next returns the first match starting at or after byte offset from.
func (m *matcher) next(from int) (start, end int, ok bool) {
	i := sort.SearchInts(m.boundaries, from)
	for ; i < len(m.boundaries)-1; i++ {
		start = m.boundaries[i]
		end, ok = m.advance(start)
		if ok && m.isBoundary(end) && strings.EqualFold(m.s[start:end], m.find) {
			return start, end, true
		}
	}
	return 0, 0, false
}

// advance moves findRunes runes forward from start.
func (m *matcher) advance(start int) (int, bool) {
	pos := start
	for n := 0; n < m.findRunes; n++ {
		if pos >= len(m.s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(m.s[pos:])
		pos += size
	}
	return pos, true
}

func (m *matcher) isBoundary(offset int) bool {
	i := sort.SearchInts(m.boundaries, offset)
	return i < len(m.boundaries) && m.boundaries[i] == offset
}

func boundaries(s string) []int {
	result := make([]int, 0, len(s)+1)
	state := -1
	rest := s
	for len(rest) > 0 {
		result = append(result, len(s)-len(rest))
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return append(result, len(s))
}
