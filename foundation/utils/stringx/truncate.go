// File: truncate.go
// Title: Grapheme-Aware Truncation
// Description: Bounds a string to a maximum number of user-perceived characters
//              and appends a truncation marker when it had to shorten the input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Rune based truncation with ellipsis argument
// - 2026-10-19 v0.2.0: Grapheme clusters, marker appended beyond the bound

package stringx

import (
	"github.com/rivo/uniseg"

	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

// TruncationMarker is appended by Truncate when the input was shortened.
const TruncationMarker = "…"

// Truncate returns s unchanged when it has at most maxChars characters.
// Otherwise it returns the first maxChars characters followed by
// TruncationMarker, maxChars+1 characters in total. maxChars == 0 on a
// non-empty string yields just the marker.
//
// A negative maxChars is a programming error and panics with an
// INVALID_ARGUMENT error; use TruncateChecked for untrusted bounds.
func Truncate(s string, maxChars int) string {
	return TruncateWith(s, maxChars, TruncationMarker)
}

// TruncateChecked is Truncate with the negative bound reported as an error.
func TruncateChecked(s string, maxChars int) (string, error) {
	if maxChars < 0 {
		return "", mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "truncate", maxChars, "non-negative maxChars")
	}
	return TruncateWith(s, maxChars, TruncationMarker), nil
}

// TruncateWith is Truncate with a caller supplied marker. The marker is
// appended verbatim and does not count against maxChars.
func TruncateWith(s string, maxChars int, marker string) string {
	if maxChars < 0 {
		panic(mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "truncate", maxChars, "non-negative maxChars"))
	}

	cut, truncated := prefixLength(s, maxChars)
	if !truncated {
		return s
	}
	return s[:cut] + marker
}

// prefixLength returns the byte length of the first maxChars characters of s
// and whether s has more characters than that.
func prefixLength(s string, maxChars int) (int, bool) {
	state := -1
	rest := s
	for n := 0; len(rest) > 0; n++ {
		if n == maxChars {
			return len(s) - len(rest), true
		}
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return len(s), false
}
