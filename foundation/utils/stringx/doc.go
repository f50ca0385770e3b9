// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides grapheme-aware string operations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core string utilities
// - 2026-10-19 v0.2.0: Capitalize, Truncate and ReplaceAllCaseInsensitive on grapheme clusters

// Package stringx provides grapheme-aware string operations for mdwkit.
//
// # Overview
//
// Every function in this package counts and slices by user-perceived
// character, i.e. by extended grapheme cluster as defined in Unicode UAX #29
// (segmentation by github.com/rivo/uniseg). A family emoji built from several
// code points joined by ZWJ, a letter followed by a combining accent, or a
// flag made of two regional indicators is one character.
//
// All functions are pure: they never modify their input and keep no state,
// so they are safe for concurrent use.
//
// Usage Examples
//
//	stringx.Capitalize("hello")                             // "Hello"
//	stringx.CapitalizeIn("istanbul", language.Turkish)      // "İstanbul"
//	stringx.Truncate("A long string", 10)                   // "A long str…"
//	stringx.Truncate("hi", 5)                               // "hi"
//	stringx.ReplaceAllCaseInsensitive("Foo foo FOO", "foo", "bar") // "bar bar bar"
//	stringx.ReplaceAllCaseInsensitive("a.b.c", ".", "-")    // "a-b-c"
//
// # Truncation
//
// Truncate appends TruncationMarker ("…") when it shortens the input, so the
// result has at most maxChars+1 characters. A negative bound panics; callers
// handling untrusted input use TruncateChecked, which returns an
// INVALID_ARGUMENT error instead.
//
// # Case-insensitive replace
//
// ReplaceAllCaseInsensitive compares under Unicode simple case folding with an
// explicit scan. The search term is literal text; there is no pattern syntax
// to escape. Matches are non-overlapping, left to right, and aligned to
// character boundaries.
package stringx
