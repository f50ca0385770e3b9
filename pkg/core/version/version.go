// ============================================================================
// mdwkit - Unicode text and value toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the mdwkit tool
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release of the toolkit
const Version = "0.2.0"

// Commit and BuildDate are set at build time with
// -ldflags "-X github.com/msto63/mdwkit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a one line description such as
// "mdwkit 0.2.0 (commit abc123, built 2026-10-19, go1.22.5 linux/amd64)"
func String() string {
	return fmt.Sprintf("mdwkit %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number
func Short() string {
	return Version
}
