// Package filex reads and writes the document files handled by mdwkit.
//
// Package: filex
// Title: Document File Access
// Description: Error-coded file reads and atomic file writes shared by the
//              configuration loader and the clone command.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with general file utilities
// - 2026-10-19 v0.2.0: Reduced to document I/O
//
// Errors carry the codes of foundation/core/error, so callers can map them
// to exit statuses without inspecting the underlying os error:
//
//	data, err := filex.ReadFile("config.yaml")
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// fall back to defaults
//	}
//
// WriteFile never leaves a truncated target behind. It writes into a
// temporary file next to the target and renames it into place:
//
//	if err := filex.WriteFile("out.toml", data, filex.DefaultPerm); err != nil {
//		return err
//	}
package filex
