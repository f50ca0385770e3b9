// File: filex.go
// Title: Document File Access
// Description: Reads and writes document files with structured errors.
//              Writes go through a temporary file in the target directory
//              and a rename, so readers never see a partial document.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with general file utilities
// - 2026-10-19 v0.2.0: Reduced to document I/O, atomic writes, mdwerror codes

package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

// DefaultPerm is used for newly created files
const DefaultPerm os.FileMode = 0o644

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the entire file. A missing file yields NOT_FOUND, a
// directory or any other failure READ_FAILED.
func ReadFile(path string) ([]byte, error) {
	if IsDir(path) {
		return nil, ioError("read", path, mdwerror.CodeReadFailed, fmt.Errorf("%s is a directory", path))
	}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, mdwerrors.NotFound(mdwerrors.ModuleFilex, "read", path)
	case err != nil:
		return nil, ioError("read", path, mdwerror.CodeReadFailed, err)
	}
	return content, nil
}

// WriteFile replaces the file at path with data. The parent directory must
// exist. An existing file keeps its permissions; a new one gets perm.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return ioError("write", path, mdwerror.CodeWriteFailed, fmt.Errorf("%s is a directory", path))
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return ioError("write", path, mdwerror.CodeWriteFailed, err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data, perm); err != nil {
		os.Remove(tmpName)
		return ioError("write", path, mdwerror.CodeWriteFailed, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ioError("write", path, mdwerror.CodeWriteFailed, err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

func ioError(operation, path string, code mdwerror.Code, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
		Operation(operation).
		Messagef("failed to %s file %s", operation, path).
		Cause(cause).
		Code(code).
		Severity(mdwerror.SeverityHigh).
		Detail("path", path).
		Build()
}
