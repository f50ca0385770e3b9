// File: filex_test.go
// Title: Document File Access Tests
// Description: Tests for error-coded reads, atomic writes and size formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Tests for document I/O

package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	mdwerror "github.com/msto63/mdwkit/foundation/core/error"
)

func TestExistsAndKinds(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path                  string
		exists, isFile, isDir bool
	}{
		{file, true, true, false},
		{dir, true, false, true},
		{filepath.Join(dir, "absent"), false, false, false},
	}

	for _, tt := range tests {
		if got := Exists(tt.path); got != tt.exists {
			t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.exists)
		}
		if got := IsFile(tt.path); got != tt.isFile {
			t.Errorf("IsFile(%s) = %v, want %v", tt.path, got, tt.isFile)
		}
		if got := IsDir(tt.path); got != tt.isDir {
			t.Errorf("IsDir(%s) = %v, want %v", tt.path, got, tt.isDir)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(file, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(file)
	if err != nil || string(data) != "a: 1\n" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	_, err = ReadFile(filepath.Join(dir, "absent.yaml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}

	_, err = ReadFile(dir)
	if !mdwerror.HasCode(err, mdwerror.CodeReadFailed) {
		t.Errorf("directory error = %v, want READ_FAILED", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.toml")

	if err := WriteFile(target, []byte("a = 1\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := WriteFile(target, []byte("a = 2\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile() overwrite error: %v", err)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "a = 2\n" {
		t.Errorf("content = %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteFileKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on windows")
	}

	target := filepath.Join(t.TempDir(), "secret.yaml")
	if err := os.WriteFile(target, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(target, []byte("y"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil || info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, %v; want 0600", info.Mode().Perm(), err)
	}
}

func TestWriteFileErrors(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, []byte("x"), DefaultPerm)
	if !mdwerror.HasCode(err, mdwerror.CodeWriteFailed) {
		t.Errorf("directory target error = %v, want WRITE_FAILED", err)
	}

	err = WriteFile(filepath.Join(dir, "missing", "out.json"), []byte("x"), DefaultPerm)
	if !mdwerror.HasCode(err, mdwerror.CodeWriteFailed) {
		t.Errorf("missing parent error = %v, want WRITE_FAILED", err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
