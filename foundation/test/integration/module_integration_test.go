// File: module_integration_test.go
// Title: mdwkit Foundation Module Integration Tests
// Description: Data flow between config, filex, valuex and stringx.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of integration tests
// - 2026-10-19 v0.2.0: Rebuilt for config, valuex and stringx

package integration

import (
	"path/filepath"
	"testing"

	"github.com/msto63/mdwkit/foundation/core/config"
	"github.com/msto63/mdwkit/foundation/utils/filex"
	"github.com/msto63/mdwkit/foundation/utils/stringx"
	"github.com/msto63/mdwkit/foundation/utils/valuex"
)

const serviceDoc = `service:
  name: Straßenbahn Köln
  ports: [80, 443]
  labels:
    tier: edge
`

func TestConfigTreeIsIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	if err := filex.WriteFile(path, []byte(serviceDoc), filex.DefaultPerm); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tree := cfg.GetAll()
	if err := valuex.Set(tree, "service.labels.tier", "core"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := valuex.Set(tree, "service.ports[0]", int64(8080)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if got := cfg.GetString("service.labels.tier"); got != "edge" {
		t.Errorf("config changed through GetAll copy: tier = %q", got)
	}
	if got := cfg.GetInt("service.ports[0]"); got != 80 {
		t.Errorf("config changed through GetAll copy: port = %d", got)
	}
}

func TestDocumentCloneRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "service.yaml")
	dst := filepath.Join(dir, "service.toml")
	if err := filex.WriteFile(src, []byte(serviceDoc), filex.DefaultPerm); err != nil {
		t.Fatal(err)
	}

	data, err := filex.ReadFile(src)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	format, ok := valuex.FormatFromPath(src)
	if !ok {
		t.Fatalf("FormatFromPath(%s) failed", src)
	}
	doc, err := valuex.Decode(data, format)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	dup, err := valuex.Clone(doc)
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	if err := valuex.Set(dup, "service.name", "Bahn"); err != nil {
		t.Fatal(err)
	}

	out, err := valuex.Encode(dup, valuex.FormatTOML)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if err := filex.WriteFile(dst, out, filex.DefaultPerm); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(dst)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.GetString("service.name"); got != "Bahn" {
		t.Errorf("written name = %q, want Bahn", got)
	}
	if name, _ := valuex.Get(doc, "service.name"); name != "Straßenbahn Köln" {
		t.Errorf("source document changed: %v", name)
	}
}

func TestTextOperationsOnConfiguredValues(t *testing.T) {
	cfg, err := config.LoadFromString(serviceDoc, valuex.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	name := cfg.GetString("service.name")

	if got := stringx.CharCount(name); got != 16 {
		t.Errorf("CharCount(%q) = %d, want 16", name, got)
	}
	if got := stringx.Truncate(name, 6); got != "Straße…" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := stringx.ReplaceAllCaseInsensitive(name, "KÖLN", "Bonn"); got != "Straßenbahn Bonn" {
		t.Errorf("ReplaceAllCaseInsensitive() = %q", got)
	}
}
