// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Tests for config loading and scheme table conversion.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(cfg.Schemes) != 0 {
		t.Errorf("expected no configured schemes, got %d", len(cfg.Schemes))
	}
	if cfg.History.Path == "" {
		t.Error("expected a default history path")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"schemes": [
			{"scheme": "gemini"},
			{"scheme": "sip", "opaque": true}
		],
		"history": {"path": "/tmp/links.db"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if len(cfg.Schemes) != 2 {
		t.Fatalf("expected 2 schemes, got %d", len(cfg.Schemes))
	}
	if cfg.Schemes[1].Scheme != "sip" || !cfg.Schemes[1].Opaque {
		t.Errorf("expected opaque sip, got %+v", cfg.Schemes[1])
	}
	if cfg.History.Path != "/tmp/links.db" {
		t.Errorf("expected history path override, got %q", cfg.History.Path)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSchemeTable(t *testing.T) {
	var cfg Config
	if got := cfg.SchemeTable(); len(got) == 0 {
		t.Error("expected built-in table when no schemes configured")
	}

	cfg.Schemes = []SchemeConfig{{Scheme: "gemini"}, {Scheme: "sip", Opaque: true}}
	table := cfg.SchemeTable()
	if len(table) != 2 {
		t.Fatalf("expected 2 schemes, got %d", len(table))
	}
	if table[0].Name != "gemini" || table[0].Opaque {
		t.Errorf("expected hierarchical gemini first, got %+v", table[0])
	}
	if table[1].Name != "sip" || !table[1].Opaque {
		t.Errorf("expected opaque sip, got %+v", table[1])
	}
}
