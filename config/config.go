// Copyright © 2025 Ghostty-web contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Optional JSON configuration for the link engine and tools.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HageMaster3108/ghostty-web/links"
)

// SchemeConfig declares one recognized scheme in the config file.
type SchemeConfig struct {
	Scheme string `json:"scheme"`
	Opaque bool   `json:"opaque"`
}

// HistoryConfig holds link-history settings.
type HistoryConfig struct {
	Path string `json:"path"`
}

// Config is the root of the JSON configuration. A zero Schemes slice means
// "use the built-in table"; the scheme set is a design parameter, not a
// hard-coded constant.
type Config struct {
	Schemes []SchemeConfig `json:"schemes"`
	History HistoryConfig  `json:"history"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{History: HistoryConfig{Path: defaultHistoryPath()}}
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "links.db"
	}
	return filepath.Join(dir, "ghostty-web", "links.db")
}

// Load reads the configuration at path. A missing file yields Default with
// no error; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// SchemeTable converts the configured schemes to the engine's table,
// falling back to the built-in set when none are configured. Configured
// order is preserved, so longer literals should be listed first.
func (c Config) SchemeTable() []links.Scheme {
	if len(c.Schemes) == 0 {
		return links.DefaultSchemes
	}
	table := make([]links.Scheme, 0, len(c.Schemes))
	for _, s := range c.Schemes {
		table = append(table, links.Scheme{Name: s.Scheme, Opaque: s.Opaque})
	}
	return table
}
