// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/awiki/markdown/highlight"
)

// A Theme is the color scheme of rendered pages.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system" // follow the reader's preference
)

func (t Theme) valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Dark resolves t to a dark flag.
// For [ThemeSystem], hint is the reader's preferred scheme,
// as sent in the Sec-CH-Prefers-Color-Scheme header.
func (t Theme) Dark(hint string) bool {
	switch t {
	case ThemeDark:
		return true
	case ThemeSystem:
		return hint == "dark"
	}
	return false
}

// ResolveTheme returns the dark flag for a request that asked for
// theme override (possibly empty) and sent the color scheme hint.
// An unknown override is ignored in favor of def.
func ResolveTheme(def Theme, override, hint string) bool {
	if t := Theme(override); t.valid() {
		return t.Dark(hint)
	}
	return def.Dark(hint)
}

// Config configures a wiki site and its server.
type Config struct {
	Addr               string   `json:"addr"`
	Root               string   `json:"root"`
	SiteName           string   `json:"site_name"`
	Theme              Theme    `json:"theme"`
	Labels             []string `json:"labels"`
	HighlightStyle     string   `json:"highlight_style"`
	HighlightDarkStyle string   `json:"highlight_dark_style"`
}

var defaultConfig = Config{
	Addr:               "localhost:8080",
	Root:               ".",
	SiteName:           "Wiki",
	Theme:              ThemeSystem,
	HighlightStyle:     highlight.DefaultLight,
	HighlightDarkStyle: highlight.DefaultDark,
}

// DefaultConfig returns the configuration used when there is no file.
func DefaultConfig() Config {
	return defaultConfig
}

// LoadConfig reads a JSON configuration from r.
// Fields missing from the JSON keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("wiki: config: %w", err)
	}
	if !cfg.Theme.valid() {
		return Config{}, fmt.Errorf("wiki: config: unknown theme %q", cfg.Theme)
	}
	return cfg, nil
}

// ReadConfig reads the configuration file name.
// An empty name yields [DefaultConfig].
func ReadConfig(name string) (Config, error) {
	if name == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("wiki: config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
