// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wiki

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`{"theme": "dark", "labels": ["Site:"], "site_name": "Docs"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Theme = ThemeDark
	want.Labels = []string{"Site:"}
	want.SiteName = "Docs"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, in := range []string{`{"theme": "sepia"}`, `{"addr": 8080}`, `[`} {
		if _, err := LoadConfig(strings.NewReader(in)); err == nil {
			t.Errorf("LoadConfig(%s) succeeded", in)
		}
	}
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("ReadConfig(\"\") mismatch (-want +got):\n%s", diff)
	}

	name := filepath.Join(t.TempDir(), "wiki.json")
	if err := os.WriteFile(name, []byte(`{"addr": ":9000"}`), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err = ReadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.Root != "." {
		t.Errorf("ReadConfig(%s) = %+v", name, cfg)
	}

	if _, err := ReadConfig(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Errorf("ReadConfig(missing file) succeeded")
	}
}

var themeTests = []struct {
	def      Theme
	override string
	hint     string
	dark     bool
}{
	{ThemeLight, "", "dark", false},
	{ThemeDark, "", "", true},
	{ThemeSystem, "", "dark", true},
	{ThemeSystem, "", "light", false},
	{ThemeSystem, "", "", false},
	{ThemeLight, "dark", "", true},
	{ThemeDark, "light", "dark", false},
	{ThemeLight, "system", "dark", true},
	{ThemeDark, "sepia", "", true},
}

func TestResolveTheme(t *testing.T) {
	for _, tt := range themeTests {
		if dark := ResolveTheme(tt.def, tt.override, tt.hint); dark != tt.dark {
			t.Errorf("ResolveTheme(%s, %q, %q) = %v, want %v", tt.def, tt.override, tt.hint, dark, tt.dark)
		}
	}
}
