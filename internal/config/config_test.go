package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/refhub/internal/view"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HubsDir != "hubs" {
		t.Errorf("expected default hubs_dir %q, got %q", "hubs", cfg.HubsDir)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Search.ClearOnSectionChange {
		t.Error("search should be kept across section changes by default")
	}
}

func TestDefaultConfigDoesNotShareSlices(t *testing.T) {
	a := DefaultConfig()
	a.Include[0] = "changed"
	if DefaultInclude[0] == "changed" {
		t.Error("DefaultConfig must copy DefaultInclude")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.refhub.yml")

	original := DefaultConfig()
	original.HubsDir = "references"
	original.SiteTitle = "Hubs"
	original.Include = []string{"**/*.yml"}
	original.Search.ClearOnSectionChange = true
	original.Search.Fields = []string{"title", "type"}
	original.Server.Port = 9000

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.HubsDir != original.HubsDir {
		t.Errorf("hubs_dir: got %q, want %q", loaded.HubsDir, original.HubsDir)
	}
	if loaded.SiteTitle != original.SiteTitle {
		t.Errorf("site_title: got %q, want %q", loaded.SiteTitle, original.SiteTitle)
	}
	if !loaded.Search.ClearOnSectionChange {
		t.Error("clear_on_section_change: got false, want true")
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if len(loaded.Include) != 1 || loaded.Include[0] != "**/*.yml" {
		t.Errorf("include: got %v, want [**/*.yml]", loaded.Include)
	}
	if len(loaded.Search.Fields) != 2 || loaded.Search.Fields[1] != "type" {
		t.Errorf("search.fields: got %v", loaded.Search.Fields)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.HubsDir != "hubs" {
		t.Errorf("expected default hubs_dir, got %q", cfg.HubsDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("REFHUB_HUBS_DIR", "elsewhere")
	t.Setenv("REFHUB_SERVER__PORT", "9191")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.HubsDir != "elsewhere" {
		t.Errorf("env override failed: got %q, want %q", loaded.HubsDir, "elsewhere")
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("nested env override failed: got %d, want 9191", loaded.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("hubs_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty hubs dir", func(c *Config) { c.HubsDir = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"unknown search field", func(c *Config) { c.Search.Fields = []string{"url"} }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.ClearOnSectionChange = true
	cfg.Search.Fields = []string{"title", "level"}

	p, err := cfg.Policy()
	if err != nil {
		t.Fatalf("Policy: %v", err)
	}
	if !p.ClearSearchOnSectionChange {
		t.Error("ClearSearchOnSectionChange not carried over")
	}
	if len(p.Fields) != 2 || p.Fields[1] != view.FieldLevel {
		t.Errorf("fields = %v", p.Fields)
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "8080", " 65535 "} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "abc", "0", "70000"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.yml", []string{"**/*.yml"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
