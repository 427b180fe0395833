package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Game.Patience != nil || cfg.CatalogKinds() != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[game]
patience = 30
tray-max = 8
cooldown = "1s"
seed = 99

[[catalog]]
id = "a"
name = "Apple Tart"
symbol = "A"

[[catalog]]
id = "b"
name = "Bun"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Patience == nil || *cfg.Game.Patience != 30 {
		t.Fatalf("unexpected patience: %v", cfg.Game.Patience)
	}
	if cfg.Game.TrayMax == nil || *cfg.Game.TrayMax != 8 {
		t.Fatalf("unexpected tray max: %v", cfg.Game.TrayMax)
	}
	if cfg.Game.Cooldown == nil || *cfg.Game.Cooldown != "1s" {
		t.Fatalf("unexpected cooldown: %v", cfg.Game.Cooldown)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 99 {
		t.Fatalf("unexpected seed: %v", cfg.Game.Seed)
	}
	if cfg.Game.DayLength != nil {
		t.Fatalf("day-length should stay unset")
	}
	kinds := cfg.CatalogKinds()
	if len(kinds) != 2 || kinds[0].Name != "Apple Tart" || kinds[1].Symbol != "" {
		t.Fatalf("unexpected catalog: %+v", kinds)
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\npatience = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "tuicandy", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "tuicandy", "tuicandy.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}
