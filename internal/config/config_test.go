package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.TrendDays != 30 {
		t.Fatalf("TrendDays = %d, want default 30", cfg.General.TrendDays)
	}
	if cfg.General.CurrencySymbol != "¥" {
		t.Fatalf("CurrencySymbol = %q, want default", cfg.General.CurrencySymbol)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want default", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists = true before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.TrendDays = 14
	cfg.General.CurrencySymbol = "$"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round-trip mismatch: %+v != %+v", got, cfg)
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	t.Setenv("INCOMEBOOK_DATA_DIR", "")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "incomebook") {
		t.Fatalf("DataDir = %q, want XDG data dir", got)
	}

	cfg.General.DataDir = "/srv/ledger"
	if got := DataDir(cfg); got != "/srv/ledger" {
		t.Fatalf("DataDir = %q, want configured dir", got)
	}

	t.Setenv("INCOMEBOOK_DATA_DIR", "/mnt/override")
	if got := DataDir(cfg); got != "/mnt/override" {
		t.Fatalf("DataDir = %q, want env override", got)
	}

	if got := DBPath(cfg); got != filepath.Join("/mnt/override", "incomebook.db") {
		t.Fatalf("DBPath = %q", got)
	}
}
