package config

import (
	"testing"

	"nsfgrants/internal/model"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true in a fresh config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultYear != model.LastYear {
		t.Errorf("DefaultYear = %d, want %d", cfg.General.DefaultYear, model.LastYear)
	}
	if len(cfg.General.Years) != model.LastYear-model.FirstYear+1 {
		t.Errorf("Years = %v", cfg.General.Years)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/srv/nsf"
	cfg.General.DefaultYear = 2023
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DataDir != "/srv/nsf" || got.General.DefaultYear != 2023 {
		t.Errorf("general section: %+v", got.General)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q", got.Appearance.Theme)
	}
	if got.Files.Terminations != cfg.Files.Terminations {
		t.Errorf("Terminations = %q", got.Files.Terminations)
	}
}
