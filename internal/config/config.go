// Package config loads and persists the nsfgrants TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"nsfgrants/internal/model"
)

// Config holds all nsfgrants configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Files      FilesConfig      `toml:"files"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir     string `toml:"data_dir"`
	DefaultYear int    `toml:"default_year"`
	Years       []int  `toml:"years,omitempty"` // expected yearly exports
}

// FilesConfig names the input and output files inside the data directory.
type FilesConfig struct {
	Terminations string `toml:"terminations"`
	Election2020 string `toml:"election_2020"`
	Election2024 string `toml:"election_2024"`
	CleanOutput  string `toml:"clean_output"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	years := make([]int, 0, model.LastYear-model.FirstYear+1)
	for y := model.FirstYear; y <= model.LastYear; y++ {
		years = append(years, y)
	}
	return Config{
		General: GeneralConfig{
			DataDir:     ".",
			DefaultYear: model.LastYear,
			Years:       years,
		},
		Files: FilesConfig{
			Terminations: "NSF-Terminated-Awards.csv",
			Election2020: "election_2020.csv",
			Election2024: "election_2024.csv",
			CleanOutput:  "nsf_data_clean.csv",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nsfgrants")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nsfgrants")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.General.Years) == 0 {
		cfg.General.Years = DefaultConfig().General.Years
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
