package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from an optional YAML
// file with environment overrides on top. LLM settings live in their own
// env-only config (see the llm package).
type Config struct {
	DBPath   string `yaml:"db_path"`
	Timezone string `yaml:"timezone"`

	Today   TodayConfig   `yaml:"today"`
	Journal JournalConfig `yaml:"journal"`
	Images  ImagesConfig  `yaml:"images"`
}

type TodayConfig struct {
	Limit    int `yaml:"limit"`
	CoachTop int `yaml:"coach_top"`
}

type JournalConfig struct {
	TrendDays int `yaml:"trend_days"`
}

type ImagesConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Default returns the built-in configuration. The DB path stays empty here;
// it resolves to ~/.aurum/aurum.db at load time.
func Default() Config {
	return Config{
		Timezone: "UTC",
		Today: TodayConfig{
			Limit:    50,
			CoachTop: 3,
		},
		Journal: JournalConfig{
			TrendDays: 30,
		},
	}
}

// Load reads config from path, or from ~/.aurum/config.yaml when path is
// empty. A missing file yields defaults, not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("AURUM_CONFIG")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".aurum", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fine, run on defaults
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AURUM_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("AURUM_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("AURUM_IMAGES_DIR"); v != "" {
		cfg.Images.OutputDir = v
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}
	if cfg.Today.Limit <= 0 {
		cfg.Today.Limit = def.Today.Limit
	}
	if cfg.Today.CoachTop <= 0 {
		cfg.Today.CoachTop = def.Today.CoachTop
	}
	if cfg.Journal.TrendDays <= 0 {
		cfg.Journal.TrendDays = def.Journal.TrendDays
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".aurum", "aurum.db")
		}
	}
	if cfg.Images.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Images.OutputDir = filepath.Join(home, ".aurum", "images")
		}
	}
}
