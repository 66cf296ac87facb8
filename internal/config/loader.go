package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is tried when neither a flag nor CONFIG_PATH names a file.
const defaultPath = "./config.yaml"

// Load resolves the config file from CONFIG_PATH and delegates to LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads configuration with priority ENV > YAML > env-default tags,
// then validates it. An empty path falls back to ./config.yaml when that file
// exists and to ENV plus defaults otherwise; a non-empty path must exist.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("config: read env: %w", err)
			}
			return nil
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
