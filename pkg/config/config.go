package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath = "moveset.toml"

	EnvPath     = "MOVESET_CONFIG"
	EnvAPIURL   = "MOVESET_API_URL"
	EnvDBPath   = "MOVESET_DB_PATH"
	EnvLogLevel = "MOVESET_LOG_LEVEL"
)

type Config struct {
	API struct {
		BaseURL   string        `toml:"base_url"`
		Timeout   time.Duration `toml:"timeout"`
		UserAgent string        `toml:"user_agent"`
	} `toml:"api"`
	DB struct {
		Path string `toml:"path"`
	} `toml:"database"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Telemetry struct {
		Enabled  bool   `toml:"enabled"`
		Endpoint string `toml:"endpoint"`
	} `toml:"telemetry"`
}

func Default() Config {
	var cfg Config
	cfg.API.BaseURL = "https://pokeapi.co/api/v2"
	cfg.API.Timeout = 10 * time.Second
	cfg.API.UserAgent = "moveset"
	cfg.Log.Level = "info"

	return cfg
}

// Read decodes the file at path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Read(path string) (Config, error) {
	cfg := Default()

	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not decode config %q: %w", path, err)
	}

	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		cfg.API.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		cfg.DB.Path = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}

	return cfg, nil
}

// Path is the config file to read: $MOVESET_CONFIG if set, DefaultPath otherwise.
func Path() string {
	if v := os.Getenv(EnvPath); v != "" {
		return v
	}

	return DefaultPath
}
