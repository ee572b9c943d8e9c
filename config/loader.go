package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = 8080
	DefaultSearchURL  = "https://catalog.data.metro.tokyo.lg.jp/api/3/action/package_search"
	DefaultSearchTerm = "収集日"
	DefaultTitleHint  = "収集"
	DefaultRows       = 10
	DefaultTimeoutMS  = 10000
	DefaultDownloadMS = 15000
	DefaultMaxBytes   = 32 << 20
	DefaultSamplesDir = "public/data/samples"
)

// Environment overrides
const (
	EnvPort       = "GOMI_PORT"
	EnvCatalogURL = "GOMI_CATALOG_URL"
	EnvRows       = "GOMI_CATALOG_ROWS"
	EnvTimeoutMS  = "GOMI_TIMEOUT_MS"
	EnvSamplesDir = "GOMI_SAMPLES_DIR"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are searched when no explicit config path is given.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: DefaultPort, SamplesDir: DefaultSamplesDir},
		Catalog: CatalogConfig{
			SearchURL:  DefaultSearchURL,
			SearchTerm: DefaultSearchTerm,
			TitleHint:  DefaultTitleHint,
			Rows:       DefaultRows,
			TimeoutMS:  DefaultTimeoutMS,
		},
		Download: DownloadConfig{TimeoutMS: DefaultDownloadMS, MaxBytes: DefaultMaxBytes},
	}
}

// LoadAppConfig loads, overrides and validates the configuration and stores
// it in Config. An empty path searches DefaultPaths and falls back to the
// built-in defaults when none exists; an explicit path must exist.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load is LoadAppConfig without touching the global.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvCatalogURL)); v != "" {
		cfg.Catalog.SearchURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRows)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRows, err)
		}
		cfg.Catalog.Rows = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutMS)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeoutMS, err)
		}
		cfg.Catalog.TimeoutMS = n
		cfg.Download.TimeoutMS = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvSamplesDir)); v != "" {
		cfg.Server.SamplesDir = v
	}
	return nil
}
