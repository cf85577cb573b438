package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Storage StorageConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FAKESTORE_APP_ENV" default:"dev"`
	Port         string `envconfig:"FAKESTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FAKESTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FAKESTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	BaseURL string `envconfig:"FAKESTORE_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`

	// RequestTimeout of zero keeps the transport's defaults; the upstream
	// demo API has no SLA worth tuning around.
	RequestTimeout time.Duration `envconfig:"FAKESTORE_CATALOG_REQUEST_TIMEOUT" default:"0"`

	// DemoBypass enables the hardcoded test-account login shortcut.
	DemoBypass bool `envconfig:"FAKESTORE_DEMO_BYPASS" default:"true"`
}

type StorageConfig struct {
	// SQLitePath points at the device-local state file. The literal
	// ":memory:" keeps state for the lifetime of the process only.
	SQLitePath string `envconfig:"FAKESTORE_SQLITE_PATH" default:"fakestore_state.db"`
}
