package config

import (
	"fmt"
	"strings"

	"github.com/2beens/workoutsheet/internal/auth"
	"github.com/2beens/workoutsheet/internal/sheets"

	"github.com/BurntSushi/toml"
)

const (
	SheetBackendGoogle = "google"
	SheetBackendXlsx   = "xlsx"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`

	// spreadsheet
	SheetBackend              string `toml:"sheet_backend"`
	SpreadsheetID             string `toml:"spreadsheet_id"`
	XlsxPath                  string `toml:"xlsx_path"`
	WorksheetsSkip            *int   `toml:"worksheets_skip"`
	WorksheetsMax             int    `toml:"worksheets_max"`
	WorksheetsCacheTTLSeconds int    `toml:"worksheets_cache_ttl_seconds"`

	Users []auth.User `toml:"users"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	var envName string
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg, envName = t.Development, "development"
	case "prod", "production":
		cfg, envName = t.Production, "production"
	case "ddev", "dockerdev":
		cfg, envName = t.DockerDev, "dockerdev"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}

	cfg.Environment = envName
	return cfg, nil
}

// Load reads the config table of the given env from the TOML file, and applies defaults.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse does what Load does, from TOML text.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) WorksheetsSkipOrDefault() int {
	if c.WorksheetsSkip == nil {
		return sheets.DefaultWorksheetsSkip
	}
	return *c.WorksheetsSkip
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.SheetBackend == "" {
		c.SheetBackend = SheetBackendGoogle
	}
	if c.WorksheetsMax == 0 {
		c.WorksheetsMax = sheets.DefaultWorksheetsMax
	}
	if c.WorksheetsCacheTTLSeconds == 0 {
		c.WorksheetsCacheTTLSeconds = 300
	}
}

func (c *Config) Validate() error {
	switch c.SheetBackend {
	case SheetBackendGoogle:
		if c.SpreadsheetID == "" {
			return fmt.Errorf("spreadsheet_id is required with the %s backend", SheetBackendGoogle)
		}
		for _, u := range c.Users {
			if u.CredentialsFile == "" {
				return fmt.Errorf("user %s: credentials_file is required with the %s backend", u.Username, SheetBackendGoogle)
			}
		}
	case SheetBackendXlsx:
		if c.XlsxPath == "" {
			return fmt.Errorf("xlsx_path is required with the %s backend", SheetBackendXlsx)
		}
	default:
		return fmt.Errorf("unknown sheet backend: %s", c.SheetBackend)
	}

	if c.WorksheetsSkipOrDefault() < 0 || c.WorksheetsMax < 0 {
		return fmt.Errorf("worksheets window must not be negative")
	}
	if len(c.Users) == 0 {
		return fmt.Errorf("no users configured")
	}

	return nil
}
