package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Address        string `yaml:"address" env:"RSERV_ADDRESS"`
		ReadBufferSize int    `yaml:"read_buffer_size"`
		BodyTokens     int    `yaml:"body_tokens"`
	} `yaml:"server"`

	Pool struct {
		Workers       int           `yaml:"workers" env:"RSERV_WORKERS"`
		StatsInterval time.Duration `yaml:"stats_interval"`
	} `yaml:"pool"`

	Admin struct {
		Enabled bool   `yaml:"enabled" env:"RSERV_ADMIN_ENABLED"`
		Address string `yaml:"address" env:"RSERV_ADMIN_ADDRESS"`
	} `yaml:"admin"`

	Log struct {
		Level  string `yaml:"level" env:"RSERV_LOG_LEVEL"`
		Format string `yaml:"format" env:"RSERV_LOG_FORMAT"`
	} `yaml:"log"`

	Tracing struct {
		Enabled  bool   `yaml:"enabled" env:"RSERV_TRACING_ENABLED"`
		Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	} `yaml:"tracing"`
}

func Default() *Config {
	var cfg Config
	cfg.Server.Address = "127.0.0.1:13099"
	cfg.Server.ReadBufferSize = 1024
	cfg.Server.BodyTokens = 50
	cfg.Pool.Workers = 16
	cfg.Pool.StatsInterval = 10 * time.Second
	cfg.Admin.Enabled = true
	cfg.Admin.Address = "127.0.0.1:6060"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Tracing.Endpoint = "localhost:4318"
	return &cfg
}

// Load reads the YAML file at path on top of Default, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read yaml")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs error
	if c.Server.Address == "" {
		errs = multierr.Append(errs, errors.New("server.address is empty"))
	}
	if c.Server.ReadBufferSize <= 0 {
		errs = multierr.Append(errs, errors.Errorf("server.read_buffer_size must be positive, got %d", c.Server.ReadBufferSize))
	}
	if c.Server.BodyTokens < 0 {
		errs = multierr.Append(errs, errors.Errorf("server.body_tokens must not be negative, got %d", c.Server.BodyTokens))
	}
	if c.Pool.Workers <= 0 {
		errs = multierr.Append(errs, errors.Errorf("pool.workers must be positive, got %d", c.Pool.Workers))
	}
	if c.Pool.StatsInterval <= 0 {
		errs = multierr.Append(errs, errors.Errorf("pool.stats_interval must be positive, got %s", c.Pool.StatsInterval))
	}
	if c.Admin.Enabled && c.Admin.Address == "" {
		errs = multierr.Append(errs, errors.New("admin.address is empty"))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = multierr.Append(errs, errors.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errs
}
