package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. DOCDESK_BASE_URL.
const EnvPrefix = "DOCDESK"

// Config is the effective client configuration.
type Config struct {
	BaseURL        string        `mapstructure:"base_url"`
	PageSize       int           `mapstructure:"page_size"`
	Debounce       time.Duration `mapstructure:"debounce"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Log            LogConfig     `mapstructure:"log"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
	Tracing        TracingConfig `mapstructure:"tracing"`
}

// LogConfig controls the file logger. The TUI owns the terminal, so an
// empty File discards logs.
type LogConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// MetricsConfig enables the prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// TracingConfig enables OTLP/HTTP trace export when Endpoint is set
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// LoadOptions tells Load where to look besides the environment.
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string
	// EnvFile is loaded into the process environment when present.
	EnvFile string
	// Flags are bound over every other source. Flag names use dashes
	// (base-url) for keys that use underscores (base_url).
	Flags *pflag.FlagSet
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("page_size", 10)
	v.SetDefault("debounce", 500*time.Millisecond)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "docdesk")
}

// Load merges defaults, the config file, the environment and flags, in
// increasing order of precedence, and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// REACT_BASE_URL is what the browser front-end used
	if err := v.BindEnv("base_url", EnvPrefix+"_BASE_URL", "REACT_BASE_URL"); err != nil {
		return nil, err
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile()
		if _, err := os.Stat(configFile); err != nil {
			configFile = ""
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range v.AllKeys() {
			flag := opts.Flags.Lookup(strings.ReplaceAll(strings.ReplaceAll(key, "_", "-"), ".", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfigFile is $XDG_CONFIG_HOME/docdesk/config.yaml or the
// platform equivalent.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".docdesk", "config.yaml")
	}
	return filepath.Join(dir, "docdesk", "config.yaml")
}

// Validate checks the values the client cannot work without
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("invalid page_size %d: must be positive", c.PageSize)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("invalid debounce %s: must not be negative", c.Debounce)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request_timeout %s: must not be negative", c.RequestTimeout)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}
	return nil
}

// Settings returns the configuration as a flat key/value map for display
func (c *Config) Settings() map[string]string {
	return map[string]string{
		"base_url":             c.BaseURL,
		"page_size":            fmt.Sprint(c.PageSize),
		"debounce":             c.Debounce.String(),
		"request_timeout":      c.RequestTimeout.String(),
		"log.file":             c.Log.File,
		"log.level":            c.Log.Level,
		"log.format":           c.Log.Format,
		"metrics.addr":         c.Metrics.Addr,
		"tracing.endpoint":     c.Tracing.Endpoint,
		"tracing.service_name": c.Tracing.ServiceName,
	}
}
