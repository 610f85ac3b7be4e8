package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	mdwconfig "github.com/msto63/sigfig/foundation/core/config"
)

// EnvPrefix prefixes every environment override (SIGFIG_HTTP_PORT, ...)
const EnvPrefix = "SIGFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Precision PrecisionConfig `toml:"precision" yaml:"precision"`
	History   HistoryConfig   `toml:"history" yaml:"history"`
	HTTP      HTTPConfig      `toml:"http" yaml:"http"`
	GRPC      GRPCConfig      `toml:"grpc" yaml:"grpc"`
	TUI       TUIConfig       `toml:"tui" yaml:"tui"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// PrecisionConfig holds rounding and evaluation settings
type PrecisionConfig struct {
	RoundingMode        string `toml:"rounding_mode" yaml:"rounding_mode"`
	MaxExpressionLength int    `toml:"max_expression_length" yaml:"max_expression_length"`
}

// HistoryConfig holds history store settings
type HistoryConfig struct {
	Enabled    bool   `toml:"enabled" yaml:"enabled"`
	Path       string `toml:"path" yaml:"path"`
	MaxEntries int    `toml:"max_entries" yaml:"max_entries"`
}

// HTTPConfig holds the HTTP/JSON API settings
type HTTPConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

// GRPCConfig holds the gRPC API settings
type GRPCConfig struct {
	Host       string `toml:"host" yaml:"host"`
	Port       int    `toml:"port" yaml:"port"`
	Reflection bool   `toml:"reflection" yaml:"reflection"`
}

// TUIConfig holds keypad settings
type TUIConfig struct {
	Theme string `toml:"theme" yaml:"theme"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{History: HistoryConfig{Enabled: true}}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := &Config{History: HistoryConfig{Enabled: true}, path: path}
	if err := mdwconfig.Decode(path, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	cfg.expandEnvVars()

	return cfg, nil
}

// LoadFromEnv loads the file named by SIGFIG_CONFIG or the first file found
// in the standard locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}
	if path, err := mdwconfig.DefaultSearchPath().Find(); err == nil {
		return Load(path)
	}
	return Default(), nil
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "sigfig"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = defaultDataDir()
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Precision
	if c.Precision.RoundingMode == "" {
		c.Precision.RoundingMode = "half_up"
	}
	if c.Precision.MaxExpressionLength == 0 {
		c.Precision.MaxExpressionLength = 4096
	}

	// History
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "history.db")
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 40
	}

	// HTTP
	if c.HTTP.Host == "" {
		c.HTTP.Host = "127.0.0.1"
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeout.Duration == 0 {
		c.HTTP.ReadTimeout.Duration = 10 * time.Second
	}
	if c.HTTP.WriteTimeout.Duration == 0 {
		c.HTTP.WriteTimeout.Duration = 30 * time.Second
	}
	if c.HTTP.ShutdownTimeout.Duration == 0 {
		c.HTTP.ShutdownTimeout.Duration = 5 * time.Second
	}

	// gRPC
	if c.GRPC.Host == "" {
		c.GRPC.Host = "127.0.0.1"
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = 9090
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = "dark"
	}
}

// applyEnv applies SIGFIG_* environment overrides using the key mapping of
// mdwconfig.Env (history.max_entries -> SIGFIG_HISTORY_MAX_ENTRIES).
func (c *Config) applyEnv() {
	env := mdwconfig.NewEnv(EnvPrefix)

	c.General.DataDir = env.String("general.data_dir", c.General.DataDir)
	c.General.LogLevel = env.String("general.log_level", c.General.LogLevel)
	c.General.LogFormat = env.String("general.log_format", c.General.LogFormat)
	c.General.LogFile = env.String("general.log_file", c.General.LogFile)

	c.Precision.RoundingMode = env.String("precision.rounding_mode", c.Precision.RoundingMode)
	c.Precision.MaxExpressionLength = env.Int("precision.max_expression_length", c.Precision.MaxExpressionLength)

	c.History.Enabled = env.Bool("history.enabled", c.History.Enabled)
	c.History.Path = env.String("history.path", c.History.Path)
	c.History.MaxEntries = env.Int("history.max_entries", c.History.MaxEntries)

	c.HTTP.Host = env.String("http.host", c.HTTP.Host)
	c.HTTP.Port = env.Int("http.port", c.HTTP.Port)
	c.HTTP.ReadTimeout.Duration = env.Duration("http.read_timeout", c.HTTP.ReadTimeout.Duration)
	c.HTTP.WriteTimeout.Duration = env.Duration("http.write_timeout", c.HTTP.WriteTimeout.Duration)
	c.HTTP.ShutdownTimeout.Duration = env.Duration("http.shutdown_timeout", c.HTTP.ShutdownTimeout.Duration)
	c.HTTP.AllowedOrigins = env.StringSlice("http.allowed_origins", c.HTTP.AllowedOrigins)

	c.GRPC.Host = env.String("grpc.host", c.GRPC.Host)
	c.GRPC.Port = env.Int("grpc.port", c.GRPC.Port)
	c.GRPC.Reflection = env.Bool("grpc.reflection", c.GRPC.Reflection)

	c.TUI.Theme = env.String("tui.theme", c.TUI.Theme)
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// HTTPAddress returns host:port of the HTTP API
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// GRPCAddress returns host:port of the gRPC API
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.GRPC.Host, c.GRPC.Port)
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "sigfig")
	}
	return "./data"
}
