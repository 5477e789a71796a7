// Package config loads application settings from a YAML file and
// SEARCHCONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/apimgr/searchconv/src/bangs"
	"github.com/apimgr/searchconv/src/database"
	"github.com/apimgr/searchconv/src/logging"
	"github.com/apimgr/searchconv/src/model"
	"github.com/apimgr/searchconv/src/paths"
	"github.com/apimgr/searchconv/src/store"
)

// EnvPrefix prefixes environment overrides: SEARCHCONV_SERVER_PORT etc.
const EnvPrefix = "SEARCHCONV"

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Address         string        `yaml:"address" mapstructure:"address"`
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	Metrics         bool          `yaml:"metrics" mapstructure:"metrics"`
}

// Addr returns host:port for net.Listen
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// HistoryConfig controls conversion history
type HistoryConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	Limit   int  `yaml:"limit" mapstructure:"limit"` // default rows for `history list`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // plain, json, table
	Color  string `yaml:"color" mapstructure:"color"`   // auto, always, never
}

// Config is the full application configuration
type Config struct {
	Server   ServerConfig    `yaml:"server" mapstructure:"server"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	Store    store.Config    `yaml:"store" mapstructure:"store"`
	History  HistoryConfig   `yaml:"history" mapstructure:"history"`
	Logging  logging.Config  `yaml:"logging" mapstructure:"logging"`
	Output   OutputConfig    `yaml:"output" mapstructure:"output"`
	Bangs    []*bangs.Bang   `yaml:"bangs" mapstructure:"bangs"`
}

// Default returns the built-in configuration
func Default() *Config {
	db := database.DefaultConfig()
	db.DSN = paths.DatabaseFile()

	return &Config{
		Server: ServerConfig{
			Address:         "127.0.0.1",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Metrics:         true,
		},
		Database: *db,
		Store:    *store.DefaultConfig(),
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
		Logging: logging.DefaultConfig(),
		Output: OutputConfig{
			Format: "plain",
			Color:  "auto",
		},
	}
}

// SetDefaults registers every default with v so that environment variables
// can override keys that are absent from the file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.metrics", d.Server.Metrics)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.dsn", d.Database.DSN)
	v.SetDefault("database.max_open", d.Database.MaxOpen)
	v.SetDefault("database.max_idle", d.Database.MaxIdle)
	v.SetDefault("database.lifetime", d.Database.Lifetime)

	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.redis.url", d.Store.Redis.URL)
	v.SetDefault("store.redis.address", d.Store.Redis.Address)
	v.SetDefault("store.redis.password", d.Store.Redis.Password)
	v.SetDefault("store.redis.db", d.Store.Redis.DB)
	v.SetDefault("store.redis.timeout", d.Store.Redis.Timeout)
	v.SetDefault("store.redis.prefix", d.Store.Redis.Prefix)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.limit", d.History.Limit)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_files", d.Logging.MaxFiles)
	v.SetDefault("logging.stderr", d.Logging.Stderr)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
}

// NewViper returns a viper instance with defaults, environment overrides
// and the config file (when present) loaded. It also returns the resolved
// config file path.
func NewViper(cfgFile string) (*viper.Viper, string, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := paths.ResolveConfigPath(cfgFile)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("%w: read %s: %v", model.ErrInvalidConfig, path, err)
		}
	}
	return v, path, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	cfg.Database.DSN = expandSQLitePath(cfg.Database)
	cfg.Logging.File = paths.ExpandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func expandSQLitePath(db database.Config) string {
	if database.NormalizeDriver(db.Driver) == database.DriverSQLite {
		return paths.ExpandHome(db.DSN)
	}
	return db.DSN
}

// NeedsDatabase reports whether any enabled component uses SQL.
func (c *Config) NeedsDatabase() bool {
	return c.Store.Backend == store.BackendSQL || c.History.Enabled
}

// Validate checks every field with a closed set of values
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range 1-65535", c.Server.Port))
	}

	switch c.Store.Backend {
	case store.BackendMemory, store.BackendSQL, store.BackendRedis:
	default:
		problems = append(problems, fmt.Sprintf("store.backend %q (want memory, sql or redis)", c.Store.Backend))
	}

	if c.NeedsDatabase() && !database.IsSupportedDriver(c.Database.Driver) {
		problems = append(problems, fmt.Sprintf("database.driver %q (want sqlite, libsql, postgres, mysql or mssql)", c.Database.Driver))
	}

	if c.History.Limit < 1 {
		problems = append(problems, fmt.Sprintf("history.limit %d must be positive", c.History.Limit))
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, "logging.level: "+err.Error())
	}

	switch c.Output.Format {
	case "plain", "json", "table":
	default:
		problems = append(problems, fmt.Sprintf("output.format %q (want plain, json or table)", c.Output.Format))
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		problems = append(problems, fmt.Sprintf("output.color %q (want auto, always or never)", c.Output.Color))
	}

	for i, b := range c.Bangs {
		if b == nil || b.Shortcut == "" || b.EngineID == "" {
			problems = append(problems, fmt.Sprintf("bangs[%d] needs shortcut and engine", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", model.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
