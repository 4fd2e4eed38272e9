// Package config loads the server's settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/redis"
)

// Applied-store backends
const (
	AppliedBackendRedis  = "redis"
	AppliedBackendSQLite = "sqlite"
	AppliedBackendMemory = "memory"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full server configuration
type Config struct {
	Port      int    `env:"TTAP_PORT"       envDefault:"50051"`
	LogLevel  string `env:"TTAP_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"TTAP_LOG_FORMAT" envDefault:"text"`

	Redis RedisConfig

	AppliedBackend string `env:"TTAP_APPLIED_BACKEND" envDefault:"redis"`
	SQLitePath     string `env:"TTAP_SQLITE_PATH"     envDefault:"applied.db"`

	// Empty paths use the embedded data files
	TablesPath  string `env:"TTAP_TABLES_PATH"`
	CatalogPath string `env:"TTAP_CATALOG_PATH"`

	InboxCapacity     int `env:"TTAP_INBOX_CAPACITY"      envDefault:"100"`
	VictoryLocationID int `env:"TTAP_VICTORY_LOCATION_ID" envDefault:"4500"`
}

// RedisConfig selects the redis topology
type RedisConfig struct {
	Mode       string `env:"TTAP_REDIS_MODE"      envDefault:"single"`
	Endpoints  string `env:"TTAP_REDIS_ENDPOINTS" envDefault:"localhost:6379"`
	MasterName string `env:"TTAP_REDIS_MASTER"`
	UseTLS     bool   `env:"TTAP_REDIS_TLS"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("logLevel", err.Error())
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("logFormat", "must be %q or %q", LogFormatText, LogFormatJSON)
	}

	switch c.Redis.Mode {
	case redis.ModeSingle, redis.ModeCluster:
	case redis.ModeSentinel:
		if c.Redis.MasterName == "" {
			vb.Fieldf("redis.masterName", "is required in sentinel mode")
		}
	default:
		vb.Fieldf("redis.mode", "unknown mode %q", c.Redis.Mode)
	}
	// toons always live in redis
	if strings.TrimSpace(c.Redis.Endpoints) == "" {
		vb.RequiredField("redis.endpoints")
	}

	switch c.AppliedBackend {
	case AppliedBackendRedis, AppliedBackendMemory:
	case AppliedBackendSQLite:
		errors.ValidateRequired("sqlitePath", c.SQLitePath, vb)
	default:
		vb.Fieldf("appliedBackend", "unknown backend %q", c.AppliedBackend)
	}

	errors.ValidateNonNegative("inboxCapacity", c.InboxCapacity, vb)
	errors.ValidateNonNegative("victoryLocationID", c.VictoryLocationID, vb)

	return vb.Build()
}

// Logger builds the process logger described by the config
func (c *Config) Logger() *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
