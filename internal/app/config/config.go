package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr  = ":5003"
	defaultDebugAddr = ":5004"

	defaultDBHost = "localhost"
	defaultDBPort = 5432
	defaultDBName = "health_metrics"
	defaultDBUser = "postgres"
	defaultDBPass = "postgres"

	defaultDBRequestTimeout         = 5 * time.Second
	defaultDBConnectionPoolCapacity = 8
)

type Config struct {
	Server *Server `yaml:"server"`
}

type CORS struct {
	AllowedOrigins     []string `yaml:"allowed_origins"`
	AllowedMethods     []string `yaml:"allowed_methods"`
	AllowedHeaders     []string `yaml:"allowed_headers"`
	ExposedHeaders     []string `yaml:"exposed_headers"`
	AllowCredentials   bool     `yaml:"allow_credentials"`
	MaxAge             int      `yaml:"max_age"`
	OptionsPassthrough bool     `yaml:"options_passthrough"`
}

type DB struct {
	Name                   string        `yaml:"name"`
	Host                   string        `yaml:"host"`
	Port                   int64         `yaml:"port"`
	Pass                   string        `yaml:"pass"`
	User                   string        `yaml:"user"`
	RequestTimeout         time.Duration `yaml:"request_timeout"`
	ConnectionPoolCapacity int64         `yaml:"connection_pool_capacity"`
	UsePreparedStatements  *bool         `yaml:"use_prepared_statements,omitempty"`
}

func (db *DB) ConnString() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s pool_max_conns=%d", db.Host, db.Port, db.Name, db.User, db.Pass, db.ConnectionPoolCapacity)
}

type (
	RateLimiter struct {
		RatePerSec   int  `yaml:"rate_per_sec"`
		MaxBurst     int  `yaml:"max_burst"`
		StoreMaxKeys int  `yaml:"store_max_keys"`
		PerHandler   bool `yaml:"per_handler"`
	}

	UserToRateLimiter map[string]RateLimiter

	ApiRateLimiters struct {
		Default      RateLimiter       `yaml:"default"`
		SpecialUsers UserToRateLimiter `yaml:"spec_users"`
	}

	ApiToRateLimiters map[string]ApiRateLimiters
)

type Server struct {
	DebugAddr             string            `yaml:"debug_addr"`
	HTTPAddr              string            `yaml:"http_addr"`
	CORS                  *CORS             `yaml:"cors"`
	HTTPReadHeaderTimeout time.Duration     `yaml:"http_read_header_timeout"`
	HTTPReadTimeout       time.Duration     `yaml:"http_read_timeout"`
	HTTPWriteTimeout      time.Duration     `yaml:"http_write_timeout"`
	DB                    *DB               `yaml:"db"`
	RateLimiters          ApiToRateLimiters `yaml:"rate_limiters"`
}

// Load reads config from cfgPath, or builds one entirely from environment
// variables when cfgPath is empty.
func Load(cfgPath string) (Config, error) {
	if cfgPath == "" {
		cfg := Config{Server: &Server{}}
		applyDefaults(&cfg)
		return cfg, nil
	}
	return FromFile(cfgPath)
}

// FromFile parse config from config path.
func FromFile(cfgPath string) (Config, error) {
	cfgBytes, err := os.ReadFile(cfgPath) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("error reading file: %s", err)
	}

	cfg, err := parse(cfgBytes)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing file: %s", err)
	}

	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	applyDefaults(&cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	srv := cfg.Server

	if srv.HTTPAddr == "" {
		srv.HTTPAddr = defaultHTTPAddr
	}
	if srv.DebugAddr == "" {
		srv.DebugAddr = defaultDebugAddr
	}

	if srv.DB == nil {
		srv.DB = &DB{}
	}
	db := srv.DB
	if db.Host == "" {
		db.Host = envString("DB_HOST", defaultDBHost)
	}
	if db.Port == 0 {
		db.Port = envInt64("DB_PORT", defaultDBPort)
	}
	if db.Name == "" {
		db.Name = envString("DB_NAME", defaultDBName)
	}
	if db.User == "" {
		db.User = envString("DB_USER", defaultDBUser)
	}
	if db.Pass == "" {
		db.Pass = envString("DB_PASS", defaultDBPass)
	}
	if db.RequestTimeout <= 0 {
		db.RequestTimeout = defaultDBRequestTimeout
	}
	if db.ConnectionPoolCapacity <= 0 {
		db.ConnectionPoolCapacity = defaultDBConnectionPoolCapacity
	}
	if db.UsePreparedStatements == nil {
		db.UsePreparedStatements = new(bool)
		*db.UsePreparedStatements = true
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}

func parse(cfg []byte) (Config, error) {
	result := Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(cfg))
	decoder.KnownFields(true)
	if err := decoder.Decode(&result); err != nil {
		return result, fmt.Errorf("error parsing config: %w", err)
	}

	return result, nil
}
