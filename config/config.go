package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"resource-api/internal/model"
	"resource-api/pkg/cache"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Cache    CacheConfig

	// Security
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig

	Pagination PaginationConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig leaves DSN empty to run on the in-memory store.
type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	Driver        string
	Size          int
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Window     time.Duration
	Ceiling    int
	MaxClients int
}

type PaginationConfig struct {
	DefaultLimit int
	MaxLimit     int
}

const minSecretLength = 16

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	cfg.Cache.Driver = strings.ToLower(viper.GetString("cache.driver"))
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.RedisAddr = viper.GetString("cache.redis_addr")
	cfg.Cache.RedisPassword = expandEnvVar(viper.GetString("cache.redis_password"))
	cfg.Cache.RedisDB = viper.GetInt("cache.redis_db")

	// Security
	cfg.JWT.SecretKey = expandEnvVar(viper.GetString("jwt.secret_key"))
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")
	cfg.RateLimit.Ceiling = viper.GetInt("rate_limit.ceiling")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	cfg.Pagination.DefaultLimit = viper.GetInt("pagination.default_limit")
	cfg.Pagination.MaxLimit = viper.GetInt("pagination.max_limit")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_open_conns", 25)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("cache.driver", cache.DriverMemory)
	viper.SetDefault("cache.size", 1000)
	viper.SetDefault("cache.ttl", "60s")
	viper.SetDefault("cache.redis_addr", "localhost:6379")

	viper.SetDefault("jwt.ttl", "1h")
	viper.SetDefault("cors.allowed_origins", "*")

	// 100 requests per client per 15 minutes
	viper.SetDefault("rate_limit.window", "15m")
	viper.SetDefault("rate_limit.ceiling", 100)
	viper.SetDefault("rate_limit.max_clients", 10000)

	viper.SetDefault("pagination.default_limit", 10)
	viper.SetDefault("pagination.max_limit", 100)
}

// Validate rejects configurations the service must not start with.
func (cfg *Config) Validate() error {
	var errs []error

	switch cfg.Environment.Name {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		errs = append(errs, fmt.Errorf("environment.name: unknown environment %q", cfg.Environment.Name))
	}

	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("http_server.mode: unknown mode %q", cfg.HTTPServer.Mode))
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port: %d is out of range", cfg.HTTPServer.Port))
	}

	if cfg.JWT.SecretKey == "" {
		errs = append(errs, errors.New("jwt.secret_key: required"))
	} else if isPlaceholder(cfg.JWT.SecretKey) {
		errs = append(errs, fmt.Errorf("jwt.secret_key: %s is not set", cfg.JWT.SecretKey))
	} else if !cfg.Environment.Name.IsDevelopment() && len(cfg.JWT.SecretKey) < minSecretLength {
		errs = append(errs, fmt.Errorf("jwt.secret_key: must be at least %d bytes", minSecretLength))
	}
	if cfg.JWT.TTL < 0 {
		errs = append(errs, errors.New("jwt.ttl: must not be negative"))
	}

	if err := validateOrigins(cfg.CORS.AllowedOrigins); err != nil {
		errs = append(errs, err)
	}

	if cfg.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate_limit.window: must be positive"))
	}
	if cfg.RateLimit.Ceiling <= 0 {
		errs = append(errs, errors.New("rate_limit.ceiling: must be positive"))
	}

	if cfg.Pagination.DefaultLimit < 1 {
		errs = append(errs, errors.New("pagination.default_limit: must be at least 1"))
	}
	if cfg.Pagination.MaxLimit < cfg.Pagination.DefaultLimit {
		errs = append(errs, errors.New("pagination.max_limit: must not be below default_limit"))
	}

	if isPlaceholder(cfg.Postgres.DSN) {
		errs = append(errs, fmt.Errorf("postgres.dsn: %s is not set", cfg.Postgres.DSN))
	}

	switch cfg.Cache.Driver {
	case cache.DriverMemory, cache.DriverNone:
	case cache.DriverRedis:
		if cfg.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr: required for the redis driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.driver: unknown driver %q", cfg.Cache.Driver))
	}
	if cfg.Cache.Driver != cache.DriverNone && cfg.Cache.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl: must be positive"))
	}

	return errors.Join(errs...)
}

func validateOrigins(origins []string) error {
	if len(origins) == 0 {
		return errors.New("cors.allowed_origins: at least one origin is required")
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("cors.allowed_origins: %q is not an absolute http(s) origin", origin)
		}
	}
	return nil
}

// isPlaceholder reports a ${VAR} reference expandEnvVar could not resolve.
func isPlaceholder(value string) bool {
	return strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}")
}

// splitList flattens comma separated entries coming from env vars.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, item := range strings.Split(entry, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
