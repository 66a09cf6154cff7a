package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the clubs catalog service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port" env:"PORT"`
	Debug   bool   `yaml:"debug" env:"DEBUG"`
}

// CatalogConfig holds the static dataset location and listing limits.
type CatalogConfig struct {
	DataPath     string `yaml:"data_path" env:"CLUBS_DATA_PATH"`
	DefaultLimit int    `yaml:"default_limit"`
	MaxLimit     int    `yaml:"max_limit"`
}

// WikipediaConfig holds the upstream summary endpoint configuration.
type WikipediaConfig struct {
	BaseURL  string        `yaml:"base_url" env:"WIKIPEDIA_BASE_URL"`
	Timeout  time.Duration `yaml:"timeout" env:"WIKIPEDIA_TIMEOUT"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"WIKIPEDIA_CACHE_TTL"`
}

// CacheConfig selects and configures the summary cache backend.
type CacheConfig struct {
	// Backend is "memory" or "redis".
	Backend    string      `yaml:"backend" env:"CACHE_BACKEND"`
	MaxEntries int         `yaml:"max_entries" env:"CACHE_MAX_ENTRIES"`
	Redis      RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// RateLimitConfig holds inbound per-IP rate limiting configuration.
type RateLimitConfig struct {
	Enabled     bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
	MaxRequests int           `yaml:"max_requests" env:"RATE_LIMIT_MAX_REQUESTS"`
	Window      time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Cache backend names.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Load loads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func (c *Config) setDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "clubs-catalog"
	}
	if c.Service.Version == "" {
		c.Service.Version = "1.0.0"
	}
	if c.Service.Port == 0 {
		c.Service.Port = 3000
	}

	if c.Catalog.DataPath == "" {
		c.Catalog.DataPath = "clubs.json"
	}
	if c.Catalog.DefaultLimit == 0 {
		c.Catalog.DefaultLimit = 50
	}
	if c.Catalog.MaxLimit == 0 {
		c.Catalog.MaxLimit = 200
	}

	if c.Wikipedia.BaseURL == "" {
		c.Wikipedia.BaseURL = "https://pt.wikipedia.org/api/rest_v1/page/summary/"
	}
	if c.Wikipedia.Timeout == 0 {
		c.Wikipedia.Timeout = 10 * time.Second
	}
	if c.Wikipedia.CacheTTL == 0 {
		c.Wikipedia.CacheTTL = 24 * time.Hour
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendMemory
	}
	if c.Cache.Redis.Address == "" {
		c.Cache.Redis.Address = "localhost:6379"
	}

	if c.RateLimit.MaxRequests == 0 {
		c.RateLimit.MaxRequests = 120
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "HEAD", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type"}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: fmt.Sprintf("invalid port: %d", c.Service.Port)}
	}
	if c.Catalog.DataPath == "" {
		return &ValidationError{Field: "catalog.data_path", Message: "is required"}
	}
	if c.Catalog.MaxLimit < 1 {
		return &ValidationError{Field: "catalog.max_limit", Message: "must be greater than 0"}
	}
	if c.Catalog.DefaultLimit < 1 || c.Catalog.DefaultLimit > c.Catalog.MaxLimit {
		return &ValidationError{
			Field:   "catalog.default_limit",
			Message: fmt.Sprintf("must be between 1 and %d", c.Catalog.MaxLimit),
		}
	}
	if c.Cache.Backend != CacheBackendMemory && c.Cache.Backend != CacheBackendRedis {
		return &ValidationError{Field: "cache.backend", Message: "must be one of: memory, redis"}
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.Redis.Address == "" {
		return &ValidationError{Field: "cache.redis.address", Message: "is required"}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
	return nil
}
