package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/JonnyWalker81/wellbeing/backend/internal/cache"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// EnvPrefix is prepended to every environment variable, e.g. WELLBEING_LOG_LEVEL
const EnvPrefix = "WELLBEING"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port               string   `mapstructure:"port"`
	Env                string   `mapstructure:"env"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	// RateLimit is requests per minute per user; 0 disables limiting
	RateLimit int `mapstructure:"rate_limit"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// LogConfig selects log level and output format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalyticsConfig holds the report defaults
type AnalyticsConfig struct {
	Timezone      string `mapstructure:"timezone"`
	DefaultWindow int    `mapstructure:"default_window"`
	DisplayLimit  int    `mapstructure:"display_limit"`
}

// CacheConfig selects the report cache backend
type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
	Redis  RedisConfig   `mapstructure:"redis"`
}

// RedisConfig is used when the cache driver is redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration. Precedence, highest first: process
// environment, .env, config.yaml, defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by the Supabase and hosting tooling
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("supabase.url", EnvPrefix+"_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", EnvPrefix+"_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")
	_ = v.BindEnv("server.cors_allowed_origins", EnvPrefix+"_SERVER_CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_ORIGINS")
	_ = v.BindEnv("cache.redis.addr", EnvPrefix+"_CACHE_REDIS_ADDR", "REDIS_ADDR")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_allowed_origins", []string{})
	v.SetDefault("server.rate_limit", 300)
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.service_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.default_window", int(wellbeing.WindowWeek))
	v.SetDefault("analytics.display_limit", wellbeing.DefaultDisplayLimit)
	v.SetDefault("cache.driver", cache.DriverMemory)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
}

// Validate checks that all required configuration values are present and
// reports every problem at once
func (c *Config) Validate() error {
	var errs []error
	if c.Supabase.URL == "" {
		errs = append(errs, fmt.Errorf("SUPABASE_URL is required"))
	}
	if c.Supabase.ServiceKey == "" {
		errs = append(errs, fmt.Errorf("SUPABASE_SERVICE_KEY is required"))
	}
	if !wellbeing.Window(c.Analytics.DefaultWindow).Valid() {
		errs = append(errs, fmt.Errorf("analytics.default_window: %w: %d", wellbeing.ErrInvalidWindow, c.Analytics.DefaultWindow))
	}
	if c.Analytics.DisplayLimit < 0 {
		errs = append(errs, fmt.Errorf("analytics.display_limit must not be negative"))
	}
	if _, err := wellbeing.LoadLocation(c.Analytics.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("analytics.timezone: %w", err))
	}
	switch c.Cache.Driver {
	case cache.DriverMemory, cache.DriverRedis, cache.DriverNone:
	default:
		errs = append(errs, fmt.Errorf("cache.driver: %w: %q", cache.ErrUnknownDriver, c.Cache.Driver))
	}
	if c.Cache.Driver == cache.DriverRedis && c.Cache.Redis.Addr == "" {
		errs = append(errs, fmt.Errorf("cache.redis.addr is required for the redis driver"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit must not be negative"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Location returns the default analytics time zone
func (c *Config) Location() (*time.Location, error) {
	return wellbeing.LoadLocation(c.Analytics.Timezone)
}

// LoggerConfig maps the log section onto the logger package
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.ParseLevel(c.Log.Level)
	if c.Log.Format != "" {
		cfg.Format = c.Log.Format
	}
	cfg.AddSource = !c.IsProduction() && cfg.Level == logger.LevelDebug
	return cfg
}

// CacheConfig maps the cache section onto the cache package
func (c *Config) CacheConfig() cache.Config {
	return cache.Config{
		Driver:        c.Cache.Driver,
		TTL:           c.Cache.TTL,
		RedisAddr:     c.Cache.Redis.Addr,
		RedisPassword: c.Cache.Redis.Password,
		RedisDB:       c.Cache.Redis.DB,
	}
}
