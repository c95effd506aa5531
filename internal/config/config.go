package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// storage
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresSSLMode  string `toml:"postgres_ssl_mode"`
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`
	MigrateOnStartup bool   `toml:"migrate_on_startup"`

	// api
	FrontendURLs         []string `toml:"frontend_urls"`
	RateLimitRequests    int      `toml:"rate_limit_requests"`
	RateLimitWindowMin   int      `toml:"rate_limit_window_min"`
	WeeklyCaloriesGoal   int      `toml:"weekly_calories_goal"`
	AuthProviderURL      string   `toml:"auth_provider_url"`
	AuthCacheSizeMB      int      `toml:"auth_cache_size_mb"`
	AuthCacheTTLSeconds  int      `toml:"auth_cache_ttl_seconds"`
	AuthVerifyLocallyJWT bool     `toml:"auth_verify_locally_jwt"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the section for env, with
// unset values filled in from defaults.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults(env)

	return cfg, nil
}

// LoadEnvFile loads secrets from a .env file into the process environment.
// Variables already set take precedence, and a missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) setDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 3001
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PostgresSSLMode == "" {
		c.PostgresSSLMode = "disable"
	}
	if c.RateLimitRequests <= 0 {
		c.RateLimitRequests = 100
	}
	if c.RateLimitWindowMin <= 0 {
		c.RateLimitWindowMin = 15
	}
	if c.WeeklyCaloriesGoal <= 0 {
		c.WeeklyCaloriesGoal = 3000
	}
	if c.AuthCacheSizeMB <= 0 {
		c.AuthCacheSizeMB = 10
	}
	if c.AuthCacheTTLSeconds <= 0 {
		c.AuthCacheTTLSeconds = 60
	}
}
