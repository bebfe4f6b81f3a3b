package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting of the API server and the CLI.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	Mode         string        `yaml:"mode"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// DatabaseConfig accepts either a full connection string or the discrete
// DB_* parts. URL wins when both are present.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
	TimeZone string `yaml:"timezone"`
	MaxOpen  int    `yaml:"max_open_conns"`
	MaxIdle  int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	URL              string        `yaml:"url"`
	ViewDedupeWindow time.Duration `yaml:"view_dedupe_window"`
}

type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"`
	AdminUsername     string        `yaml:"admin_username"`
	AdminPasswordHash string        `yaml:"admin_password_hash"`
	SessionTTL        time.Duration `yaml:"session_ttl"`
	SecureCookie      bool          `yaml:"secure_cookie"`
}

type HTTPConfig struct {
	CacheControl string `yaml:"cache_control"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultCacheControl lets shared caches keep public reads for ten minutes
// and serve them stale for another twenty while revalidating.
const DefaultCacheControl = "public, s-maxage=600, stale-while-revalidate=1200"

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8080",
			Mode:         "release",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Name:     "portfolio",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxOpen:  25,
			MaxIdle:  10,
		},
		Redis: RedisConfig{
			ViewDedupeWindow: 30 * time.Minute,
		},
		Auth: AuthConfig{
			AdminUsername: "admin",
			SessionTTL:    72 * time.Hour,
		},
		HTTP: HTTPConfig{
			CacheControl: DefaultCacheControl,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads .env (if present), an optional YAML file named by
// PORTFOLIO_CONFIG, then applies environment overrides.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Mode, "GIN_MODE")

	setString(&cfg.Database.URL, "DATABASE_URL")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Database.TimeZone, "DB_TIMEZONE")
	if err := setInt(&cfg.Database.MaxOpen, "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}
	if err := setInt(&cfg.Database.MaxIdle, "DB_MAX_IDLE_CONNS"); err != nil {
		return err
	}

	setString(&cfg.Redis.URL, "REDIS_URL")
	if err := setDuration(&cfg.Redis.ViewDedupeWindow, "VIEW_DEDUPE_WINDOW"); err != nil {
		return err
	}

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET_KEY")
	setString(&cfg.Auth.AdminUsername, "ADMIN_USERNAME")
	setString(&cfg.Auth.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	if err := setDuration(&cfg.Auth.SessionTTL, "SESSION_TTL"); err != nil {
		return err
	}
	if v := os.Getenv("SECURE_COOKIE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SECURE_COOKIE: %w", err)
		}
		cfg.Auth.SecureCookie = b
	}

	setString(&cfg.HTTP.CacheControl, "CACHE_CONTROL")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	return nil
}

// DSN returns the connection string handed to the postgres driver.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=portfolio TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}
