package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMinIO    = "minio"
	StoreDriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL connection and pool settings.
// URL, when set, is used verbatim as the DSN and the component fields are ignored.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds the object store settings used by the minio driver.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type AppConfig struct {
	Port        string
	APIPrefix   string
	Timezone    string
	LogLevel    string
	StoreDriver string
	Database    DatabaseConfig
	MinIO       MinIOConfig
}

// Load reads configuration from environment variables. cmd/api imports
// godotenv/autoload so a local .env is merged in first.
func Load() *AppConfig {
	return &AppConfig{
		Port:        env("PORT", "3000"),
		APIPrefix:   normalizePrefix(env("API_PREFIX", "")),
		Timezone:    env("APP_TIMEZONE", "UTC"),
		LogLevel:    strings.ToLower(env("LOG_LEVEL", "info")),
		StoreDriver: strings.ToLower(env("STORE_DRIVER", StoreDriverPostgres)),
		Database: DatabaseConfig{
			URL:                env("DATABASE_URL", ""),
			Host:               env("DB_HOST", ""),
			Port:               env("DB_PORT", "5432"),
			User:               env("DB_USER", ""),
			Password:           env("DB_PASSWORD", ""),
			Name:               env("DB_NAME", ""),
			SSLMode:            env("DB_SSLMODE", "disable"),
			MaxOpenConns:       envParsed("DB_MAX_OPEN_CONNS", 10, strconv.Atoi),
			MaxIdleConns:       envParsed("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
			ConnMaxLifetimeSec: envParsed("DB_CONN_MAX_LIFETIME_SEC", 300, strconv.Atoi),
		},
		MinIO: MinIOConfig{
			Endpoint:  env("MINIO_ENDPOINT", ""),
			AccessKey: env("MINIO_ACCESS_KEY", ""),
			SecretKey: env("MINIO_SECRET_KEY", ""),
			Bucket:    env("MINIO_BUCKET", "todos"),
			UseSSL:    envParsed("MINIO_USE_SSL", false, strconv.ParseBool),
		},
	}
}

// Validate catches settings that would only fail later, at first use.
func (c *AppConfig) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	case StoreDriverMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("store driver %q needs MINIO_ENDPOINT and MINIO_BUCKET", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	return nil
}

// normalizePrefix turns "api/v1/" into "/api/v1"; "/" and "" mean no prefix.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envParsed falls back to def when the variable is unset or does not parse.
func envParsed[T any](key string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := parse(v)
	if err != nil {
		return def
	}
	return parsed
}
