// Package config carga la configuración en capas: defaults, archivo YAML opcional y env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	HTTP    HTTPConfig    `koanf:"http"`
	Log     LogConfig     `koanf:"log"`
	Auth    AuthConfig    `koanf:"auth"`
	Storage StorageConfig `koanf:"storage"`
	Images  ImagesConfig  `koanf:"images"`
	Events  EventsConfig  `koanf:"events"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// CORSOrigins es una lista separada por comas.
	CORSOrigins string `koanf:"cors_origins"`
}

func (h HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", h.Port)
}

func (h HTTPConfig) Origins() []string {
	out := make([]string, 0)
	for _, o := range strings.Split(h.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

type AuthConfig struct {
	// Mode: dev (header X-Debug-User-ID), odin o jwt.
	Mode string     `koanf:"mode"`
	Odin OdinConfig `koanf:"odin"`
	JWT  JWTConfig  `koanf:"jwt"`
}

type OdinConfig struct {
	BaseURL      string        `koanf:"base_url"`
	APIKey       string        `koanf:"api_key"`
	APIKeyHeader string        `koanf:"api_key_header"`
	Timeout      time.Duration `koanf:"timeout"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
	Issuer string `koanf:"issuer"`
}

type StorageConfig struct {
	// Driver: memory, mongo o postgres.
	Driver   string         `koanf:"driver"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Postgres PostgresConfig `koanf:"postgres"`
}

type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type PostgresConfig struct {
	DSN string `koanf:"dsn"`
}

type ImagesConfig struct {
	// Driver: memory o minio.
	Driver   string      `koanf:"driver"`
	MaxBytes int64       `koanf:"max_bytes"`
	Minio    MinioConfig `koanf:"minio"`
}

type MinioConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	UseSSL    bool   `koanf:"use_ssl"`
}

type EventsConfig struct {
	RequireFutureDate bool `koanf:"require_future_date"`
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     "http://localhost:3000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-events",
		},
		Auth: AuthConfig{
			Mode: "dev",
			Odin: OdinConfig{
				APIKeyHeader: "X-Api-Key",
				Timeout:      5 * time.Second,
			},
		},
		Storage: StorageConfig{
			Driver: "memory",
			Mongo: MongoConfig{
				URI:      "mongodb://localhost:27017",
				Database: "pets",
			},
		},
		Images: ImagesConfig{
			Driver:   "memory",
			MaxBytes: 5 << 20,
			Minio: MinioConfig{
				Bucket: "pet-events",
			},
		},
	}
}

// envKeys mapea variables de entorno a paths de koanf. Solo estas se leen.
// PORT y DB_DSN se mantienen por compatibilidad con los despliegues existentes.
var envKeys = map[string]string{
	"PORT":                       "http.port",
	"HTTP_PORT":                  "http.port",
	"HTTP_READ_TIMEOUT":          "http.read_timeout",
	"HTTP_WRITE_TIMEOUT":         "http.write_timeout",
	"HTTP_SHUTDOWN_TIMEOUT":      "http.shutdown_timeout",
	"CORS_ORIGINS":               "http.cors_origins",
	"LOG_LEVEL":                  "log.level",
	"LOG_FORMAT":                 "log.format",
	"APP_NAME":                   "log.app",
	"AUTH_MODE":                  "auth.mode",
	"ODIN_BASE_URL":              "auth.odin.base_url",
	"ODIN_API_KEY":               "auth.odin.api_key",
	"ODIN_API_KEY_HEADER":        "auth.odin.api_key_header",
	"ODIN_TIMEOUT":               "auth.odin.timeout",
	"JWT_SECRET":                 "auth.jwt.secret",
	"JWT_ISSUER":                 "auth.jwt.issuer",
	"STORAGE_DRIVER":             "storage.driver",
	"MONGO_URI":                  "storage.mongo.uri",
	"MONGO_DATABASE":             "storage.mongo.database",
	"DB_DSN":                     "storage.postgres.dsn",
	"IMAGES_DRIVER":              "images.driver",
	"IMAGES_MAX_BYTES":           "images.max_bytes",
	"MINIO_ENDPOINT":             "images.minio.endpoint",
	"MINIO_ACCESS_KEY":           "images.minio.access_key",
	"MINIO_SECRET_KEY":           "images.minio.secret_key",
	"MINIO_BUCKET":               "images.minio.bucket",
	"MINIO_USE_SSL":              "images.minio.use_ssl",
	"EVENTS_REQUIRE_FUTURE_DATE": "events.require_future_date",
}

func envTransform(s string) string {
	return envKeys[s]
}

// Load aplica defaults < archivo < env y valida el resultado.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c Config) Validate() error {
	var errs []error

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}

	switch c.Auth.Mode {
	case "dev":
	case "odin":
		if c.Auth.Odin.BaseURL == "" || c.Auth.Odin.APIKey == "" {
			errs = append(errs, errors.New("auth.odin.base_url and auth.odin.api_key are required in odin mode"))
		}
	case "jwt":
		if c.Auth.JWT.Secret == "" {
			errs = append(errs, errors.New("auth.jwt.secret is required in jwt mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth.mode %q", c.Auth.Mode))
	}

	switch c.Storage.Driver {
	case "memory":
	case "mongo":
		if c.Storage.Mongo.URI == "" || c.Storage.Mongo.Database == "" {
			errs = append(errs, errors.New("storage.mongo.uri and storage.mongo.database are required"))
		}
	case "postgres":
		if c.Storage.Postgres.DSN == "" {
			errs = append(errs, errors.New("storage.postgres.dsn is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Images.Driver {
	case "memory":
	case "minio":
		m := c.Images.Minio
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			errs = append(errs, errors.New("images.minio endpoint, access_key, secret_key and bucket are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown images.driver %q", c.Images.Driver))
	}

	if c.Images.MaxBytes <= 0 {
		errs = append(errs, errors.New("images.max_bytes must be positive"))
	}

	return errors.Join(errs...)
}
