package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// AssetsBackendLocal serves assets from a directory on disk.
	AssetsBackendLocal = "local"
	// AssetsBackendMinIO serves assets from an S3-compatible bucket.
	AssetsBackendMinIO = "minio"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// AssetsConfig selects and configures the read-only store behind the static file server.
type AssetsConfig struct {
	Backend   string
	StaticDir string
	IndexFile string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Debug    bool
	LogLevel string
	Server   ServerConfig
	Assets   AssetsConfig
	MinIO    MinIOConfig
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return c.AppHost + ":" + c.Port
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "0.0.0.0"),
		Port:     getEnv("PORT", "5000"),
		Debug:    getEnvBool("DEBUG", false),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT_SEC", 15)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT_SEC", 15)) * time.Second,
			BodyLimit:    getEnvInt("BODY_LIMIT_BYTES", 4*1024*1024),
		},
		Assets: AssetsConfig{
			Backend:   getEnv("ASSETS_BACKEND", AssetsBackendLocal),
			StaticDir: getEnv("STATIC_DIR", "static"),
			IndexFile: getEnv("INDEX_FILE", "index.html"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			Prefix:    getEnv("MINIO_PREFIX", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Validate reports configuration that would prevent the server from starting.
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("body limit must be positive, got %d", c.Server.BodyLimit)
	}
	if c.Assets.IndexFile == "" {
		return fmt.Errorf("index file is required")
	}

	switch c.Assets.Backend {
	case AssetsBackendLocal:
		if c.Assets.StaticDir == "" {
			return fmt.Errorf("static dir is required for the %q backend", AssetsBackendLocal)
		}
	case AssetsBackendMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("minio endpoint and bucket are required for the %q backend", AssetsBackendMinIO)
		}
	default:
		return fmt.Errorf("unknown assets backend: %q", c.Assets.Backend)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
