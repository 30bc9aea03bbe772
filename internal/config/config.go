package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the upload layer
const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type Config struct {
	Port            string
	Environment     string // development or production
	LogLevel        string
	LogFormat       string // console or json
	DatabaseURL     string
	RedisURL        string
	FrontendURL     string   // Frontend base URL (used for blog share links)
	CORSOrigins     []string // Allowed CORS origins, "*" for any
	TrustedProxies  []string // Proxies whose X-Forwarded-For is believed, none by default
	JWTSecret       string   // Secret key for JWT token signing
	JWTTTL          int      // JWT token expiration time in hours
	JWTIssuer       string
	ShutdownTimeout time.Duration

	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints

	Storage StorageConfig
}

// StorageConfig selects and configures where uploaded images go
type StorageConfig struct {
	Driver       string // local or s3
	UploadDir    string // local driver: directory on disk
	PublicPath   string // local driver: URL prefix the directory is mounted under
	MaxUploadMB  int
	Endpoint     string // s3 driver
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	KeyPrefix    string
	PublicURL    string // base URL objects are readable from
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		Environment:        getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", ""),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvList("TRUSTED_PROXIES", nil),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		JWTIssuer:          getEnv("JWT_ISSUER", "blogspace"),
		ShutdownTimeout:    time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 2),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 5),
		Storage: StorageConfig{
			Driver:       strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverLocal)),
			UploadDir:    getEnv("UPLOAD_DIR", "public/uploads"),
			PublicPath:   getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
			MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 5),
			Endpoint:     getEnv("S3_ENDPOINT", ""),
			Region:       getEnv("S3_REGION", "us-east-1"),
			Bucket:       getEnv("S3_BUCKET", ""),
			AccessKey:    getEnv("S3_ACCESS_KEY", ""),
			SecretKey:    getEnv("S3_SECRET_KEY", ""),
			UsePathStyle: getEnvBool("S3_USE_PATH_STYLE", true),
			KeyPrefix:    getEnv("S3_KEY_PREFIX", "uploads/"),
			PublicURL:    strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),
		},
	}
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL_HOURS must be positive"))
	}
	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if c.Storage.PublicURL == "" {
			errs = append(errs, errors.New("S3_PUBLIC_URL is required for the s3 storage driver"))
		}
	default:
		errs = append(errs, errors.New("STORAGE_DRIVER must be local or s3"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the server runs with production defaults
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping blanks
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
