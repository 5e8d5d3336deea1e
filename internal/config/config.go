package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
// It is built once at startup and passed into components; nothing reads the
// environment after Load returns.
type Config struct {
	Env        string
	ServerPort string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	// AdminJWTSecret and UserJWTSecret are independent on purpose: a token
	// signed with one must never verify against the other.
	AdminJWTSecret string
	UserJWTSecret  string
	// TokenTTL and CookieMaxAge are separate knobs and may diverge.
	TokenTTL     time.Duration
	CookieMaxAge time.Duration

	FrontendOrigin string
	SwaggerHost    string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3UseSSL        bool
	S3PublicBaseURL string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/coursehub?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		AdminJWTSecret: getEnv("JWT_ADMIN_SECRET", "change-me-admin"),
		UserJWTSecret:  getEnv("JWT_USER_SECRET", "change-me-user"),
		TokenTTL:       getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 24*time.Hour),

		FrontendOrigin: getEnv("FRONTEND_URL", "http://localhost:5173"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),

		S3Endpoint:      getEnv("S3_ENDPOINT", "localhost:9000"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Bucket:        getEnv("S3_BUCKET", "coursehub-images"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:        getEnvBool("S3_USE_SSL", false),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}
}

// IsProduction reports whether the process runs in a production-like
// environment. Session cookies are marked Secure only in that case.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
