package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	Port        string
	Environment string
	Debug       bool

	// Database Configuration
	MongoURI string
	DBName   string

	// JWT Configuration
	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	// Storage Configuration
	StorageProvider string
	UploadPath      string
	MaxUploadSize   int64
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string

	// Security Configuration
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration

	// Attendance Configuration
	AutoCheckoutAt     string // "HH:MM", local server time
	NotificationMaxAge time.Duration

	// Seed Configuration
	DefaultPublicFolderName string
	AdminDefaultEmail       string
	AdminDefaultPass        string
	SeedDepartments         []string

	// Application Configuration
	AppName    string
	AppVersion string
	AppURL     string
}

var AppConfig *Config

// LoadConfig loads configuration from the environment, reading a local
// .env file first when present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Debug:       getEnvAsBool("DEBUG", true),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "opsdesk"),

		JWTSecret:        getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "your-super-secret-refresh-key-change-in-production"),
		AccessTokenTTL:   getEnvAsDuration("ACCESS_TOKEN_TTL", "24h"),
		RefreshTokenTTL:  getEnvAsDuration("REFRESH_TOKEN_TTL", "168h"),

		StorageProvider: getEnv("STORAGE_PROVIDER", "local"),
		UploadPath:      getEnv("UPLOAD_PATH", "./uploads"),
		MaxUploadSize:   getEnvAsInt64("MAX_UPLOAD_SIZE", 104857600), // 100MB
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		RateLimitEnabled:  getEnvAsBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),

		AutoCheckoutAt:     getEnv("AUTO_CHECKOUT_AT", "23:55"),
		NotificationMaxAge: getEnvAsDuration("NOTIFICATION_MAX_AGE", "720h"), // 30 days

		DefaultPublicFolderName: getEnv("DEFAULT_PUBLIC_FOLDER_NAME", "Public Documents"),
		AdminDefaultEmail:       getEnv("ADMIN_DEFAULT_EMAIL", "admin@opsdesk.local"),
		AdminDefaultPass:        getEnv("ADMIN_DEFAULT_PASS", ""),
		SeedDepartments:         getEnvAsSlice("SEED_DEPARTMENTS", nil),

		AppName:    getEnv("APP_NAME", "OpsDesk"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		AppURL:     getEnv("APP_URL", "http://localhost:8080"),
	}

	AppConfig = config
	return config
}

// ValidateConfig checks settings that have no safe fallback.
func (c *Config) ValidateConfig() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.StorageProvider != "local" && c.StorageProvider != "s3" {
		return fmt.Errorf("unsupported storage provider: %s", c.StorageProvider)
	}
	if c.StorageProvider == "s3" && c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required for the s3 storage provider")
	}
	if c.IsProduction() {
		if strings.Contains(c.JWTSecret, "change-in-production") {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}
	if _, err := time.Parse("15:04", c.AutoCheckoutAt); err != nil {
		return fmt.Errorf("AUTO_CHECKOUT_AT must be HH:MM: %v", err)
	}
	return nil
}

// IsProduction checks if app is running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetServerAddress returns the listen address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		parsed, _ = time.ParseDuration(defaultValue)
	}
	return parsed
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
