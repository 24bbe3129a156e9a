package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Record store: "firestore", "mongo" or "memory".
	StoreDriver             string `mapstructure:"STORE_DRIVER"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	DatabaseName            string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`

	// Capture page.
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	CaptureTokenTTL time.Duration `mapstructure:"CAPTURE_TOKEN_TTL"`

	// Admin endpoints.
	AllowedOrigins   []string      `mapstructure:"ALLOWED_ORIGINS"`
	AdminTokenHash   string        `mapstructure:"ADMIN_TOKEN_HASH"`
	MigrationTimeout time.Duration `mapstructure:"MIGRATION_TIMEOUT"`
}

var AppConfig Config

// DefaultAllowedOrigins are the only origins the admin console is served from.
var DefaultAllowedOrigins = []string{
	"http://localhost:57715",
	"https://app.fisiospakym.com",
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STORE_DRIVER", "firestore")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "kympulse")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL", 12*time.Hour)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("CAPTURE_TOKEN_TTL", 6*time.Hour)
	viper.SetDefault("ALLOWED_ORIGINS", DefaultAllowedOrigins)
	viper.SetDefault("ADMIN_TOKEN_HASH", "")
	viper.SetDefault("MIGRATION_TIMEOUT", 9*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// ALLOWED_ORIGINS from the environment arrives as a single space separated string.
	if origins := viper.GetStringSlice("ALLOWED_ORIGINS"); len(origins) > 0 {
		AppConfig.AllowedOrigins = origins
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
