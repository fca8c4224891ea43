package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLeaseDB  int    `mapstructure:"REDIS_LEASE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Pricing policy.
	DefaultMarkupPercent float64 `mapstructure:"DEFAULT_MARKUP_PERCENT"`
	// Ratio of the client price assumed to be nett cost when no catalog rate matches.
	NettFallbackRatio float64 `mapstructure:"NETT_FALLBACK_RATIO"`

	// Commission policy.
	DefaultCommissionRate float64 `mapstructure:"DEFAULT_COMMISSION_RATE"`

	// Duplicate invoice detection window.
	DuplicateAmountTolerance float64 `mapstructure:"DUPLICATE_AMOUNT_TOLERANCE"`
	DuplicateWindowHours     int     `mapstructure:"DUPLICATE_WINDOW_HOURS"`

	// Invoice terms.
	InvoiceTermsDays int `mapstructure:"INVOICE_TERMS_DAYS"`

	// Fulfillment queue.
	QueueConcurrency int `mapstructure:"QUEUE_CONCURRENCY"`
}

var AppConfig Config

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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LEASE_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripdesk")
	viper.SetDefault("DEFAULT_MARKUP_PERCENT", 20.0)
	viper.SetDefault("NETT_FALLBACK_RATIO", 0.85)
	viper.SetDefault("DEFAULT_COMMISSION_RATE", 10.0)
	viper.SetDefault("DUPLICATE_AMOUNT_TOLERANCE", 0.01)
	viper.SetDefault("DUPLICATE_WINDOW_HOURS", 24)
	viper.SetDefault("INVOICE_TERMS_DAYS", 30)
	viper.SetDefault("QUEUE_CONCURRENCY", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
