package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB     int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Lounge schedule.
	OpenHour        int `mapstructure:"LOUNGE_OPEN_HOUR"`
	CloseHour       int `mapstructure:"LOUNGE_CLOSE_HOUR"`
	SlotIntervalMin int `mapstructure:"SLOT_INTERVAL_MIN"`
	BufferMinutes   int `mapstructure:"BUFFER_MINUTES"`

	// Booking policy flags.
	EnforceNow         bool `mapstructure:"BOOKING_ENFORCE_NOW"`
	AllowUnpaidCheckIn bool `mapstructure:"BOOKING_ALLOW_UNPAID_CHECKIN"`

	// Minutes before a pending reservation's start at which the payment
	// reminder fires.
	ReminderLeadMin int `mapstructure:"REMINDER_LEAD_MIN"`

	// Alias embedded in confirmation payloads (shown next to the QR).
	LoungeAlias string `mapstructure:"LOUNGE_ALIAS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_DB", 2)
	viper.SetDefault("LOUNGE_OPEN_HOUR", 14)
	viper.SetDefault("LOUNGE_CLOSE_HOUR", 23)
	viper.SetDefault("SLOT_INTERVAL_MIN", 15)
	viper.SetDefault("BUFFER_MINUTES", 0)
	viper.SetDefault("BOOKING_ENFORCE_NOW", true)
	viper.SetDefault("BOOKING_ALLOW_UNPAID_CHECKIN", true)
	viper.SetDefault("REMINDER_LEAD_MIN", 30)
	viper.SetDefault("LOUNGE_ALIAS", "dojovcp")

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
