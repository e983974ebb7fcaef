package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Stripe configuration for card checkouts.
	StripeKey          string `mapstructure:"STRIPE_KEY"`
	CheckoutSuccessURL string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `mapstructure:"CHECKOUT_CANCEL_URL"`

	// Business hours used to instantiate bookable slots.
	BusinessOpenHour  int `mapstructure:"BUSINESS_OPEN_HOUR"`
	BusinessCloseHour int `mapstructure:"BUSINESS_CLOSE_HOUR"`
	AtomicSlotMinutes int `mapstructure:"ATOMIC_SLOT_MINUTES"`

	// Staff calendar grid.
	CalendarDayStartHour    int     `mapstructure:"CALENDAR_DAY_START_HOUR"`
	CalendarDayEndHour      int     `mapstructure:"CALENDAR_DAY_END_HOUR"`
	CalendarIntervalMinutes int     `mapstructure:"CALENDAR_INTERVAL_MINUTES"`
	CalendarCellHeight      float64 `mapstructure:"CALENDAR_CELL_HEIGHT"`
	WorkDays                []string `mapstructure:"WORK_DAYS"`
	WorkStartHour           int     `mapstructure:"WORK_START_HOUR"`
	WorkEndHour             int     `mapstructure:"WORK_END_HOUR"`

	// Single configured locale for all date arithmetic.
	Timezone string `mapstructure:"TIMEZONE"`
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
	viper.SetDefault("DATABASE_NAME", "pawbook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/booking/success")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/booking/review")
	viper.SetDefault("BUSINESS_OPEN_HOUR", 8)
	viper.SetDefault("BUSINESS_CLOSE_HOUR", 19)
	viper.SetDefault("ATOMIC_SLOT_MINUTES", 30)
	viper.SetDefault("CALENDAR_DAY_START_HOUR", 7)
	viper.SetDefault("CALENDAR_DAY_END_HOUR", 20)
	viper.SetDefault("CALENDAR_INTERVAL_MINUTES", 30)
	viper.SetDefault("CALENDAR_CELL_HEIGHT", 48.0)
	viper.SetDefault("WORK_DAYS", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"})
	viper.SetDefault("WORK_START_HOUR", 8)
	viper.SetDefault("WORK_END_HOUR", 19)
	viper.SetDefault("TIMEZONE", "Local")

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

// Location resolves the configured timezone, falling back to the system local zone.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
