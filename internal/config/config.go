package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the API.
type Config struct {
	AppPort          string
	DatabaseDriver   string
	DatabaseDSN      string
	JWTSecret        string
	JWTTTL           time.Duration
	GoogleClientID   string
	PaymentDemoDelay time.Duration
	PaymentCurrency  string
	RabbitMQURL      string
	LogLevel         string
	LogFormat        string
	AuthRateLimit    float64
	AuthRateBurst    int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=pet_adoption port=5432 sslmode=disable")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("PAYMENT_DEMO_DELAY", "1s")
	v.SetDefault("PAYMENT_CURRENCY", "INR")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("AUTH_RATE_LIMIT", 5)
	v.SetDefault("AUTH_RATE_BURST", 10)
}

// Load reads configuration from the environment and, when present, from a
// config.yaml in the working directory.
func Load() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		GoogleClientID:   v.GetString("GOOGLE_CLIENT_ID"),
		PaymentDemoDelay: v.GetDuration("PAYMENT_DEMO_DELAY"),
		PaymentCurrency:  v.GetString("PAYMENT_CURRENCY"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		AuthRateLimit:    v.GetFloat64("AUTH_RATE_LIMIT"),
		AuthRateBurst:    v.GetInt("AUTH_RATE_BURST"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	if cfg.JWTTTL <= 0 {
		return Config{}, errors.New("JWT_TTL must be positive")
	}
	switch cfg.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return Config{}, errors.New("DATABASE_DRIVER must be postgres or sqlite")
	}
	return cfg, nil
}
