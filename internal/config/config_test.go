package config_test

import (
	"testing"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("JWT_SECRET", "secret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Second, cfg.PaymentDemoDelay)
	assert.Equal(t, "INR", cfg.PaymentCurrency)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, 10, cfg.AuthRateBurst)
}

func TestFromViper_RequiresSecret(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("JWT_SECRET", "secret")
	v.Set("DATABASE_DRIVER", "mysql")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_DRIVER", "SQLITE")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
}
