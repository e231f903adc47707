package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/forex")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/forex", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RateBroadcastInterval)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 4, cfg.NotifyWorkers)
	assert.Equal(t, 256, cfg.NotifyQueueSize)
	assert.Equal(t, 10*time.Second, cfg.NotifyJobTimeout)
	assert.True(t, decimal.NewFromInt(50).Equal(cfg.DeliveryCharge))
	assert.True(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "https://api.razorpay.com", cfg.PaymentGatewayURL)
	assert.Equal(t, 10*time.Second, cfg.PaymentGatewayTimeout)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("RATE_BROADCAST_INTERVAL", "5s")
	t.Setenv("NOTIFY_WORKERS", "8")
	t.Setenv("DELIVERY_CHARGE", "75.50")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "false")
	t.Setenv("PAYMENT_GATEWAY_URL", "http://gateway.internal")
	t.Setenv("PAYMENT_GATEWAY_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.RateBroadcastInterval)
	assert.Equal(t, 8, cfg.NotifyWorkers)
	assert.Equal(t, "75.5", cfg.DeliveryCharge.String())
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
	assert.False(t, cfg.PaymentGatewayMock)
	assert.Equal(t, "http://gateway.internal", cfg.PaymentGatewayURL)
	assert.Equal(t, 3*time.Second, cfg.PaymentGatewayTimeout)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Setenv("RATE_BROADCAST_INTERVAL", "soon")
	t.Setenv("NOTIFY_JOB_TIMEOUT", "-1s")
	t.Setenv("NOTIFY_QUEUE_SIZE", "0")
	t.Setenv("DELIVERY_CHARGE", "free")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.RateBroadcastInterval)
	assert.Equal(t, 10*time.Second, cfg.NotifyJobTimeout)
	assert.Equal(t, 256, cfg.NotifyQueueSize)
	assert.Equal(t, "50", cfg.DeliveryCharge.String())
}
