package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort                  = "8080"
	defaultJWTSecret             = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer             = "forex-marketplace"
	defaultRateBroadcastInterval = 30 * time.Second
	defaultRateLimit             = "100-M"
	defaultNotifyWorkers         = 4
	defaultNotifyQueueSize       = 256
	defaultNotifyJobTimeout      = 10 * time.Second
	defaultDeliveryCharge        = "50"
	defaultPaymentGatewayURL     = "https://api.razorpay.com"
	defaultPaymentGatewayTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string
	FrontendBaseURL string

	RateBroadcastInterval time.Duration
	RateLimit             string // ulule/limiter formatted rate, e.g. "100-M"

	// Redis is optional; an empty URL keeps the limiter and rate fan-out in process.
	RedisURL      string
	RedisPassword string

	PosthogAPIKey string

	PaymentGatewayKeyID     string
	PaymentGatewayKeySecret string
	PaymentGatewayMock      bool
	PaymentGatewayURL       string
	PaymentGatewayTimeout   time.Duration

	NotifyWorkers    int
	NotifyQueueSize  int
	NotifyJobTimeout time.Duration

	DeliveryCharge decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_BROADCAST_INTERVAL", defaultRateBroadcastInterval.String())
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("PAYMENT_GATEWAY_KEY_ID", "")
	viper.SetDefault("PAYMENT_GATEWAY_KEY_SECRET", "")
	viper.SetDefault("PAYMENT_GATEWAY_MOCK", true)
	viper.SetDefault("PAYMENT_GATEWAY_URL", defaultPaymentGatewayURL)
	viper.SetDefault("PAYMENT_GATEWAY_TIMEOUT", defaultPaymentGatewayTimeout.String())
	viper.SetDefault("NOTIFY_WORKERS", defaultNotifyWorkers)
	viper.SetDefault("NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize)
	viper.SetDefault("NOTIFY_JOB_TIMEOUT", defaultNotifyJobTimeout.String())
	viper.SetDefault("DELIVERY_CHARGE", defaultDeliveryCharge)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.RateBroadcastInterval = durationOrDefault("RATE_BROADCAST_INTERVAL", defaultRateBroadcastInterval)
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Rate limiting and rate broadcasts stay local to this instance.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.PaymentGatewayKeyID = viper.GetString("PAYMENT_GATEWAY_KEY_ID")
	cfg.PaymentGatewayKeySecret = viper.GetString("PAYMENT_GATEWAY_KEY_SECRET")
	cfg.PaymentGatewayMock = viper.GetBool("PAYMENT_GATEWAY_MOCK")
	if cfg.PaymentGatewayMock && cfg.IsProduction {
		log.Println("Warning: PAYMENT_GATEWAY_MOCK is enabled in production.")
	}
	cfg.PaymentGatewayURL = viper.GetString("PAYMENT_GATEWAY_URL")
	if cfg.PaymentGatewayURL == "" {
		cfg.PaymentGatewayURL = defaultPaymentGatewayURL
	}
	cfg.PaymentGatewayTimeout = durationOrDefault("PAYMENT_GATEWAY_TIMEOUT", defaultPaymentGatewayTimeout)

	cfg.NotifyWorkers = positiveIntOrDefault("NOTIFY_WORKERS", defaultNotifyWorkers)
	cfg.NotifyQueueSize = positiveIntOrDefault("NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize)
	cfg.NotifyJobTimeout = durationOrDefault("NOTIFY_JOB_TIMEOUT", defaultNotifyJobTimeout)

	deliveryStr := viper.GetString("DELIVERY_CHARGE")
	deliveryCharge, err := decimal.NewFromString(deliveryStr)
	if err != nil || deliveryCharge.IsNegative() {
		deliveryCharge = decimal.RequireFromString(defaultDeliveryCharge)
		log.Printf("Warning: Invalid value for DELIVERY_CHARGE ('%s'). Defaulting to %s.\n", deliveryStr, defaultDeliveryCharge)
	}
	cfg.DeliveryCharge = deliveryCharge

	return cfg, nil
}

// durationOrDefault parses key as a positive duration, falling back to def with a warning.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func positiveIntOrDefault(key string, def int) int {
	n := viper.GetInt(key)
	if n <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return n
}
