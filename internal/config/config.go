// Package config loads the bot's configuration from a dotenv-style file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds everything one session needs.
type Config struct {
	// Endpoints
	NodeURL    string
	Network    string
	MatcherURL string

	// Account
	PrivateKey string

	// Market
	AmountAssetID  string
	PriceAssetID   string
	PriceAssetName string
	PriceStep      decimal.Decimal

	// Orders
	OrderFee      int64
	OrderLifetime time.Duration
	MinAmount     int64

	// Loop
	PollInterval time.Duration

	// Notifications
	TelegramToken  string
	TelegramChatID int64

	Debug bool
}

// Load reads the config file at path into the environment and builds the
// session configuration. A missing or unreadable file is an error; the
// caller decides to terminate, this package never exits the process.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		NodeURL:    getEnv("NODE_URL", "https://nodes.wavesnodes.com"),
		Network:    getEnv("NETWORK", "mainnet"),
		MatcherURL: getEnv("MATCHER_URL", "https://matcher.waves.exchange"),

		PrivateKey: os.Getenv("PRIVATE_KEY"),

		AmountAssetID:  getEnv("AMOUNT_ASSET", "WAVES"),
		PriceAssetID:   getEnv("PRICE_ASSET", "8LQW8f7P5d5PZM7GtZEBgaqRPGSzS3DfPuiXrURJ4AJS"),
		PriceAssetName: getEnv("PRICE_ASSET_NAME", "BTC"),
		PriceStep:      getEnvDecimal("PRICE_STEP", decimal.NewFromFloat(0.005)),

		OrderFee:      getEnvInt64("ORDER_FEE", 300000),
		OrderLifetime: getEnvDuration("ORDER_LIFETIME", 29*24*time.Hour),
		MinAmount:     getEnvInt64("MIN_AMOUNT", 10000),

		PollInterval: getEnvDuration("POLL_INTERVAL", 40*time.Second),

		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Debug:         getEnvBool("DEBUG", false),
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("PRIVATE_KEY is required")
	}
	if cfg.PriceStep.Sign() <= 0 {
		return nil, fmt.Errorf("PRICE_STEP must be positive")
	}
	if cfg.OrderFee < 0 || cfg.MinAmount < 0 {
		return nil, fmt.Errorf("ORDER_FEE and MIN_AMOUNT must be non-negative")
	}

	return cfg, nil
}

// ChainID maps the network name onto the one-byte chain id orders are
// signed against.
func (c *Config) ChainID() byte {
	if c.Network == "testnet" {
		return 'T'
	}
	return 'W'
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
