package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "5KQw")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.NodeURL != "https://nodes.wavesnodes.com" {
		t.Fatalf("NodeURL = %q", cfg.NodeURL)
	}
	if cfg.MatcherURL != "https://matcher.waves.exchange" {
		t.Fatalf("MatcherURL = %q", cfg.MatcherURL)
	}
	if cfg.OrderFee != 300000 {
		t.Fatalf("OrderFee = %d, want 300000", cfg.OrderFee)
	}
	if cfg.OrderLifetime != 29*24*time.Hour {
		t.Fatalf("OrderLifetime = %s, want 696h", cfg.OrderLifetime)
	}
	if cfg.MinAmount != 10000 {
		t.Fatalf("MinAmount = %d, want 10000", cfg.MinAmount)
	}
	if cfg.PollInterval != 40*time.Second {
		t.Fatalf("PollInterval = %s, want 40s", cfg.PollInterval)
	}
	if got := cfg.PriceStep.String(); got != "0.005" {
		t.Fatalf("PriceStep = %s, want 0.005", got)
	}
	if cfg.PriceAssetName != "BTC" {
		t.Fatalf("PriceAssetName = %q, want BTC", cfg.PriceAssetName)
	}
	if cfg.ChainID() != 'W' {
		t.Fatalf("ChainID = %c, want W", cfg.ChainID())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "5KQw")
	t.Setenv("NETWORK", "testnet")
	t.Setenv("PRICE_STEP", "0.0001")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("ORDER_FEE", "400000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.ChainID() != 'T' {
		t.Fatalf("ChainID = %c, want T", cfg.ChainID())
	}
	if got := cfg.PriceStep.String(); got != "0.0001" {
		t.Fatalf("PriceStep = %s, want 0.0001", got)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %s, want 5s", cfg.PollInterval)
	}
	if cfg.OrderFee != 400000 {
		t.Fatalf("OrderFee = %d, want 400000", cfg.OrderFee)
	}
}

func TestFromEnvRequiresPrivateKey(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "")
	if _, err := FromEnv(); err == nil {
		t.Fatal("FromEnv: want error without PRIVATE_KEY")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir() + "/absent.env"); err == nil {
		t.Fatal("Load: want error for missing config file")
	}
}

func TestFromEnvRejectsNonPositiveStep(t *testing.T) {
	t.Setenv("PRIVATE_KEY", "5KQw")
	t.Setenv("PRICE_STEP", "-0.001")
	if _, err := FromEnv(); err == nil {
		t.Fatal("FromEnv: want error for negative PRICE_STEP")
	}
}
