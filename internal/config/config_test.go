package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exchange.Pair != "XRP-EUR" {
		t.Errorf("expected default pair XRP-EUR, got %q", cfg.Exchange.Pair)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 465 {
		t.Errorf("expected gmail SSL defaults, got %s:%d", cfg.Mail.Host, cfg.Mail.Port)
	}
	if cfg.Schedule.DailyCron == "" {
		t.Error("expected a default daily cron expression")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
exchange:
  pair: BTC-USD
purchase_prices: "100;200"
mail:
  sender: me@example.com
  password: secret
  recipient: you@example.com
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Exchange.Pair != "BTC-USD" {
		t.Errorf("expected pair BTC-USD, got %q", cfg.Exchange.Pair)
	}
	if cfg.PurchasePrices != "100;200" {
		t.Errorf("expected purchase prices from file, got %q", cfg.PurchasePrices)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PURCHASE_PRICES", "0.45;0.52")
	t.Setenv("GMAIL_ADDRESS", "env@example.com")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PurchasePrices != "0.45;0.52" {
		t.Errorf("expected env purchase prices, got %q", cfg.PurchasePrices)
	}
	if cfg.Mail.Sender != "env@example.com" {
		t.Errorf("expected env sender, got %q", cfg.Mail.Sender)
	}
	if cfg.Mail.Port != 587 {
		t.Errorf("expected env port 587, got %d", cfg.Mail.Port)
	}
}

func TestValidate_MissingMailCreds(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without mail credentials")
	}
}
