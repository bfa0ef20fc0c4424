package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Exchange struct {
		Pair   string `yaml:"pair"`
		APIKey string `yaml:"api_key"`
	} `yaml:"exchange"`
	PurchasePrices string `yaml:"purchase_prices"` // semicolon-delimited decimals
	Mail           struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		Sender    string `yaml:"sender"`
		Password  string `yaml:"password"`
		Recipient string `yaml:"recipient"`
	} `yaml:"mail"`
	News struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"news"`
	Series struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"series"`
	Chart struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"chart"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CURRENCY_PAIR"); v != "" {
		cfg.Exchange.Pair = v
	}
	if v := os.Getenv("COINBASE_API_KEY"); v != "" {
		cfg.Exchange.APIKey = v
	}
	if v := os.Getenv("PURCHASE_PRICES"); v != "" {
		cfg.PurchasePrices = v
	}
	if v := os.Getenv("GMAIL_ADDRESS"); v != "" {
		cfg.Mail.Sender = v
	}
	if v := os.Getenv("GMAIL_APP_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
	if v := os.Getenv("RECIPIENT_EMAIL"); v != "" {
		cfg.Mail.Recipient = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Mail.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = p
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Exchange.Pair == "" {
		cfg.Exchange.Pair = "XRP-EUR"
	}
	if cfg.Mail.Host == "" {
		cfg.Mail.Host = "smtp.gmail.com"
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = 465
	}
	if cfg.News.Model == "" {
		cfg.News.Model = "gemini-1.5-flash"
	}
	if cfg.Series.CSVPath == "" {
		cfg.Series.CSVPath = "data/historical_data.csv"
	}
	if cfg.Chart.OutputPath == "" {
		cfg.Chart.OutputPath = "data/weekly_report_graph.png"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 8 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Mail.Sender == "" {
		return fmt.Errorf("mail.sender is required")
	}
	if c.Mail.Password == "" {
		return fmt.Errorf("mail.password is required")
	}
	if c.Mail.Recipient == "" {
		return fmt.Errorf("mail.recipient is required")
	}
	if c.Exchange.Pair == "" {
		return fmt.Errorf("exchange.pair is required")
	}
	return nil
}
