package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// ProviderURL is where the wallet bridge is injected (http, ws or ipc endpoint)
	ProviderURL string `json:"provider_url" mapstructure:"provider_url"`
	// Currency is the symbol shown after the balance
	Currency string `json:"currency" mapstructure:"currency"`
	// BalanceTimeout bounds the balance query, in seconds
	BalanceTimeout int  `json:"balance_timeout" mapstructure:"balance_timeout"`
	Logger         bool `json:"logger" mapstructure:"logger"`
}

// BalanceTimeoutDuration returns BalanceTimeout as a time.Duration
func (c Config) BalanceTimeoutDuration() time.Duration {
	if c.BalanceTimeout <= 0 {
		return 12 * time.Second
	}
	return time.Duration(c.BalanceTimeout) * time.Second
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		ProviderURL:    "",
		Currency:       "ETH",
		BalanceTimeout: 12,
		Logger:         false,
	}
}

// Load reads the config from the specified path.
// WALLET_PROVIDER_URL (or ETH_RPC_URL) overrides provider_url from the file.
func Load(path string) Config {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("provider_url", def.ProviderURL)
	v.SetDefault("currency", def.Currency)
	v.SetDefault("balance_timeout", def.BalanceTimeout)
	v.SetDefault("logger", def.Logger)
	_ = v.BindEnv("provider_url", "WALLET_PROVIDER_URL", "ETH_RPC_URL")

	// a missing or broken file falls back to defaults and env
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def
	}
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// SaveLogger persists the logger flag. Other fields are kept as stored in
// the file, so env overrides never end up on disk.
func SaveLogger(path string, enabled bool) {
	cfg := DefaultConfig()
	if data, err := os.ReadFile(path); err == nil {
		var stored Config
		if err := json.Unmarshal(data, &stored); err == nil {
			cfg = stored
		}
	}
	cfg.Logger = enabled
	Save(path, cfg)
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		Save(path, DefaultConfig())
	}
	return Load(path)
}
