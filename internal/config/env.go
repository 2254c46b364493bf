package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the engine.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	SolanaRPCURL    string `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	WalletDataFile  string `envconfig:"WALLET_DATA_FILE" default:"wallet_data.json"`
	ChatHistoryFile string `envconfig:"CHAT_HISTORY_FILE" default:"chat_history.json"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty       bool   `envconfig:"LOG_PRETTY" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetWalletDataFile returns the wallet catalog file path from configuration
func GetWalletDataFile() string {
	return Get().WalletDataFile
}

// GetChatHistoryFile returns the chat transcript file path from configuration
func GetChatHistoryFile() string {
	return Get().ChatHistoryFile
}
