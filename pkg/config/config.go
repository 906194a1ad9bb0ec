package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the polls-cli
type Config struct {
	Chain    ChainConfig    `yaml:"chain"`
	Database DatabaseConfig `yaml:"database"`
	DataDir  DataDirConfig  `yaml:"data_dir"`
}

// ChainConfig contains EVM node and contract settings
type ChainConfig struct {
	RPCURL          string `yaml:"rpc_url"`
	PrivateKey      string `yaml:"private_key"`
	ContractAddress string `yaml:"contract_address"`
	TokenAddress    string `yaml:"token_address"` // governance token, optional
}

// DatabaseConfig contains local database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DataDirConfig contains data directory settings
type DataDirConfig struct {
	Path string `yaml:"path"` // Base data directory
}

// DefaultConfig returns default configuration. The private key default
// is the well-known anvil test key and the contract address is the
// first anvil deployment address; both are for local development and
// expected to be overridden for anything real.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".polls-cli")

	return &Config{
		Chain: ChainConfig{
			RPCURL:          "http://localhost:8545",
			PrivateKey:      "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
			ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			TokenAddress:    "",
		},
		Database: DatabaseConfig{
			Path: filepath.Join(dataDir, "polls-cli.db"),
		},
		DataDir: DataDirConfig{
			Path: dataDir,
		},
	}
}

// LoadConfig loads configuration from an optional YAML file, then
// applies environment variable overrides. Precedence, lowest to
// highest: defaults, file, environment.
func LoadConfig(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables
	if val := os.Getenv("POLLS_RPC_URL"); val != "" {
		cfg.Chain.RPCURL = val
	}
	if val := os.Getenv("POLLS_PRIVATE_KEY"); val != "" {
		cfg.Chain.PrivateKey = val
	}
	if val := os.Getenv("POLLS_CONTRACT_ADDRESS"); val != "" {
		cfg.Chain.ContractAddress = val
	}
	if val := os.Getenv("POLLS_TOKEN_ADDRESS"); val != "" {
		cfg.Chain.TokenAddress = val
	}
	if val := os.Getenv("POLLS_DB_PATH"); val != "" {
		cfg.Database.Path = val
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}
