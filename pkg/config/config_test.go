package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chain.RPCURL != "http://localhost:8545" {
		t.Errorf("RPCURL = %q, want local default", cfg.Chain.RPCURL)
	}
	if cfg.Chain.PrivateKey == "" {
		t.Error("PrivateKey default is empty")
	}
	if cfg.Chain.ContractAddress == "" {
		t.Error("ContractAddress default is empty")
	}
	if cfg.Database.Path == "" {
		t.Error("Database path default is empty")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("POLLS_RPC_URL", "http://example.com:8545")
	t.Setenv("POLLS_CONTRACT_ADDRESS", "0x0000000000000000000000000000000000000001")
	t.Setenv("POLLS_DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Chain.RPCURL != "http://example.com:8545" {
		t.Errorf("RPCURL = %q, env override not applied", cfg.Chain.RPCURL)
	}
	if cfg.Chain.ContractAddress != "0x0000000000000000000000000000000000000001" {
		t.Errorf("ContractAddress = %q, env override not applied", cfg.Chain.ContractAddress)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	content := `
chain:
  rpc_url: http://file.example:8545
  contract_address: "0x00000000000000000000000000000000000000aa"
data_dir:
  path: ` + dir + `
`
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Chain.RPCURL != "http://file.example:8545" {
		t.Errorf("RPCURL = %q, file value not applied", cfg.Chain.RPCURL)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Chain.PrivateKey == "" {
		t.Error("PrivateKey default lost after file load")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	content := `
chain:
  rpc_url: http://file.example:8545
data_dir:
  path: ` + dir + `
`
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("POLLS_RPC_URL", "http://env.example:8545")

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Chain.RPCURL != "http://env.example:8545" {
		t.Errorf("RPCURL = %q, environment should win over file", cfg.Chain.RPCURL)
	}
}
