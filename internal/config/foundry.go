package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/joho/godotenv"
)

// loadDotEnv loads .env files from the project root. Variables already set in
// the process environment take precedence.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}

// loadFoundryConfig loads and parses foundry.toml. Returns nil when the
// project has none; Hardhat-only projects are the common case.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	if _, err := os.Stat(foundryPath); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.FoundryConfig
	if _, err := toml.DecodeFile(foundryPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg.RawRpcEndpoints = make(map[string]string, len(cfg.RpcEndpoints))
	for name, url := range cfg.RpcEndpoints {
		cfg.RawRpcEndpoints[name] = url
		cfg.RpcEndpoints[name] = ExpandRPCURL(url)
	}
	for network, ec := range cfg.Etherscan {
		ec.Key = os.ExpandEnv(ec.Key)
		ec.URL = os.ExpandEnv(ec.URL)
		cfg.Etherscan[network] = ec
	}

	return &cfg, nil
}
