package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultContract is the contract deployed when none is configured
const DefaultContract = "GonanaEscrow"

// projectMarkers identify the root of a Hardhat or Foundry project
var projectMarkers = []string{
	"hardhat.config.js",
	"hardhat.config.ts",
	"hardhat.config.cjs",
	"hardhat.config.mjs",
	"foundry.toml",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		ContractName:   v.GetString("contract"),
		ArtifactsDir:   v.GetString("artifacts"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		AssumeYes:      v.GetBool("yes"),
		Timeout:        v.GetDuration("timeout"),
	}
	if cfg.ContractName == "" {
		cfg.ContractName = DefaultContract
	}
	if cfg.ArtifactsDir != "" && !filepath.IsAbs(cfg.ArtifactsDir) {
		cfg.ArtifactsDir = filepath.Join(projectRoot, cfg.ArtifactsDir)
	}

	switch verifier := config.VerifierKind(strings.ToLower(v.GetString("verifier"))); verifier {
	case config.VerifierHardhat, config.VerifierForge:
		cfg.Verifier = verifier
	default:
		return nil, fmt.Errorf("unsupported verifier %q (expected hardhat or forge)", verifier)
	}

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}
	cfg.FoundryConfig = foundryConfig

	networkName := v.GetString("network")
	network, err := NewNetworkResolver(foundryConfig).Resolve(networkName, v.GetString("rpc_url"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
	}
	cfg.Network = network

	if raw := strings.TrimSpace(v.GetString("private_key")); raw != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid deployer private key: %w", err)
		}
		cfg.PrivateKey = key
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find a Hardhat or
// Foundry project. Falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	loadDotEnv(projectRoot)

	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("GONANA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Hardhat projects conventionally keep the deployer key in PRIVATE_KEY
	_ = v.BindEnv("private_key", "GONANA_PRIVATE_KEY", "PRIVATE_KEY")

	// Set defaults
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("contract", DefaultContract)
	v.SetDefault("verifier", string(config.VerifierHardhat))
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("yes", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
