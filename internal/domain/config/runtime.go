package config

import (
	"crypto/ecdsa"
	"time"

	"github.com/gonana/gonana-deploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Deployment target
	ContractName string
	Network      *domain.Network
	ArtifactsDir string // empty means auto-detect (Hardhat, then Foundry)
	Verifier     VerifierKind

	// Deployer key, nil when not configured
	PrivateKey *ecdsa.PrivateKey

	// Execution settings
	Debug          bool
	NonInteractive bool
	AssumeYes      bool
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig // nil when the project has no foundry.toml
}

// VerifierKind selects the tool the follow-up verification command targets
type VerifierKind string

const (
	VerifierHardhat VerifierKind = "hardhat"
	VerifierForge   VerifierKind = "forge"
)
