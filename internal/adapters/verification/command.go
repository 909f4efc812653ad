package verification

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/domain/models"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// SourceLookup resolves the compiled contract, used for the forge target path
type SourceLookup interface {
	LoadContract(ctx context.Context, name string) (*models.Contract, error)
}

// CommandBuilder renders the command a developer runs to verify a deployment.
// It never executes anything.
type CommandBuilder struct {
	kind    config.VerifierKind
	sources SourceLookup
}

// NewCommandBuilder creates a builder for the configured verifier
func NewCommandBuilder(cfg *config.RuntimeConfig, sources SourceLookup) *CommandBuilder {
	kind := cfg.Verifier
	if kind == "" {
		kind = config.VerifierHardhat
	}
	return &CommandBuilder{kind: kind, sources: sources}
}

// BuildVerifyCommand returns the verification command for address on network
func (b *CommandBuilder) BuildVerifyCommand(network *domain.Network, contractName string, address common.Address) string {
	switch b.kind {
	case config.VerifierForge:
		return strings.Join(b.forgeArgs(network, contractName, address), " ")
	default:
		return strings.Join(hardhatArgs(network, address), " ")
	}
}

// hardhatArgs builds npx hardhat verify for the network's hardhat config key
func hardhatArgs(network *domain.Network, address common.Address) []string {
	key := network.VerifyNetwork
	if key == "" {
		key = network.Name
	}
	return []string{"npx", "hardhat", "verify", "--network", key, address.Hex()}
}

// forgeArgs builds forge verify-contract against the network's explorer
func (b *CommandBuilder) forgeArgs(network *domain.Network, contractName string, address common.Address) []string {
	args := []string{
		"forge", "verify-contract",
		address.Hex(),
		b.forgeTarget(contractName),
		"--chain-id", fmt.Sprintf("%d", network.ChainID),
	}
	if network.VerifierURL != "" {
		args = append(args, "--verifier-url", network.VerifierURL)
	}
	return append(args, "--watch")
}

// forgeTarget returns <source>:<Name>, or just the name when the source is unknown
func (b *CommandBuilder) forgeTarget(contractName string) string {
	if b.sources == nil {
		return contractName
	}
	contract, err := b.sources.LoadContract(context.Background(), contractName)
	if err != nil || contract.Path == "" {
		return contractName
	}
	return fmt.Sprintf("%s:%s", contract.Path, contractName)
}

var _ usecase.VerifyCommandBuilder = (*CommandBuilder)(nil)
