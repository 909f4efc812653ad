package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/domain/models"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// ContractLoader loads compiled contracts by name
type ContractLoader interface {
	LoadContract(ctx context.Context, name string) (*models.Contract, error)
}

// Deployer creates contract factories signing with the configured deployer key
type Deployer struct {
	client *Client
	loader ContractLoader
	key    *ecdsa.PrivateKey
	log    *slog.Logger
}

// NewDeployer creates a new deployer
func NewDeployer(cfg *config.RuntimeConfig, client *Client, loader ContractLoader, log *slog.Logger) *Deployer {
	return &Deployer{
		client: client,
		loader: loader,
		key:    cfg.PrivateKey,
		log:    log.With("component", "Deployer"),
	}
}

// GetContractFactory loads the artifact for contractName and binds it to the
// connected network and deployer key
func (d *Deployer) GetContractFactory(ctx context.Context, contractName string) (usecase.ContractFactory, error) {
	if d.key == nil {
		return nil, domain.ErrMissingPrivateKey
	}

	contract, err := d.loader.LoadContract(ctx, contractName)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(string(contract.Artifact.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s abi: %w", contractName, err)
	}
	bytecode, err := contract.Artifact.Bytecode.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s bytecode: %w", contractName, err)
	}

	backend, err := d.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(d.key, d.client.ChainID())
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	d.log.Debug("factory ready", "contract", contractName, "artifact", contract.ArtifactPath, "deployer", opts.From.Hex())
	return &contractFactory{
		name:     contractName,
		abi:      parsed,
		bytecode: bytecode,
		opts:     opts,
		backend:  backend,
		log:      d.log,
	}, nil
}

type contractFactory struct {
	name     string
	abi      abi.ABI
	bytecode []byte
	opts     *bind.TransactOpts
	backend  Backend
	log      *slog.Logger
}

func (f *contractFactory) ContractName() string {
	return f.name
}

// Deploy signs and sends the creation transaction
func (f *contractFactory) Deploy(ctx context.Context) (*models.DeploymentHandle, error) {
	opts := *f.opts
	opts.Context = ctx

	_, tx, _, err := bind.DeployContract(&opts, f.abi, f.bytecode, f.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s creation transaction: %w", f.name, err)
	}
	return models.NewDeploymentHandle(f.name, opts.From, tx), nil
}

// WaitForDeployment blocks until the creation transaction is mined, then
// checks that it succeeded and left code at the new address
func (f *contractFactory) WaitForDeployment(ctx context.Context, handle *models.DeploymentHandle) error {
	if handle == nil || handle.Transaction == nil {
		return fmt.Errorf("no creation transaction to wait for")
	}

	receipt, err := bind.WaitMined(ctx, f.backend, handle.Transaction)
	if err != nil {
		return fmt.Errorf("failed waiting for %s: %w", handle.TxHash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s", domain.ErrDeploymentReverted, handle.TxHash().Hex())
	}

	code, err := f.backend.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to check code at %s: %w", receipt.ContractAddress.Hex(), err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoCodeAfterDeploy, receipt.ContractAddress.Hex())
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}
	handle.Confirm(models.Receipt{
		ContractAddress: receipt.ContractAddress,
		BlockNumber:     blockNumber,
		GasUsed:         receipt.GasUsed,
	})
	f.log.Debug("creation mined", "address", receipt.ContractAddress.Hex(), "block", blockNumber, "gas", receipt.GasUsed)
	return nil
}

var _ usecase.FactoryProvider = (*Deployer)(nil)
