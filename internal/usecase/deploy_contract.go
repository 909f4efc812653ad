package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	// ContractName overrides the configured contract when set
	ContractName string
}

// DeployContractResult contains everything the deployment report shows
type DeployContractResult struct {
	ContractName  string
	Network       *domain.Network
	Deployer      common.Address
	Address       common.Address
	TxHash        common.Hash
	BlockNumber   uint64
	GasUsed       uint64
	PlatformFee   *big.Int
	Owner         common.Address
	ExplorerURL   string
	VerifyCommand string
}

// DeployContract deploys a contract, waits for it to be mined and reads back
// its platform fee and owner
type DeployContract struct {
	config    *config.RuntimeConfig
	factories FactoryProvider
	reader    EscrowReader
	verifier  VerifyCommandBuilder
	confirmer DeployConfirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	factories FactoryProvider,
	reader EscrowReader,
	verifier VerifyCommandBuilder,
	confirmer DeployConfirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeployContract{
		config:    cfg,
		factories: factories,
		reader:    reader,
		verifier:  verifier,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("component", "DeployContract"),
	}
}

// Run executes the deployment workflow. The first failing step aborts the
// remaining ones and is returned as a *domain.WorkflowError.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	contractName := params.ContractName
	if contractName == "" {
		contractName = uc.config.ContractName
	}
	network := uc.config.Network
	if network == nil {
		return nil, domain.NewWorkflowError(domain.StepFactory, domain.ErrNoNetwork)
	}
	defer uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	uc.report(ctx, StageFactory, fmt.Sprintf("Connecting to %s", network.Label()))
	factory, err := uc.factories.GetContractFactory(ctx, contractName)
	if err != nil {
		return nil, domain.NewWorkflowError(domain.StepFactory, err)
	}

	if network.Mainnet && uc.confirmer != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageFactory})
		ok, err := uc.confirmer.ConfirmDeploy(ctx, network, contractName)
		if err != nil {
			return nil, domain.NewWorkflowError(domain.StepSubmit, fmt.Errorf("failed to confirm deployment: %w", err))
		}
		if !ok {
			return nil, domain.NewWorkflowError(domain.StepSubmit, domain.ErrDeploymentAborted)
		}
	}

	uc.report(ctx, StageSubmit, fmt.Sprintf("Deploying %s", factory.ContractName()))
	handle, err := factory.Deploy(ctx)
	if err != nil {
		return nil, domain.NewWorkflowError(domain.StepSubmit, err)
	}
	uc.log.Debug("creation transaction sent", "tx", handle.TxHash().Hex(), "deployer", handle.Deployer.Hex())
	uc.progress.Info(fmt.Sprintf("Sent %s from %s", handle.TxHash().Hex(), handle.Deployer.Hex()))

	uc.report(ctx, StageConfirm, fmt.Sprintf("Waiting for %s", handle.TxHash().Hex()))
	if err := factory.WaitForDeployment(ctx, handle); err != nil {
		return nil, domain.NewWorkflowError(domain.StepConfirm, err)
	}

	address, err := handle.Address()
	if err != nil {
		return nil, domain.NewWorkflowError(domain.StepAddress, err)
	}
	uc.log.Debug("deployment confirmed", "address", address.Hex())

	uc.report(ctx, StageRead, "Reading contract state")
	fee, err := uc.reader.PlatformFee(ctx, address)
	if err != nil {
		return nil, domain.NewWorkflowError(domain.StepRead, &domain.ReadError{Getter: "platformFee", Err: err})
	}
	owner, err := uc.reader.Owner(ctx, address)
	if err != nil {
		return nil, domain.NewWorkflowError(domain.StepRead, &domain.ReadError{Getter: "owner", Err: err})
	}

	result := &DeployContractResult{
		ContractName: factory.ContractName(),
		Network:      network,
		Deployer:     handle.Deployer,
		Address:      address,
		TxHash:       handle.TxHash(),
		PlatformFee:  fee,
		Owner:        owner,
		ExplorerURL:  network.AddressURL(address.Hex()),
	}
	if receipt := handle.Receipt(); receipt != nil {
		result.BlockNumber = receipt.BlockNumber
		result.GasUsed = receipt.GasUsed
	}
	if uc.verifier != nil {
		result.VerifyCommand = uc.verifier.BuildVerifyCommand(network, result.ContractName, address)
	}

	return result, nil
}

func (uc *DeployContract) report(ctx context.Context, stage DeploymentStage, message string) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   stage,
		Message: message,
		Spinner: true,
	})
}
