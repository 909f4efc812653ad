package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/models"
)

// FactoryProvider hands out contract factories bound to an already
// configured network connection and signer
type FactoryProvider interface {
	GetContractFactory(ctx context.Context, contractName string) (ContractFactory, error)
}

// ContractFactory creates instances of a single compiled contract
type ContractFactory interface {
	ContractName() string
	Deploy(ctx context.Context) (*models.DeploymentHandle, error)
	WaitForDeployment(ctx context.Context, handle *models.DeploymentHandle) error
}

// EscrowReader performs the read-only getter calls of a deployed escrow
type EscrowReader interface {
	PlatformFee(ctx context.Context, address common.Address) (*big.Int, error)
	Owner(ctx context.Context, address common.Address) (common.Address, error)
}

// VerifyCommandBuilder renders the shell command that verifies a deployed
// contract's source on the network's explorer
type VerifyCommandBuilder interface {
	BuildVerifyCommand(network *domain.Network, contractName string, address common.Address) string
}

// DeployConfirmer asks the operator to approve a deployment
type DeployConfirmer interface {
	ConfirmDeploy(ctx context.Context, network *domain.Network, contractName string) (bool, error)
}

// NetworkResolver lists and resolves configured networks
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, name string) (*domain.Network, error)
}

// Progress tracking interfaces

// DeploymentStage is a stage of the deployment workflow as shown to the user
type DeploymentStage string

const (
	StageFactory   DeploymentStage = "factory"
	StageSubmit    DeploymentStage = "submit"
	StageConfirm   DeploymentStage = "confirm"
	StageRead      DeploymentStage = "read"
	StageCompleted DeploymentStage = "completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   DeploymentStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events and the operator-facing notices
// printed between them
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Warn(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Warn(string)                               {}
