package adapters

import (
	"github.com/gonana/gonana-deploy/internal/adapters/artifacts"
	"github.com/gonana/gonana-deploy/internal/adapters/blockchain"
	"github.com/gonana/gonana-deploy/internal/adapters/interactive"
	"github.com/gonana/gonana-deploy/internal/adapters/network"
	"github.com/gonana/gonana-deploy/internal/adapters/progress"
	"github.com/gonana/gonana-deploy/internal/adapters/verification"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/google/wire"
)

// ArtifactsSet provides compiled contract lookup
var ArtifactsSet = wire.NewSet(
	artifacts.NewLoader,
	wire.Bind(new(blockchain.ContractLoader), new(*artifacts.Loader)),
	wire.Bind(new(verification.SourceLookup), new(*artifacts.Loader)),
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,

	blockchain.NewDeployer,
	wire.Bind(new(usecase.FactoryProvider), new(*blockchain.Deployer)),

	blockchain.NewEscrowReader,
	wire.Bind(new(usecase.EscrowReader), new(*blockchain.EscrowReader)),
)

// VerificationSet provides the verify command builder
var VerificationSet = wire.NewSet(
	verification.NewCommandBuilder,
	wire.Bind(new(usecase.VerifyCommandBuilder), new(*verification.CommandBuilder)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.DeployConfirmer), new(*interactive.ConfirmerAdapter)),
)

// NetworkSet provides the network catalogue
var NetworkSet = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ArtifactsSet,
	BlockchainSet,
	VerificationSet,
	InteractiveSet,
	NetworkSet,
	progress.NewProgressSink,
)
