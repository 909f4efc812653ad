package app

import (
	"log/slog"

	"github.com/gonana/gonana-deploy/internal/adapters/blockchain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract *usecase.DeployContract
	ListNetworks   *usecase.ListNetworks

	// Adapters that own resources
	client *blockchain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	client *blockchain.Client,
	deployContract *usecase.DeployContract,
	listNetworks *usecase.ListNetworks,
) *App {
	return &App{
		Config:         cfg,
		Log:            log,
		DeployContract: deployContract,
		ListNetworks:   listNetworks,
		client:         client,
	}
}

// Close releases the RPC connection, if any was opened
func (a *App) Close() {
	if a.client != nil {
		a.client.Close()
	}
}
