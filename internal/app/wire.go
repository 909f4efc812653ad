//go:build wireinject
// +build wireinject

package app

import (
	"github.com/gonana/gonana-deploy/internal/adapters"
	"github.com/gonana/gonana-deploy/internal/config"
	"github.com/gonana/gonana-deploy/internal/logging"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
