package usecase

import (
	"context"
	"errors"

	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	ChainID  uint64
	RPCURL   string
	Explorer string
	Mainnet  bool
	Selected bool
	Error    error
	// MissingEnvVar names the unset variable behind the network's RPC endpoint
	MissingEnvVar string
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:     name,
			Selected: uc.config.Network != nil && uc.config.Network.Name == name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		var envErr *domain.UnsetEnvError
		switch {
		case errors.As(err, &envErr):
			status.MissingEnvVar = envErr.Var
		case err != nil:
			status.Error = err
		default:
			status.ChainID = info.ChainID
			status.RPCURL = info.RPCURL
			status.Explorer = info.ExplorerURL
			status.Mainnet = info.Mainnet
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
