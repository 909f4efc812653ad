package network

import (
	"context"

	"github.com/gonana/gonana-deploy/internal/config"
	"github.com/gonana/gonana-deploy/internal/domain"
	domainconfig "github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/samber/lo"
)

// Resolver exposes the network catalogue to use cases
type Resolver struct {
	catalogue *config.NetworkResolver
}

// NewResolver creates a resolver over the built-in networks and the
// project's foundry.toml endpoints
func NewResolver(cfg *domainconfig.RuntimeConfig) *Resolver {
	return &Resolver{
		catalogue: config.NewNetworkResolver(cfg.FoundryConfig),
	}
}

// GetNetworks returns the names of all known networks
func (r *Resolver) GetNetworks(ctx context.Context) []string {
	return lo.Map(r.catalogue.Networks(), func(n domain.Network, _ int) string {
		return n.Name
	})
}

// ResolveNetwork resolves a network by name
func (r *Resolver) ResolveNetwork(ctx context.Context, name string) (*domain.Network, error) {
	return r.catalogue.Resolve(name, "")
}

var _ usecase.NetworkResolver = (*Resolver)(nil)
