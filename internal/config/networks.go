package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/samber/lo"
)

// DefaultNetwork is the network used when none is configured
const DefaultNetwork = "bscTestnet"

// builtinNetworks returns the well-known deployment targets
func builtinNetworks() []domain.Network {
	return []domain.Network{
		{
			Name:          "bscTestnet",
			DisplayName:   "BNB Chain Testnet",
			ChainID:       97,
			RPCURL:        "https://data-seed-prebsc-1-s1.bnbchain.org:8545",
			ExplorerURL:   "https://testnet.bscscan.com",
			ExplorerName:  "BscScan",
			VerifyNetwork: "bscTestnet",
		},
		{
			Name:          "bsc",
			DisplayName:   "BNB Chain",
			ChainID:       56,
			RPCURL:        "https://bsc-dataseed.bnbchain.org",
			ExplorerURL:   "https://bscscan.com",
			ExplorerName:  "BscScan",
			VerifyNetwork: "bsc",
			Mainnet:       true,
		},
		{
			Name:          "hardhat",
			DisplayName:   "Hardhat Network",
			ChainID:       31337,
			RPCURL:        "http://127.0.0.1:8545",
			VerifyNetwork: "localhost",
		},
		{
			Name:          "localhost",
			DisplayName:   "Localhost",
			ChainID:       31337,
			RPCURL:        "http://127.0.0.1:8545",
			VerifyNetwork: "localhost",
		},
	}
}

// NetworkResolver resolves network names to deployment targets
type NetworkResolver struct {
	networks      map[string]domain.Network // lower-cased name -> network
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver. foundryConfig may be nil.
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	r := &NetworkResolver{
		networks:      make(map[string]domain.Network),
		foundryConfig: foundryConfig,
	}
	for _, n := range builtinNetworks() {
		r.networks[strings.ToLower(n.Name)] = n
	}
	return r
}

// Resolve returns the network for name with its RPC URL resolved. The RPC URL
// comes from rpcOverride, then foundry.toml [rpc_endpoints], then the
// conventional <NETWORK>_RPC_URL variable, then the built-in default.
func (r *NetworkResolver) Resolve(name, rpcOverride string) (*domain.Network, error) {
	if name == "" {
		name = DefaultNetwork
	}

	network, known := r.networks[strings.ToLower(name)]
	endpoint, inFoundry := r.foundryEndpoint(name)
	if !known && !inFoundry {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, name)
	}
	if !known {
		network = domain.Network{
			Name:          name,
			VerifyNetwork: name,
		}
	}

	switch {
	case rpcOverride != "":
		network.RPCURL = rpcOverride
	case inFoundry && endpoint != "":
		network.RPCURL = endpoint
	case os.Getenv(GenerateEnvVarName(network.Name)) != "":
		network.RPCURL = os.Getenv(GenerateEnvVarName(network.Name))
	}

	if network.RPCURL == "" {
		if name, ok := r.unsetFoundryVar(network.Name); ok {
			return nil, &domain.UnsetEnvError{Network: network.Name, Var: name}
		}
		return nil, fmt.Errorf("%w for network %s (set %s)", domain.ErrRPCNotConfigured, network.Name, GenerateEnvVarName(network.Name))
	}

	if r.foundryConfig != nil {
		if ec, ok := r.foundryConfig.Etherscan[network.Name]; ok && ec.URL != "" {
			network.VerifierURL = ec.URL
		}
	}

	return &network, nil
}

// Networks returns all known networks sorted by name, including foundry.toml endpoints
func (r *NetworkResolver) Networks() []domain.Network {
	byName := lo.MapKeys(r.networks, func(n domain.Network, _ string) string {
		return n.Name
	})
	if r.foundryConfig != nil {
		for name, url := range r.foundryConfig.RpcEndpoints {
			if _, known := r.networks[strings.ToLower(name)]; known {
				continue
			}
			byName[name] = domain.Network{Name: name, RPCURL: url, VerifyNetwork: name}
		}
	}

	networks := lo.Values(byName)
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})
	return networks
}

func (r *NetworkResolver) foundryEndpoint(name string) (string, bool) {
	if r.foundryConfig == nil {
		return "", false
	}
	for key, url := range r.foundryConfig.RpcEndpoints {
		if strings.EqualFold(key, name) {
			return url, true
		}
	}
	return "", false
}

// unsetFoundryVar reports the variable behind a foundry.toml endpoint that
// expanded to nothing
func (r *NetworkResolver) unsetFoundryVar(name string) (string, bool) {
	if r.foundryConfig == nil {
		return "", false
	}
	for key, raw := range r.foundryConfig.RawRpcEndpoints {
		if strings.EqualFold(key, name) {
			return unsetEnvVar(raw)
		}
	}
	return "", false
}
