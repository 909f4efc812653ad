package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
)

// Backend is the subset of an Ethereum client used to deploy and read contracts.
// Both *ethclient.Client and the simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client lazily connects to the configured network and verifies that the
// endpoint serves the expected chain
type Client struct {
	network *domain.Network
	dial    func(ctx context.Context, rpcURL string) (Backend, error)
	log     *slog.Logger

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	closer  func()
}

// NewClient creates a client for the configured network. Nothing is dialed
// until the first call that needs the chain.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		network: cfg.Network,
		dial:    dialEthClient,
		log:     log.With("component", "BlockchainClient"),
	}
}

// NewClientWithBackend wraps an already connected backend
func NewClientWithBackend(network *domain.Network, backend Backend, log *slog.Logger) *Client {
	return &Client{
		network: network,
		dial: func(context.Context, string) (Backend, error) {
			return backend, nil
		},
		log: log.With("component", "BlockchainClient"),
	}
}

func dialEthClient(ctx context.Context, rpcURL string) (Backend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// Backend returns the connected backend, dialing on first use
func (c *Client) Backend(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}
	if c.network == nil {
		return nil, domain.ErrNoNetwork
	}

	c.log.Debug("connecting", "network", c.network.Name, "rpc", c.network.RPCURL)
	backend, err := c.dial(ctx, c.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		closeBackend(backend)
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if c.network.ChainID == 0 {
		c.network.ChainID = networkChainID.Uint64()
	} else if networkChainID.Uint64() != c.network.ChainID {
		closeBackend(backend)
		return nil, fmt.Errorf("%w: %s expects chain ID %d, RPC reports %d",
			domain.ErrNetworkMismatch, c.network.Name, c.network.ChainID, networkChainID.Uint64())
	}

	c.backend = backend
	c.chainID = networkChainID
	c.closer = func() { closeBackend(backend) }
	return backend, nil
}

// ChainID returns the verified chain ID. Only valid after Backend succeeded.
func (c *Client) ChainID() *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chainID
}

// Close releases the RPC connection if one was opened
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
}

func closeBackend(backend Backend) {
	if closer, ok := backend.(interface{ Close() }); ok {
		closer.Close()
	}
}
