package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gonana/gonana-deploy/internal/domain/bindings"
	"github.com/gonana/gonana-deploy/internal/usecase"
)

// EscrowReader calls the view getters of a deployed GonanaEscrow
type EscrowReader struct {
	client  *Client
	binding *bindings.GonanaEscrow
}

// NewEscrowReader creates a new escrow reader
func NewEscrowReader(client *Client) *EscrowReader {
	return &EscrowReader{
		client:  client,
		binding: bindings.NewGonanaEscrow(),
	}
}

// PlatformFee returns the platform fee in basis points
func (r *EscrowReader) PlatformFee(ctx context.Context, address common.Address) (*big.Int, error) {
	out, err := r.call(ctx, address, r.binding.PackPlatformFee())
	if err != nil {
		return nil, err
	}
	return r.binding.UnpackPlatformFee(out)
}

// Owner returns the contract owner
func (r *EscrowReader) Owner(ctx context.Context, address common.Address) (common.Address, error) {
	out, err := r.call(ctx, address, r.binding.PackOwner())
	if err != nil {
		return common.Address{}, err
	}
	return r.binding.UnpackOwner(out)
}

func (r *EscrowReader) call(ctx context.Context, address common.Address, data []byte) ([]byte, error) {
	backend, err := r.client.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CallContract(ctx, ethereum.CallMsg{To: &address, Data: data}, nil)
}

var _ usecase.EscrowReader = (*EscrowReader)(nil)
