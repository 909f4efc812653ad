package verification

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

type stubSources map[string]string

func (s stubSources) LoadContract(ctx context.Context, name string) (*models.Contract, error) {
	path, ok := s[name]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	return &models.Contract{Name: name, Path: path}, nil
}

func TestCommandBuilder_BuildVerifyCommand(t *testing.T) {
	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	bscTestnet := &domain.Network{
		Name:          "bscTestnet",
		ChainID:       97,
		VerifyNetwork: "bscTestnet",
	}

	tests := []struct {
		name     string
		kind     config.VerifierKind
		network  *domain.Network
		sources  SourceLookup
		contract string
		want     string
	}{
		{
			name:     "hardhat default",
			network:  bscTestnet,
			contract: "GonanaEscrow",
			want:     "npx hardhat verify --network bscTestnet 0x5FbDB2315678afecb367f032d93F642f64180aa3",
		},
		{
			name:     "hardhat falls back to network name",
			kind:     config.VerifierHardhat,
			network:  &domain.Network{Name: "opbnb", ChainID: 5611},
			contract: "GonanaEscrow",
			want:     "npx hardhat verify --network opbnb 0x5FbDB2315678afecb367f032d93F642f64180aa3",
		},
		{
			name:     "forge with source",
			kind:     config.VerifierForge,
			network:  bscTestnet,
			sources:  stubSources{"GonanaEscrow": "contracts/GonanaEscrow.sol"},
			contract: "GonanaEscrow",
			want:     "forge verify-contract 0x5FbDB2315678afecb367f032d93F642f64180aa3 contracts/GonanaEscrow.sol:GonanaEscrow --chain-id 97 --watch",
		},
		{
			name: "forge with verifier url",
			kind: config.VerifierForge,
			network: &domain.Network{
				Name:        "bsc",
				ChainID:     56,
				VerifierURL: "https://api.bscscan.com/api",
			},
			sources:  stubSources{},
			contract: "GonanaEscrow",
			want:     "forge verify-contract 0x5FbDB2315678afecb367f032d93F642f64180aa3 GonanaEscrow --chain-id 56 --verifier-url https://api.bscscan.com/api --watch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewCommandBuilder(&config.RuntimeConfig{Verifier: tt.kind}, tt.sources)
			assert.Equal(t, tt.want, builder.BuildVerifyCommand(tt.network, tt.contract, address))
		})
	}
}
