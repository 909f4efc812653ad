package render

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *usecase.DeployContractResult {
	network := &domain.Network{
		Name:          "bscTestnet",
		DisplayName:   "BNB Chain Testnet",
		ChainID:       97,
		ExplorerURL:   "https://testnet.bscscan.com",
		ExplorerName:  "BscScan",
		VerifyNetwork: "bscTestnet",
	}
	address := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	return &usecase.DeployContractResult{
		ContractName:  "GonanaEscrow",
		Network:       network,
		Address:       address,
		TxHash:        common.HexToHash("0x4a2f5ed1b6d57a1e0d4b2f3e9c0a6b7d8e9f0a1b2c3d4e5f60718293a4b5c6d7"),
		BlockNumber:   48213377,
		GasUsed:       1234567,
		PlatformFee:   big.NewInt(250),
		Owner:         common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		ExplorerURL:   network.AddressURL(address.Hex()),
		VerifyCommand: "npx hardhat verify --network bscTestnet " + address.Hex(),
	}
}

const expectedReport = `✅ GonanaEscrow deployed to: 0x5FbDB2315678afecb367f032d93F642f64180aa3

Contract details:
- Platform Fee: 250 basis points (2.5%)
- Owner: 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
- Transaction: 0x4a2f5ed1b6d57a1e0d4b2f3e9c0a6b7d8e9f0a1b2c3d4e5f60718293a4b5c6d7
- Block: 48213377
- Gas used: 1,234,567

View on BscScan:
https://testnet.bscscan.com/address/0x5FbDB2315678afecb367f032d93F642f64180aa3

To verify contract, run:
npx hardhat verify --network bscTestnet 0x5FbDB2315678afecb367f032d93F642f64180aa3
`

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDeployRenderer_Render(t *testing.T) {
	withoutColor(t)

	t.Run("full report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeployRenderer(&buf).Render(testResult()))
		assert.Equal(t, expectedReport, buf.String())
	})

	t.Run("byte identical across runs", func(t *testing.T) {
		var first, second bytes.Buffer
		require.NoError(t, NewDeployRenderer(&first).Render(testResult()))
		require.NoError(t, NewDeployRenderer(&second).Render(testResult()))
		assert.Equal(t, first.Bytes(), second.Bytes())
	})

	t.Run("network without explorer", func(t *testing.T) {
		result := testResult()
		result.Network = &domain.Network{Name: "localhost", ChainID: 31337}
		result.ExplorerURL = ""

		var buf bytes.Buffer
		require.NoError(t, NewDeployRenderer(&buf).Render(result))
		assert.NotContains(t, buf.String(), "View on")
		assert.Contains(t, buf.String(), "To verify contract, run:")
	})

	t.Run("nil result prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeployRenderer(&buf).Render(nil))
		assert.Empty(t, buf.String())
	})
}

func TestDeployRenderer_RenderStart(t *testing.T) {
	var buf bytes.Buffer
	NewDeployRenderer(&buf).RenderStart("GonanaEscrow", testResult().Network)
	assert.Equal(t, "Deploying GonanaEscrow to BNB Chain Testnet...\n", buf.String())
}

func TestNetworksRenderer_RenderNetworksList(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{
		Networks: []usecase.NetworkStatus{
			{Name: "bsc", ChainID: 56, RPCURL: "https://bsc-dataseed.bnbchain.org", Explorer: "https://bscscan.com", Mainnet: true},
			{Name: "bscTestnet", ChainID: 97, RPCURL: "https://data-seed-prebsc-1-s1.bnbchain.org:8545", Explorer: "https://testnet.bscscan.com", Selected: true},
			{Name: "opbnb", RPCURL: "https://opbnb-testnet-rpc.bnbchain.org"},
			{Name: "sepolia", MissingEnvVar: "SEPOLIA_RPC"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Available Networks")
	assert.Contains(t, out, "bsc (mainnet)")
	assert.Contains(t, out, "● bscTestnet")
	assert.Contains(t, out, "auto")
	assert.Contains(t, out, "https://testnet.bscscan.com")
	assert.Contains(t, out, "set SEPOLIA_RPC")
	assert.NotContains(t, out, "error:")
}
