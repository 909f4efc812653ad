package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known Hardhat account #0
const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hardhat.config.js"), []byte("module.exports = {};\n"), 0644))
	return dir
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		root := newTestProject(t)
		t.Setenv("PRIVATE_KEY", testPrivateKey)
		t.Setenv("BSC_TESTNET_RPC_URL", "")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, "GonanaEscrow", cfg.ContractName)
		assert.Equal(t, "bscTestnet", cfg.Network.Name)
		assert.Equal(t, config.VerifierHardhat, cfg.Verifier)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Nil(t, cfg.FoundryConfig)
		require.NotNil(t, cfg.PrivateKey)
		assert.Equal(t,
			common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
			crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		)
	})

	t.Run("environment overrides", func(t *testing.T) {
		root := newTestProject(t)
		t.Setenv("GONANA_NETWORK", "hardhat")
		t.Setenv("GONANA_CONTRACT", "OtherEscrow")
		t.Setenv("GONANA_VERIFIER", "forge")
		t.Setenv("GONANA_ARTIFACTS", "build")
		t.Setenv("GONANA_RPC_URL", "http://127.0.0.1:9545")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)

		assert.Equal(t, "hardhat", cfg.Network.Name)
		assert.Equal(t, "http://127.0.0.1:9545", cfg.Network.RPCURL)
		assert.Equal(t, "OtherEscrow", cfg.ContractName)
		assert.Equal(t, config.VerifierForge, cfg.Verifier)
		assert.Equal(t, filepath.Join(root, "build"), cfg.ArtifactsDir)
	})

	t.Run("missing private key is not an error", func(t *testing.T) {
		root := newTestProject(t)
		t.Setenv("PRIVATE_KEY", "")
		t.Setenv("GONANA_PRIVATE_KEY", "")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Nil(t, cfg.PrivateKey)
	})

	t.Run("invalid private key", func(t *testing.T) {
		root := newTestProject(t)
		t.Setenv("PRIVATE_KEY", "0xnothex")

		_, err := Provider(SetupViper(root, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deployer private key")
	})

	t.Run("unsupported verifier", func(t *testing.T) {
		root := newTestProject(t)
		t.Setenv("GONANA_VERIFIER", "sourcify")

		_, err := Provider(SetupViper(root, nil))
		assert.Error(t, err)
	})

	t.Run("foundry endpoints", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("GONANA_TEST_BSC_RPC", "https://bsc-testnet.example.org")
		foundryToml := `[rpc_endpoints]
bscTestnet = "${GONANA_TEST_BSC_RPC}"
`
		require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(foundryToml), 0644))

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		require.NotNil(t, cfg.FoundryConfig)
		assert.Equal(t, "https://bsc-testnet.example.org", cfg.Network.RPCURL)
	})
}

func TestSetupViper_LoadsDotEnv(t *testing.T) {
	root := newTestProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("GONANA_DOTENV_PROBE=loaded\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GONANA_DOTENV_PROBE") })

	v := SetupViper(root, nil)

	assert.Equal(t, "loaded", v.GetString("dotenv_probe"))
}

func TestFindProjectRoot(t *testing.T) {
	root := newTestProject(t)
	nested := filepath.Join(root, "scripts", "deploy")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	found, err := FindProjectRoot()
	require.NoError(t, err)

	// macOS tmp dirs are symlinked
	expected, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
