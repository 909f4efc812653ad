package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProject creates an empty Hardhat project and moves into it
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hardhat.config.js"), []byte("module.exports = {};\n"), 0644))
	t.Chdir(root)
	for _, key := range []string{"PRIVATE_KEY", "GONANA_PRIVATE_KEY", "GONANA_NETWORK", "GONANA_RPC_URL", "CI"} {
		t.Setenv(key, "")
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"debug", "non-interactive", "network", "rpc-url"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"contract", "artifacts", "verifier", "timeout", "yes"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "n", cmd.PersistentFlags().Lookup("network").Shorthand)
	assert.Equal(t, "y", cmd.Flags().Lookup("yes").Shorthand)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gonana-deploy version dev")
}

func TestNetworksCmd(t *testing.T) {
	newProject(t)

	out, err := execute(t, "networks", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "bscTestnet")
	assert.Contains(t, out, "https://testnet.bscscan.com")
	assert.Contains(t, out, "31337")
}

func TestDeploy_MissingPrivateKey(t *testing.T) {
	newProject(t)

	out, err := execute(t, "--non-interactive")
	require.Error(t, err)

	var wfErr *domain.WorkflowError
	require.ErrorAs(t, err, &wfErr)
	assert.Equal(t, domain.StepFactory, wfErr.Step)
	assert.ErrorIs(t, err, domain.ErrMissingPrivateKey)

	assert.Equal(t, "Deploying GonanaEscrow to BNB Chain Testnet...\n", out)
}

func TestDeploy_UnknownVerifier(t *testing.T) {
	newProject(t)

	_, err := execute(t, "--verifier", "sourcify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported verifier")
}

func TestDeploy_RejectsArguments(t *testing.T) {
	newProject(t)

	_, err := execute(t, "GonanaEscrow")
	assert.Error(t, err)
}
