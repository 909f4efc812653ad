package interactive

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/domain/config"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/manifoldco/promptui"
)

// ConfirmerAdapter asks the operator before a deployment to a mainnet
type ConfirmerAdapter struct {
	config   *config.RuntimeConfig
	progress usecase.ProgressSink
	prompt   func(label string) (bool, error)
}

// NewConfirmerAdapter creates a new confirmer adapter. The mainnet warning
// goes through progress so it does not tear the spinner line.
func NewConfirmerAdapter(cfg *config.RuntimeConfig, progress usecase.ProgressSink) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg, progress: progress, prompt: confirmPrompt}
}

// ConfirmDeploy returns true without asking when --yes was given or the
// session is non-interactive
func (c *ConfirmerAdapter) ConfirmDeploy(ctx context.Context, network *domain.Network, contractName string) (bool, error) {
	if c.config.AssumeYes || c.config.NonInteractive || isCI() {
		return true, nil
	}

	c.progress.Warn(fmt.Sprintf("%s is a mainnet (chain ID %d)", network.Label(), network.ChainID))
	return c.prompt(fmt.Sprintf("Deploy %s to %s", contractName, network.Name))
}

func confirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isCI() bool {
	return os.Getenv("CI") == "true"
}

var _ usecase.DeployConfirmer = (*ConfirmerAdapter)(nil)
