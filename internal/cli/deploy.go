package cli

import (
	"github.com/gonana/gonana-deploy/internal/cli/render"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// runDeploy runs the deployment workflow and prints the report. Nothing but
// the opening line is printed when any step fails.
func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	renderer := render.NewDeployRenderer(cmd.OutOrStdout())
	renderer.RenderStart(app.Config.ContractName, app.Config.Network)

	result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{})
	if err != nil {
		return err
	}

	return renderer.Render(result)
}
