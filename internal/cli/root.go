package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gonana/gonana-deploy/internal/app"
	"github.com/gonana/gonana-deploy/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Running it without a subcommand deploys
// the configured contract.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gonana-deploy",
		Short: "Deploy the GonanaEscrow contract",
		Long: `gonana-deploy deploys the GonanaEscrow contract from its Hardhat or Foundry
artifact, waits for the deployment to be mined, reads back the platform fee
and owner, and prints the explorer link and verification command.

The deployer key is read from PRIVATE_KEY (or GONANA_PRIVATE_KEY), usually
provided through a .env file in the project root.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with every flag the command knows about
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			slog.SetDefault(appInstance.Log)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cobra.OnFinalize(cancel)
			}

			cmd.SetContext(ctx)

			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (default bscTestnet)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides the network's configured URL")

	// Deployment flags
	rootCmd.Flags().StringP("contract", "c", "", "Contract to deploy (default GonanaEscrow)")
	rootCmd.Flags().String("artifacts", "", "Directory holding <Contract>.json artifacts (default: auto-detect)")
	rootCmd.Flags().String("verifier", "", "Verification command to print: hardhat or forge (default hardhat)")
	rootCmd.Flags().Duration("timeout", 0, "Give up after this long (default 5m)")
	rootCmd.Flags().BoolP("yes", "y", false, "Skip the mainnet confirmation prompt")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
