package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gonana/gonana-deploy/internal/domain"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	sectionColor = color.New(color.Bold)
	labelColor   = color.New(color.FgCyan)
	linkColor    = color.New(color.FgBlue, color.Underline)
	commandColor = color.New(color.FgYellow)
)

// DeployRenderer renders the deployment report
type DeployRenderer struct {
	out     io.Writer
	printer *message.Printer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

// RenderStart announces the deployment before anything is sent
func (r *DeployRenderer) RenderStart(contractName string, network *domain.Network) {
	fmt.Fprintf(r.out, "Deploying %s to %s...\n", contractName, network.Label())
}

// Render prints the full report. Nothing is printed for a nil result.
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if result == nil {
		return nil
	}
	address := result.Address.Hex()

	successColor.Fprintf(r.out, "✅ %s deployed to: %s\n", result.ContractName, address)

	fmt.Fprintln(r.out)
	sectionColor.Fprintln(r.out, "Contract details:")
	r.detail("Platform Fee", fmt.Sprintf("%s basis points (%s)", result.PlatformFee.String(), domain.FormatBasisPoints(result.PlatformFee)))
	r.detail("Owner", result.Owner.Hex())
	r.detail("Transaction", result.TxHash.Hex())
	r.detail("Block", fmt.Sprintf("%d", result.BlockNumber))
	r.detail("Gas used", r.printer.Sprintf("%d", result.GasUsed))

	if result.ExplorerURL != "" {
		explorer := result.Network.ExplorerName
		if explorer == "" {
			explorer = "explorer"
		}
		fmt.Fprintln(r.out)
		sectionColor.Fprintf(r.out, "View on %s:\n", explorer)
		linkColor.Fprintln(r.out, result.ExplorerURL)
	}

	if result.VerifyCommand != "" {
		fmt.Fprintln(r.out)
		sectionColor.Fprintln(r.out, "To verify contract, run:")
		commandColor.Fprintln(r.out, result.VerifyCommand)
	}

	return nil
}

func (r *DeployRenderer) detail(label, value string) {
	fmt.Fprintf(r.out, "- %s %s\n", labelColor.Sprint(label+":"), value)
}

var _ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
