package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gonana/gonana-deploy/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the network catalogue as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingLeft:      "  ",
		PaddingRight:     " ",
		MiddleHorizontal: "─",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"Network", "Chain ID", "RPC URL", "Explorer"})

	for _, network := range result.Networks {
		name := network.Name
		if network.Selected {
			name = color.New(color.FgGreen, color.Bold).Sprint("● " + name)
		} else {
			name = "  " + name
		}
		if network.Mainnet {
			name += color.New(color.FgYellow).Sprint(" (mainnet)")
		}

		if network.MissingEnvVar != "" {
			t.AppendRow(table.Row{name, "-", color.New(color.FgYellow).Sprintf("set %s", network.MissingEnvVar), ""})
			continue
		}
		if network.Error != nil {
			t.AppendRow(table.Row{name, "-", color.New(color.FgRed).Sprintf("error: %v", network.Error), ""})
			continue
		}

		chainID := "auto"
		if network.ChainID != 0 {
			chainID = fmt.Sprintf("%d", network.ChainID)
		}
		t.AppendRow(table.Row{name, chainID, network.RPCURL, network.Explorer})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}
