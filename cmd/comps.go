package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"
)

var compsCmd = &cobra.Command{
	Use:   "comps",
	Short: "List the known enemy composition templates",
	RunE:  runComps,
}

func runComps(cmd *cobra.Command, args []string) error {
	comps, err := gamedata.Compositions()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
	table.Header("COMPOSITION", "WAVES", "EXAMPLE WAVE")

	for _, c := range comps {
		example := ""
		if len(c.Waves) > 0 {
			example = strings.Join(c.Waves[len(c.Waves)-1], ", ")
		}
		table.Append(c.Name, strconv.Itoa(len(c.Waves)), example)
	}
	table.Render()
	return nil
}
