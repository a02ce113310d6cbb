// Package report renders analysis reports as console tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// PrintMatchSummary prints a one-line summary header for the match.
func PrintMatchSummary(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "\nMap: %s  |  Date: %s  |  Result: %s  |  Length: %s  |  Enemy: %s (%.0f%%)\n\n",
		r.Map, r.Date, r.Result, formatDuration(r.LengthSeconds),
		r.CompositionGuess, r.CompositionConfidence*100)
	if r.DifficultyModifier > 0 {
		fmt.Fprintf(w, "Brutal+%d\n\n", r.DifficultyModifier)
	}
}

// PrintPlayerSection prints one human participant's header line and unit
// table.
func PrintPlayerSection(w io.Writer, s *model.PlayerSection) {
	header := fmt.Sprintf("%s  |  %s", s.Name, s.Commander)
	if s.Prestige != "" {
		header += fmt.Sprintf(" (%s)", s.Prestige)
	}
	fmt.Fprintf(w, "%s  |  Level %d  |  APM %d  |  Kills %d\n",
		header, s.CommanderLevel, s.APM, s.Kills)
	if outlaws, ok := s.Icons["outlaws"].([]string); ok {
		fmt.Fprintf(w, "Outlaws: %s\n", strings.Join(outlaws, ", "))
	}

	printUnitTable(w, s.Units)
	fmt.Fprintln(w)
}

// PrintNoPartner prints the explicit single-player marker where the partner
// section would go.
func PrintNoPartner(w io.Writer) {
	fmt.Fprintf(w, "(%s)\n\n", model.NoPartnerMarker)
}

// PrintOpposingSection prints the opposing-force unit table.
func PrintOpposingSection(w io.Writer, f *model.ForceSection) {
	fmt.Fprintln(w, "Opposing force")
	printUnitTable(w, f.Units)
	fmt.Fprintln(w)
}

func printUnitTable(w io.Writer, units model.StatsBucket) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("UNIT", "CREATED", "LOST", "KILLS", "K%")

	for _, e := range units {
		created := strconv.Itoa(e.Stats.Created)
		lost := strconv.Itoa(e.Stats.Lost)
		if e.Stats.LifecycleUnknown {
			created, lost = "?", "?"
		}
		table.Append(
			e.Name,
			created,
			lost,
			strconv.Itoa(e.Stats.Kills),
			fmt.Sprintf("%.0f%%", e.Stats.KillFraction*100),
		)
	}
	table.Render()
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
