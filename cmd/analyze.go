package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/analyzer"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/replay"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/report"
)

var (
	analyzeNames []string
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <replay.SC2Replay>",
	Short: "Analyze a co-op replay and print unit statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeNames, "names", nil, "name fragments identifying the primary player")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the report as JSON instead of tables")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rd, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	rep, err := a.Run(rd, analyzer.Options{
		PrimaryNames: analyzeNames,
		// Arcade-lobby recordings carry a clock that starts before the
		// loading screen; their filenames are prefixed with [MM].
		DeferredStart: strings.HasPrefix(filepath.Base(args[0]), "[MM]"),
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		return report.WriteJSON(os.Stdout, rep)
	}

	report.PrintMatchSummary(os.Stdout, rep)
	report.PrintPlayerSection(os.Stdout, &rep.Primary)
	if rep.Partner != nil {
		report.PrintPlayerSection(os.Stdout, rep.Partner)
	} else {
		report.PrintNoPartner(os.Stdout)
	}
	report.PrintOpposingSection(os.Stdout, &rep.OpposingForce)
	return nil
}
