package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/analyzer"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "coopstats",
	Short: "SC2 co-op replay statistics tool",
	Long:  "Parse StarCraft II co-op .SC2Replay files and compute per-player unit and kill statistics.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML analysis config (defaults apply when unset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compsCmd)
}

func loadConfig() (analyzer.Config, error) {
	if configPath == "" {
		return analyzer.DefaultConfig(), nil
	}
	return analyzer.LoadConfig(configPath)
}
