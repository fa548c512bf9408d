package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "dqa",
	Short:         "Diagram quality analyzer",
	Long:          `dqa scores diagram snapshots (Excalidraw JSON, YAML, draw.io, SVG) and suggests fixes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version + " (" + GitCommit + ")"
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().String("config", "", "YAML thresholds file (overrides DQA_THRESHOLDS)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("dqa: %v", err)
		os.Exit(1)
	}
}
