package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MalithGihan/dqa-service/internal/config"
	"github.com/MalithGihan/dqa-service/internal/ingest"
	"github.com/MalithGihan/dqa-service/internal/quality"
	"github.com/MalithGihan/dqa-service/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <snapshot>",
	Short: "Score a diagram snapshot and print the quality report",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("output", "o", "", "save the JSON report to this file")
	analyzeCmd.Flags().Bool("json", false, "print the JSON report instead of the text summary")
	analyzeCmd.Flags().Bool("parallel", false, "run checks concurrently")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyColor(cmd)

	scene, err := ingest.Load(args[0])
	if err != nil {
		return err
	}
	parallel, _ := cmd.Flags().GetBool("parallel")
	a := quality.New(quality.WithThresholds(cfg.Thresholds), quality.WithParallel(parallel))
	rep := a.Analyze(scene)
	debugf(cfg, "analyzed %s: %d element(s), score %d", args[0], rep.ElementCount, rep.Score)

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, "Analyzing diagram quality...")
		render.Text(out, rep)
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); !asJSON {
			fmt.Fprintf(out, "Report saved to %s\n", path)
		}
	}
	return nil
}

// loadConfig reads the environment and lets --config replace DQA_THRESHOLDS.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		t, err := config.LoadThresholds(path)
		if err != nil {
			return cfg, err
		}
		cfg.ThresholdsPath, cfg.Thresholds = path, t
	}
	return cfg, nil
}

func applyColor(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
