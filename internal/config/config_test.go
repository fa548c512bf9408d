package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MalithGihan/dqa-service/internal/quality"
)

func TestParseThresholds(t *testing.T) {
	t.Parallel()

	got, err := ParseThresholds([]byte("min_text_size: 14\nwarning_penalty: 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := quality.DefaultThresholds()
	want.MinTextSize = 14
	want.WarningPenalty = 3
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseThresholdsEmpty(t *testing.T) {
	t.Parallel()

	got, err := ParseThresholds(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != quality.DefaultThresholds() {
		t.Errorf("empty file should keep defaults, got %+v", got)
	}
}

func TestParseThresholdsRejects(t *testing.T) {
	t.Parallel()

	if _, err := ParseThresholds([]byte("min_spacing: 20\n")); err == nil {
		t.Error("unknown key accepted")
	}
	if _, err := ParseThresholds([]byte("issue_penalty: -1\n")); !errors.Is(err, quality.ErrBadThreshold) {
		t.Errorf("expected ErrBadThreshold, got %v", err)
	}
	if _, err := ParseThresholds([]byte("hierarchy_ratio: [1]\n")); err == nil {
		t.Error("wrong type accepted")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "thresholds.yaml")
	if err := os.WriteFile(p, []byte("alignment_tolerance: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_ROOT", dir)
	t.Setenv("DQA_THRESHOLDS", p)
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DataRoot != dir || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Thresholds.AlignmentTolerance != 8 {
		t.Errorf("alignment tolerance = %v, want 8", cfg.Thresholds.AlignmentTolerance)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_ROOT", "")
	t.Setenv("DQA_THRESHOLDS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8081" || cfg.DataRoot != "./projects" || cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Thresholds != quality.DefaultThresholds() {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
}

func TestLoadMissingThresholdsFile(t *testing.T) {
	t.Setenv("DQA_THRESHOLDS", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
