package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

const threeTier = `{"elements":[
	{"id":"web","type":"rectangle","x":120,"y":110,"width":180,"height":100},
	{"id":"mobile","type":"rectangle","x":380,"y":110,"width":180,"height":100},
	{"id":"api","type":"rectangle","x":120,"y":440,"width":180,"height":100},
	{"id":"auth","type":"rectangle","x":380,"y":440,"width":180,"height":100},
	{"id":"db","type":"rectangle","x":180,"y":770,"width":180,"height":100},
	{"id":"text1","type":"text","fontSize":18,"x":160,"y":140,"width":100,"height":40},
	{"id":"text2","type":"text","fontSize":18,"x":420,"y":140,"width":100,"height":40},
	{"id":"text3","type":"text","fontSize":18,"x":160,"y":470,"width":100,"height":40},
	{"id":"arrow1","type":"arrow","x":210,"y":210,"startBinding":{"elementId":"web"},"endBinding":{"elementId":"api"}},
	{"id":"arrow2","type":"arrow","x":210,"y":540,"startBinding":{"elementId":"api"},"endBinding":{"elementId":"db"}}
]}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Setenv("DQA_THRESHOLDS", "")
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	scene := filepath.Join(dir, "arch.json")
	if err := os.WriteFile(scene, []byte(threeTier), 0o644); err != nil {
		t.Fatal(err)
	}
	reportPath := filepath.Join(dir, "report.json")

	t.Run("text", func(t *testing.T) {
		out, err := run(t, "analyze", "--color=off", "--json=false", "-o", reportPath, scene)
		if err != nil {
			t.Fatalf("analyze: %v\n%s", err, out)
		}
		for _, want := range []string{"DIAGRAM QUALITY REPORT", "Elements Analyzed: 10", "Report saved to"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		b, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatal(err)
		}
		var rep types.Report
		if err := json.Unmarshal(b, &rep); err != nil {
			t.Fatal(err)
		}
		if rep.Score < 80 || (rep.Grade != "A" && rep.Grade != "B") || rep.ElementCount != 10 {
			t.Errorf("saved report = %+v", rep)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "analyze", "--json", "--output=", scene)
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		var rep types.Report
		if err := json.Unmarshal([]byte(out), &rep); err != nil {
			t.Fatalf("stdout is not a JSON report: %v\n%s", err, out)
		}
		if rep.ElementCount != 10 {
			t.Errorf("element count = %d", rep.ElementCount)
		}
	})

	t.Run("custom thresholds", func(t *testing.T) {
		cfgPath := filepath.Join(dir, "strict.yaml")
		if err := os.WriteFile(cfgPath, []byte("min_text_size: 24\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		out, err := run(t, "analyze", "--json", "--output=", "--config", cfgPath, scene)
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		var rep types.Report
		if err := json.Unmarshal([]byte(out), &rep); err != nil {
			t.Fatal(err)
		}
		if len(rep.Issues) != 1 || !strings.HasPrefix(rep.Issues[0], "Small text detected: 3 elements") {
			t.Errorf("issues = %v", rep.Issues)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := run(t, "analyze", "--config=", filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
