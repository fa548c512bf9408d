// Package render prints quality reports for humans.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

var (
	headerColor     = color.New(color.Bold)
	issueColor      = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow, color.Bold)
	suggestionColor = color.New(color.FgCyan, color.Bold)
)

func gradeColor(grade string) *color.Color {
	switch grade {
	case "A", "B":
		return color.New(color.FgGreen, color.Bold)
	case "C", "D":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// Text writes the report block shown by `dqa analyze`.
func Text(w io.Writer, r types.Report) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	headerColor.Fprintln(w, "DIAGRAM QUALITY REPORT")
	fmt.Fprintf(w, "%s\n\n", rule)

	fmt.Fprint(w, "Overall Score: ")
	gradeColor(r.Grade).Fprintf(w, "%d/100 (Grade: %s)", r.Score, r.Grade)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Quality Level: %s\n", r.QualityLevel)
	fmt.Fprintf(w, "Elements Analyzed: %d\n", r.ElementCount)

	section(w, issueColor, fmt.Sprintf("Issues (%d):", len(r.Issues)), r.Issues)
	section(w, warningColor, fmt.Sprintf("Warnings (%d):", len(r.Warnings)), r.Warnings)
	section(w, suggestionColor, "Suggestions:", r.Suggestions)

	fmt.Fprintf(w, "\n%s\n\n", rule)
}

func section(w io.Writer, c *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	c.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  • %s\n", it)
	}
}
