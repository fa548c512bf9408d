package quality

import (
	"fmt"

	"github.com/MalithGihan/dqa-service/internal/geometry"
	"github.com/MalithGihan/dqa-service/internal/stats"
	"github.com/MalithGihan/dqa-service/pkg/types"
)

// Findings is what a single check contributes to a report.
type Findings struct {
	Issues   []string
	Warnings []string
}

func (f Findings) Fired() bool { return len(f.Issues) > 0 || len(f.Warnings) > 0 }

// Check is one rule of the pipeline. Run must not modify elems.
type Check struct {
	Name       string
	Suggestion string
	Run        func(elems []types.Element, t Thresholds) Findings
}

// DefaultChecks returns the standard rule set in report order.
func DefaultChecks() []Check {
	return []Check{
		{
			Name:       "text-readability",
			Suggestion: "Increase font size to at least 12px for better readability",
			Run:        checkTextReadability,
		},
		{
			Name:       "spacing",
			Suggestion: "Use consistent spacing (e.g., 50px, 100px, 150px) between elements",
			Run:        checkSpacing,
		},
		{
			Name:       "alignment",
			Suggestion: "Align elements to create visual order (left/center/right or top/middle/bottom)",
			Run:        checkAlignment,
		},
		{
			Name:       "overlap",
			Suggestion: "Separate overlapping elements or increase spacing",
			Run:        checkOverlaps,
		},
		{
			Name:       "arrows",
			Suggestion: "Connect all arrows to shapes using bind-arrow command",
			Run:        checkArrows,
		},
		{
			Name:       "hierarchy",
			Suggestion: "Use different sizes for different importance levels (larger = more important)",
			Run:        checkHierarchy,
		},
	}
}

func shapesOf(elems []types.Element) []geometry.Rect {
	var out []geometry.Rect
	for _, e := range elems {
		if e.IsShape() {
			out = append(out, geometry.Bounds(e))
		}
	}
	return out
}

func checkTextReadability(elems []types.Element, t Thresholds) Findings {
	small := 0
	for _, e := range elems {
		if e.Type != types.TypeText {
			continue
		}
		size := t.DefaultFontSize
		if e.FontSize != nil {
			size = *e.FontSize
		}
		if size < t.MinTextSize {
			small++
		}
	}
	if small == 0 {
		return Findings{}
	}
	return Findings{Issues: []string{
		fmt.Sprintf("Small text detected: %d elements with font size < %gpx", small, t.MinTextSize),
	}}
}

func checkSpacing(elems []types.Element, t Thresholds) Findings {
	shapes := shapesOf(elems)
	if len(shapes) < 2 {
		return Findings{}
	}
	var hGaps, vGaps []float64
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			g, ok := geometry.RectGap(shapes[i], shapes[j])
			if !ok {
				continue
			}
			if g.Direction == geometry.Horizontal {
				hGaps = append(hGaps, g.Distance)
			} else {
				vGaps = append(vGaps, g.Distance)
			}
		}
	}

	var f Findings
	if cv := stats.CoefficientOfVariation(hGaps); cv > t.MaxSpacingVariance {
		f.Warnings = append(f.Warnings, fmt.Sprintf("Inconsistent horizontal spacing (variance: %.1f%%)", cv*100))
	}
	if cv := stats.CoefficientOfVariation(vGaps); cv > t.MaxSpacingVariance {
		f.Warnings = append(f.Warnings, fmt.Sprintf("Inconsistent vertical spacing (variance: %.1f%%)", cv*100))
	}
	return f
}

// checkAlignment sums near pairs over four coordinate lists. An element whose
// left edge and center both line up with another is counted twice.
func checkAlignment(elems []types.Element, t Thresholds) Findings {
	shapes := shapesOf(elems)
	if len(shapes) < 2 {
		return Findings{}
	}
	lefts := make([]float64, len(shapes))
	tops := make([]float64, len(shapes))
	cxs := make([]float64, len(shapes))
	cys := make([]float64, len(shapes))
	for i, r := range shapes {
		lefts[i], tops[i] = r.X, r.Y
		cxs[i], cys[i] = r.CenterX(), r.CenterY()
	}
	aligned := 0
	for _, coords := range [][]float64{lefts, tops, cxs, cys} {
		aligned += stats.CountNearPairs(coords, t.AlignmentTolerance)
	}
	if float64(aligned) < float64(len(shapes))*t.MinAlignedRatio {
		return Findings{Warnings: []string{"Few aligned elements detected - consider using alignment tools"}}
	}
	return Findings{}
}

func checkOverlaps(elems []types.Element, _ Thresholds) Findings {
	shapes := shapesOf(elems)
	pairs := 0
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if geometry.RectOverlaps(shapes[i], shapes[j]) {
				pairs++
			}
		}
	}
	if pairs == 0 {
		return Findings{}
	}
	return Findings{Issues: []string{fmt.Sprintf("Overlapping elements detected: %d pairs", pairs)}}
}

func checkArrows(elems []types.Element, _ Thresholds) Findings {
	disconnected := 0
	for _, e := range elems {
		if e.Type == types.TypeArrow && (e.StartBinding == nil || e.EndBinding == nil) {
			disconnected++
		}
	}
	if disconnected == 0 {
		return Findings{}
	}
	return Findings{Issues: []string{
		fmt.Sprintf("Disconnected arrows: %d arrows not properly connected", disconnected),
	}}
}

func checkHierarchy(elems []types.Element, t Thresholds) Findings {
	shapes := shapesOf(elems)
	if len(shapes) < 2 {
		return Findings{}
	}
	minArea, maxArea := shapes[0].Area(), shapes[0].Area()
	for _, r := range shapes[1:] {
		minArea = min(minArea, r.Area())
		maxArea = max(maxArea, r.Area())
	}
	if maxArea > 0 && minArea/maxArea > t.HierarchyRatio {
		return Findings{Warnings: []string{"All elements are similar size - consider using size for visual hierarchy"}}
	}
	return Findings{}
}
