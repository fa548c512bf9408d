package quality

// Score starts at 100 and subtracts the issue and warning penalties,
// clamped to [0, 100].
func Score(issues, warnings int, t Thresholds) int {
	s := 100 - issues*t.IssuePenalty - warnings*t.WarningPenalty
	return max(0, min(100, s))
}

var bands = []struct {
	min   int
	grade string
	level string
}{
	{90, "A", "Excellent"},
	{80, "B", "Good"},
	{70, "C", "Fair"},
	{60, "D", "Poor"},
}

func Grade(score int) string {
	for _, b := range bands {
		if score >= b.min {
			return b.grade
		}
	}
	return "F"
}

func QualityLevel(score int) string {
	for _, b := range bands {
		if score >= b.min {
			return b.level
		}
	}
	return "Needs Improvement"
}

// Suggest returns one suggestion per fired check, in check order, or the
// all-clear message when nothing fired.
func Suggest(fired []Check) []string {
	out := make([]string, 0, len(fired))
	for _, c := range fired {
		if c.Suggestion != "" {
			out = append(out, c.Suggestion)
		}
	}
	if len(out) == 0 {
		out = append(out, noneSuggestion)
	}
	return out
}
