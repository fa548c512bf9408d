// Package quality scores a diagram snapshot.
//
// An Analyzer runs an ordered list of independent checks over the snapshot,
// turns the resulting issue and warning counts into a 0-100 score and a
// letter grade, and maps the checks that fired to remediation suggestions.
// Analysis is pure: the same snapshot always yields the same report, and an
// Analyzer can be shared between goroutines.
package quality

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

const (
	emptyIssue      = "Empty diagram"
	emptySuggestion = "Add elements to the diagram"
	noneSuggestion  = "Diagram looks good! No major issues detected."
)

type Analyzer struct {
	thresholds Thresholds
	checks     []Check
	parallel   bool
}

type Option func(*Analyzer)

func WithThresholds(t Thresholds) Option { return func(a *Analyzer) { a.thresholds = t } }

// WithChecks replaces the rule set. Report order follows the slice order;
// checks without a Run func are dropped.
func WithChecks(checks []Check) Option {
	return func(a *Analyzer) {
		a.checks = make([]Check, 0, len(checks))
		for _, c := range checks {
			if c.Run != nil {
				a.checks = append(a.checks, c)
			}
		}
	}
}

// WithParallel runs the checks concurrently. Reports are identical to a
// sequential run.
func WithParallel(on bool) Option { return func(a *Analyzer) { a.parallel = on } }

func New(opts ...Option) *Analyzer {
	a := &Analyzer{thresholds: DefaultThresholds(), checks: DefaultChecks()}
	for _, o := range opts {
		o(a)
	}
	return a
}

var defaultAnalyzer = New()

// Analyze scores scene with the default thresholds and checks.
func Analyze(scene types.Scene) types.Report { return defaultAnalyzer.Analyze(scene) }

func (a *Analyzer) Thresholds() Thresholds { return a.thresholds }

func (a *Analyzer) Analyze(scene types.Scene) types.Report {
	elems := scene.Elements
	if len(elems) == 0 {
		return types.Report{
			Score:        0,
			Grade:        Grade(0),
			QualityLevel: QualityLevel(0),
			Issues:       []string{emptyIssue},
			Warnings:     []string{},
			Suggestions:  []string{emptySuggestion},
			ElementCount: 0,
		}
	}

	results := a.run(elems)

	issues, warnings := []string{}, []string{}
	var fired []Check
	for i, f := range results {
		issues = append(issues, f.Issues...)
		warnings = append(warnings, f.Warnings...)
		if f.Fired() {
			fired = append(fired, a.checks[i])
		}
	}
	score := Score(len(issues), len(warnings), a.thresholds)
	return types.Report{
		Score:        score,
		Grade:        Grade(score),
		QualityLevel: QualityLevel(score),
		Issues:       issues,
		Warnings:     warnings,
		Suggestions:  Suggest(fired),
		ElementCount: len(elems),
	}
}

// run returns one Findings per check, indexed like a.checks.
func (a *Analyzer) run(elems []types.Element) []Findings {
	results := make([]Findings, len(a.checks))
	if !a.parallel {
		for i, c := range a.checks {
			results[i] = c.Run(elems, a.thresholds)
		}
		return results
	}

	// a panicking check is re-raised here so it surfaces on the caller's
	// goroutine, as it would in a sequential run
	panics := make([]any, len(a.checks))
	var g errgroup.Group
	for i, c := range a.checks {
		g.Go(func() error {
			defer func() { panics[i] = recover() }()
			results[i] = c.Run(elems, a.thresholds)
			return nil
		})
	}
	_ = g.Wait() // checks never fail
	for i, p := range panics {
		if p != nil {
			panic(fmt.Sprintf("check %q: %v", a.checks[i].Name, p))
		}
	}
	return results
}
