// Package stats holds the dispersion and clustering helpers used to judge
// spacing consistency and alignment.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CoefficientOfVariation returns the population standard deviation of values
// divided by their mean. It is 0 for fewer than two values or a zero mean.
func CoefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// CountNearPairs counts unordered pairs i<j with |values[i]-values[j]| <= threshold.
func CountNearPairs(values []float64, threshold float64) int {
	n := 0
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if math.Abs(values[i]-values[j]) <= threshold {
				n++
			}
		}
	}
	return n
}
