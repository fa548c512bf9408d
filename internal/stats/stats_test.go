package stats

import (
	"math"
	"testing"
)

func TestCoefficientOfVariation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 0},
		{"uniform", []float64{100, 100, 100}, 0},
		{"zero mean", []float64{-10, 10}, 0},
		{"spread", []float64{50, 100, 150, 200}, math.Sqrt(3125) / 125},
		{"two values", []float64{100, 300}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CoefficientOfVariation(tt.values)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CoefficientOfVariation(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestCoefficientOfVariationExactZero(t *testing.T) {
	t.Parallel()

	if got := CoefficientOfVariation([]float64{100, 100, 100}); got != 0 {
		t.Errorf("expected exactly 0, got %v", got)
	}
	if got := CoefficientOfVariation([]float64{50, 100, 150, 200}); got <= 0 {
		t.Errorf("expected > 0, got %v", got)
	}
}

func TestCountNearPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		values    []float64
		threshold float64
		want      int
	}{
		{"empty", nil, 5, 0},
		{"single", []float64{1}, 5, 0},
		{"all equal", []float64{10, 10, 10}, 5, 3},
		{"boundary inclusive", []float64{0, 5}, 5, 1},
		{"just outside", []float64{0, 5.01}, 5, 0},
		{"mixed", []float64{120, 380, 120, 380, 180}, 5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CountNearPairs(tt.values, tt.threshold); got != tt.want {
				t.Errorf("CountNearPairs(%v, %v) = %d, want %d", tt.values, tt.threshold, got, tt.want)
			}
		})
	}
}
