package quality

import (
	"errors"
	"fmt"
)

// Thresholds tunes the checks and the scoring stage.
type Thresholds struct {
	MinTextSize        float64 `yaml:"min_text_size"`
	DefaultFontSize    float64 `yaml:"default_font_size"`
	MaxSpacingVariance float64 `yaml:"max_spacing_variance"`
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`
	MinAlignedRatio    float64 `yaml:"min_aligned_ratio"`
	HierarchyRatio     float64 `yaml:"hierarchy_ratio"`
	IssuePenalty       int     `yaml:"issue_penalty"`
	WarningPenalty     int     `yaml:"warning_penalty"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinTextSize:        12,
		DefaultFontSize:    20,
		MaxSpacingVariance: 0.3,
		AlignmentTolerance: 5,
		MinAlignedRatio:    0.3,
		HierarchyRatio:     0.95,
		IssuePenalty:       10,
		WarningPenalty:     5,
	}
}

var ErrBadThreshold = errors.New("bad threshold")

func (t Thresholds) Validate() error {
	switch {
	case t.MinTextSize < 0:
		return fmt.Errorf("%w: min_text_size must be >= 0", ErrBadThreshold)
	case t.DefaultFontSize <= 0:
		return fmt.Errorf("%w: default_font_size must be > 0", ErrBadThreshold)
	case t.MaxSpacingVariance < 0:
		return fmt.Errorf("%w: max_spacing_variance must be >= 0", ErrBadThreshold)
	case t.AlignmentTolerance < 0:
		return fmt.Errorf("%w: alignment_tolerance must be >= 0", ErrBadThreshold)
	case t.MinAlignedRatio < 0:
		return fmt.Errorf("%w: min_aligned_ratio must be >= 0", ErrBadThreshold)
	case t.HierarchyRatio < 0 || t.HierarchyRatio > 1:
		return fmt.Errorf("%w: hierarchy_ratio must be in [0,1]", ErrBadThreshold)
	case t.IssuePenalty < 0 || t.WarningPenalty < 0:
		return fmt.Errorf("%w: penalties must be >= 0", ErrBadThreshold)
	}
	return nil
}
