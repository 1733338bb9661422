package scoring

import (
	"errors"
	"fmt"
)

// ColumnType is the closed set of column kinds the engine can score.
type ColumnType int

const (
	TypeCategorical ColumnType = iota
	TypeNumeric
	TypeText
)

func (t ColumnType) String() string {
	switch t {
	case TypeCategorical:
		return "categorical"
	case TypeNumeric:
		return "numeric"
	case TypeText:
		return "text"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// ParseColumnType resolves a declared type hint string.
func ParseColumnType(s string) (ColumnType, error) {
	switch s {
	case "categorical":
		return TypeCategorical, nil
	case "numeric", "numerical":
		return TypeNumeric, nil
	case "text":
		return TypeText, nil
	}
	return 0, fmt.Errorf("unknown column type %q", s)
}

// DistanceResult holds one column's scoring outcome: the named raw sub-metric
// values, their aggregate in [0,1], and the type the column resolved to.
type DistanceResult struct {
	Column     string             `json:"column"`
	Type       ColumnType         `json:"-"`
	TypeName   string             `json:"type"`
	Distance   float64            `json:"distance"`
	SubMetrics map[string]float64 `json:"sub_metrics"`

	// CustomMetricError records a registered custom metric that failed; the
	// column then contributes the conservative distance 0.
	CustomMetricError string `json:"custom_metric_error,omitempty"`
}

// ClassificationError marks a column that could not be scored. Such columns
// are excluded from the aggregate and reported, never silently dropped.
type ClassificationError struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// ScoreResult is the full outcome of scoring a dataset pair.
type ScoreResult struct {
	// Score is the public anonymization score on the 1-100 scale.
	Score float64 `json:"anonify_score"`
	// GlobalDistance is the weight-normalized mean column distance in [0,1].
	GlobalDistance float64 `json:"global_distance"`
	Interpretation string  `json:"interpretation"`

	Columns  map[string]DistanceResult `json:"columns"`
	Failures []ClassificationError     `json:"failures,omitempty"`
}

// ErrNoScorableColumns is returned when every column failed classification or
// a dataset had no columns at all. No partial score is produced in that case.
var ErrNoScorableColumns = errors.New("no scorable columns")

// Interpret maps a 1-100 score onto its fixed interpretation band.
func Interpret(score float64) string {
	switch {
	case score <= 20:
		return "Very Low Anonymization - Data is largely unchanged"
	case score <= 40:
		return "Low Anonymization - Some changes but patterns remain"
	case score <= 60:
		return "Moderate Anonymization - Reasonable privacy protection"
	case score <= 80:
		return "High Anonymization - Strong privacy protection"
	default:
		return "Very High Anonymization - Maximum privacy protection"
	}
}
