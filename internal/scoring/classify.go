package scoring

import (
	"math"
	"strconv"

	"github.com/anonify/anonify/internal/dataset"
)

// categoricalRatio is the distinct-to-count threshold separating categorical
// columns from free text: below it values repeat enough to be categories.
const categoricalRatio = 0.5

// Classify infers the type of a single column from its non-null values.
// All-numeric columns are numeric; otherwise the distinct-value ratio decides
// between categorical and text. A column with no non-null values classifies
// as categorical, which routes it to the degenerate-input handling of the
// categorical metrics.
func Classify(col *dataset.Column) ColumnType {
	values := col.NonNull()
	if len(values) == 0 {
		return TypeCategorical
	}
	if allNumeric(values) {
		return TypeNumeric
	}
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if float64(len(distinct))/float64(len(values)) < categoricalRatio {
		return TypeCategorical
	}
	return TypeText
}

// allNumeric reports whether every value parses as a finite real number.
func allNumeric(values []string) bool {
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// resolveType decides the metric family for one column pair. A declared hint
// always wins over inference; inference uses the original side. The numeric
// family requires both sides to actually hold numbers, so a numeric
// resolution against non-numeric data is a classification failure rather
// than a guess.
func resolveType(name string, orig, anon *dataset.Column, hint *ColumnType) (ColumnType, *ClassificationError) {
	var resolved ColumnType
	if hint != nil {
		resolved = *hint
	} else {
		resolved = Classify(orig)
	}

	if resolved == TypeNumeric {
		if !allNumeric(orig.NonNull()) {
			return 0, &ClassificationError{
				Column: name,
				Reason: "declared numeric but original values are not all numeric",
			}
		}
		if !allNumeric(anon.NonNull()) {
			return 0, &ClassificationError{
				Column: name,
				Reason: "original column is numeric but transformed values are not",
			}
		}
	}
	return resolved, nil
}
