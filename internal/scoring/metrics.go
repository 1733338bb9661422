package scoring

import (
	"math"
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gonum.org/v1/gonum/stat"
)

// The primitives below share one contract: two same-typed columns of data in,
// one value in [0,1] out. Degenerate inputs (empty sets, zero variance, a
// single category, an empty union) resolve to the conservative distance 0
// instead of an error; under-reporting distance is safer than crashing or
// over-reporting it.

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CramersV measures the association between the original and transformed
// values of a categorical column via the chi-square statistic of their
// contingency table: V = sqrt((chi2/n) / min(k-1, r-1)). Nulls are dropped
// from each side and the sides aligned to the shorter length. Returns 0 when
// either side has fewer than two distinct values or the table is empty.
func CramersV(x, y []string) float64 {
	xc := dropNulls(x)
	yc := dropNulls(y)
	n := len(xc)
	if len(yc) < n {
		n = len(yc)
	}
	if n == 0 {
		return 0
	}
	xc, yc = xc[:n], yc[:n]

	rows := make(map[string]int)
	cols := make(map[string]int)
	table := make(map[[2]string]int)
	for i := 0; i < n; i++ {
		rows[xc[i]]++
		cols[yc[i]]++
		table[[2]string{xc[i], yc[i]}]++
	}
	r, k := len(rows), len(cols)
	if r < 2 || k < 2 {
		return 0
	}

	var chi2 float64
	for rv, rc := range rows {
		for cv, cc := range cols {
			expected := float64(rc) * float64(cc) / float64(n)
			observed := float64(table[[2]string{rv, cv}])
			diff := observed - expected
			chi2 += diff * diff / expected
		}
	}
	if chi2 == 0 {
		return 0
	}

	minDim := float64(r - 1)
	if k < r {
		minDim = float64(k - 1)
	}
	return clamp01(math.Sqrt(chi2 / float64(n) / minDim))
}

// JaccardDistance is 1 - |A∩B|/|A∪B| over the distinct non-null values of the
// two columns. An empty union returns 0.
func JaccardDistance(x, y []string) float64 {
	setX := distinctSet(x)
	setY := distinctSet(y)

	union := len(setY)
	intersection := 0
	for v := range setX {
		if _, ok := setY[v]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return clamp01(1 - float64(intersection)/float64(union))
}

// WassersteinNormalized is the 1D earth-mover's distance between the two
// empirical distributions, normalized by the original column's range and
// capped at 1. Returns 0 when either side is empty or the range is zero.
func WassersteinNormalized(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	xs := sortedCopy(x)
	ys := sortedCopy(y)

	xrange := xs[len(xs)-1] - xs[0]
	if xrange == 0 {
		return 0
	}
	return clamp01(wasserstein(xs, ys) / xrange)
}

// wasserstein integrates |F_x - F_y| between the empirical CDFs over the
// merged support. Inputs must be sorted.
func wasserstein(xs, ys []float64) float64 {
	all := make([]float64, 0, len(xs)+len(ys))
	all = append(all, xs...)
	all = append(all, ys...)
	sort.Float64s(all)

	var dist float64
	var i, j int
	for k := 0; k < len(all)-1; k++ {
		v := all[k]
		for i < len(xs) && xs[i] <= v {
			i++
		}
		for j < len(ys) && ys[j] <= v {
			j++
		}
		fx := float64(i) / float64(len(xs))
		fy := float64(j) / float64(len(ys))
		dist += math.Abs(fx-fy) * (all[k+1] - all[k])
	}
	return dist
}

// KolmogorovSmirnov is the supremum gap between the two empirical CDFs,
// bounded in [0,1] by construction. Returns 0 when either side is empty.
func KolmogorovSmirnov(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	xs := sortedCopy(x)
	ys := sortedCopy(y)
	return clamp01(stat.KolmogorovSmirnov(xs, nil, ys, nil))
}

// MeanShift is |mean(x) - mean(y)| / std(x), capped at 1. A zero (or
// undefined) original standard deviation returns 0 regardless of the means.
func MeanShift(x, y []float64) float64 {
	if len(x) < 2 || len(y) == 0 {
		return 0
	}
	std := stat.StdDev(x, nil)
	if std == 0 || math.IsNaN(std) {
		return 0
	}
	shift := math.Abs(stat.Mean(x, nil) - stat.Mean(y, nil))
	return clamp01(shift / std)
}

// UniqueReplacement is the fraction of the original column's distinct values
// that no longer appear in the transformed column. An empty original
// distinct set returns 0.
func UniqueReplacement(x, y []string) float64 {
	setX := distinctSet(x)
	if len(setX) == 0 {
		return 0
	}
	setY := distinctSet(y)
	common := 0
	for v := range setX {
		if _, ok := setY[v]; ok {
			common++
		}
	}
	return clamp01(1 - float64(common)/float64(len(setX)))
}

// PairwiseSimilarityDistance compares the columns position-wise: per row a
// normalized edit-distance similarity between the paired strings, with a
// null-vs-null pair counting as similarity 1 and a null-vs-value mismatch as
// 0. Returns 1 minus the average similarity; empty columns return 0.
func PairwiseSimilarityDistance(x, y []string) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		switch {
		case x[i] == "" && y[i] == "":
			total += 1
		case x[i] == "" || y[i] == "":
			// similarity 0
		default:
			total += levenshtein.RatioForStrings([]rune(x[i]), []rune(y[i]), levenshtein.DefaultOptions)
		}
	}
	return clamp01(1 - total/float64(n))
}

func dropNulls(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func distinctSet(values []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
