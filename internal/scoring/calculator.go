package scoring

import (
	"fmt"
	"strconv"

	"github.com/anonify/anonify/internal/dataset"
)

// DistanceFunc is the contract for a column distance: two same-typed columns
// in, one value in [0,1] out. Registered custom functions follow the same
// contract as the built-in calculators.
type DistanceFunc func(original, transformed *dataset.Column) (float64, error)

// Registry maps column types to caller-supplied distance functions. It is an
// explicit, caller-owned object: populate it before scoring starts and treat
// it as read-only while a score computation is running.
type Registry struct {
	overrides map[ColumnType]DistanceFunc
}

func NewRegistry() *Registry {
	return &Registry{overrides: make(map[ColumnType]DistanceFunc)}
}

// Register installs fn as the distance calculator for columns of type t,
// replacing the built-in metrics for that type.
func (r *Registry) Register(t ColumnType, fn DistanceFunc) {
	r.overrides[t] = fn
}

func (r *Registry) lookup(t ColumnType) (DistanceFunc, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.overrides[t]
	return fn, ok
}

// columnDistance computes one column's DistanceResult for its resolved type,
// consulting the registry first. A custom function that errors or panics
// contributes the conservative distance 0, with the failure recorded on the
// result, mirroring the built-ins' defensive posture.
func columnDistance(name string, t ColumnType, orig, anon *dataset.Column, reg *Registry) DistanceResult {
	if fn, ok := reg.lookup(t); ok {
		d, err := invokeCustom(fn, orig, anon)
		res := DistanceResult{
			Column:     name,
			Type:       t,
			TypeName:   t.String(),
			Distance:   clamp01(d),
			SubMetrics: map[string]float64{"custom": clamp01(d)},
		}
		if err != nil {
			res.Distance = 0
			res.SubMetrics["custom"] = 0
			res.CustomMetricError = err.Error()
		}
		return res
	}

	var sub map[string]float64
	var distance float64
	switch t {
	case TypeCategorical:
		sub, distance = categoricalDistance(orig, anon)
	case TypeNumeric:
		sub, distance = numericDistance(orig, anon)
	default:
		sub, distance = textDistance(orig, anon)
	}
	return DistanceResult{
		Column:     name,
		Type:       t,
		TypeName:   t.String(),
		Distance:   clamp01(distance),
		SubMetrics: sub,
	}
}

func invokeCustom(fn DistanceFunc, orig, anon *dataset.Column) (d float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			d = 0
			err = fmt.Errorf("custom metric panicked: %v", r)
		}
	}()
	return fn(orig, anon)
}

// categoricalDistance averages the association loss (1 - Cramér's V) with the
// Jaccard distance over the value sets.
func categoricalDistance(orig, anon *dataset.Column) (map[string]float64, float64) {
	v := CramersV(orig.Values, anon.Values)
	jaccard := JaccardDistance(orig.Values, anon.Values)
	sub := map[string]float64{
		"cramers_v":        v,
		"jaccard_distance": jaccard,
	}
	return sub, ((1 - v) + jaccard) / 2
}

// numericDistance averages the normalized Wasserstein distance, the KS
// statistic and the mean-shift distance.
func numericDistance(orig, anon *dataset.Column) (map[string]float64, float64) {
	x := floats(orig)
	y := floats(anon)
	w := WassersteinNormalized(x, y)
	ks := KolmogorovSmirnov(x, y)
	shift := MeanShift(x, y)
	sub := map[string]float64{
		"wasserstein":        w,
		"kolmogorov_smirnov": ks,
		"mean_shift":         shift,
	}
	return sub, (w + ks + shift) / 3
}

// textDistance averages the unique-value replacement rate with the pairwise
// string similarity distance.
func textDistance(orig, anon *dataset.Column) (map[string]float64, float64) {
	replacement := UniqueReplacement(orig.Values, anon.Values)
	similarity := PairwiseSimilarityDistance(orig.Values, anon.Values)
	sub := map[string]float64{
		"unique_replacement":  replacement,
		"similarity_distance": similarity,
	}
	return sub, (replacement + similarity) / 2
}

// floats parses the non-null values of a numeric-resolved column. Resolution
// already verified parseability, so errors only guard against races on the
// caller's data.
func floats(col *dataset.Column) []float64 {
	out := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if v == dataset.Null {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}
