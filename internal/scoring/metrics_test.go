package scoring

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCramersVIdenticalColumns(t *testing.T) {
	x := []string{"A", "B", "A", "C"}
	v := CramersV(x, x)
	if diff := cmp.Diff(1.0, v, approx); diff != "" {
		t.Errorf("CramersV of identical columns (-want +got):\n%s", diff)
	}
}

func TestCramersVDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
	}{
		{"empty", nil, nil},
		{"single category original", []string{"A", "A", "A"}, []string{"X", "Y", "Z"}},
		{"single category transformed", []string{"A", "B", "C"}, []string{"X", "X", "X"}},
		{"all nulls", []string{"", "", ""}, []string{"", "", ""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CramersV(tc.x, tc.y); got != 0 {
				t.Errorf("CramersV(%v, %v) = %v, want 0", tc.x, tc.y, got)
			}
		})
	}
}

func TestCramersVRange(t *testing.T) {
	x := []string{"A", "B", "C", "A", "B", "C", "A", "B"}
	y := []string{"X", "X", "Y", "Y", "Z", "Z", "X", "Y"}
	v := CramersV(x, y)
	if v < 0 || v > 1 {
		t.Errorf("CramersV = %v, want value in [0,1]", v)
	}
}

func TestJaccardDistance(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want float64
	}{
		{"identical sets", []string{"A", "B", "A"}, []string{"B", "A"}, 0},
		{"no overlap", []string{"A", "B"}, []string{"C", "D"}, 1},
		{"half overlap", []string{"A", "B"}, []string{"B", "C"}, 1 - 1.0/3.0},
		{"empty union", []string{"", ""}, nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := JaccardDistance(tc.x, tc.y)
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("JaccardDistance (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWassersteinIdentical(t *testing.T) {
	x := []float64{10, 20, 30, 40}
	if got := WassersteinNormalized(x, x); got != 0 {
		t.Errorf("WassersteinNormalized of identical samples = %v, want 0", got)
	}
}

func TestWassersteinOrderInvariant(t *testing.T) {
	x := []float64{0, 100}
	y := []float64{100, 0}
	if got := WassersteinNormalized(x, y); got != 0 {
		t.Errorf("WassersteinNormalized of reordered multiset = %v, want 0", got)
	}
}

func TestWassersteinScaleInvariant(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 2, 3, 4}
	base := WassersteinNormalized(x, y)

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	for i := range x {
		xs[i] = x[i] * 10
	}
	for i := range y {
		ys[i] = y[i] * 10
	}
	scaled := WassersteinNormalized(xs, ys)
	if diff := cmp.Diff(base, scaled, approx); diff != "" {
		t.Errorf("rescaling both columns changed the normalized distance (-base +scaled):\n%s", diff)
	}
	if base <= 0 {
		t.Errorf("expected a positive distance for shifted samples, got %v", base)
	}
}

func TestWassersteinDegenerateInputs(t *testing.T) {
	if got := WassersteinNormalized(nil, []float64{1, 2}); got != 0 {
		t.Errorf("empty original = %v, want 0", got)
	}
	if got := WassersteinNormalized([]float64{1, 2}, nil); got != 0 {
		t.Errorf("empty transformed = %v, want 0", got)
	}
	if got := WassersteinNormalized([]float64{5, 5, 5}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("zero range = %v, want 0", got)
	}
}

func TestWassersteinCappedAtOne(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{1000, 1001}
	if got := WassersteinNormalized(x, y); got != 1 {
		t.Errorf("far-shifted distance = %v, want cap at 1", got)
	}
}

func TestKolmogorovSmirnov(t *testing.T) {
	x := []float64{10, 20, 30, 40}
	if got := KolmogorovSmirnov(x, x); got != 0 {
		t.Errorf("KS of identical samples = %v, want 0", got)
	}

	disjoint := KolmogorovSmirnov([]float64{1, 2, 3}, []float64{10, 20, 30})
	if diff := cmp.Diff(1.0, disjoint, approx); diff != "" {
		t.Errorf("KS of disjoint samples (-want +got):\n%s", diff)
	}

	if got := KolmogorovSmirnov(nil, x); got != 0 {
		t.Errorf("KS with empty side = %v, want 0", got)
	}
}

func TestMeanShift(t *testing.T) {
	x := []float64{10, 20, 30, 40}
	if got := MeanShift(x, x); got != 0 {
		t.Errorf("MeanShift of identical samples = %v, want 0", got)
	}

	// Zero original variance never errors, regardless of the means.
	if got := MeanShift([]float64{7, 7, 7}, []float64{1000}); got != 0 {
		t.Errorf("MeanShift with zero std = %v, want 0", got)
	}

	if got := MeanShift(x, []float64{1e9}); got != 1 {
		t.Errorf("MeanShift far beyond one std = %v, want cap at 1", got)
	}

	shift := MeanShift([]float64{0, 2}, []float64{1, 3})
	want := 1 / math.Sqrt2 // shift 1, sample std sqrt(2)
	if diff := cmp.Diff(want, shift, approx); diff != "" {
		t.Errorf("MeanShift (-want +got):\n%s", diff)
	}
}

func TestUniqueReplacement(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want float64
	}{
		{"all replaced", []string{"abc", "def"}, []string{"xyz", "uvw"}, 1},
		{"none replaced", []string{"abc", "def"}, []string{"def", "abc"}, 0},
		{"half replaced", []string{"abc", "def"}, []string{"abc", "qqq"}, 0.5},
		{"empty original", []string{"", ""}, []string{"abc"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UniqueReplacement(tc.x, tc.y)
			if diff := cmp.Diff(tc.want, got, approx); diff != "" {
				t.Errorf("UniqueReplacement (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPairwiseSimilarityDistance(t *testing.T) {
	identical := []string{"alpha", "beta"}
	if got := PairwiseSimilarityDistance(identical, identical); got != 0 {
		t.Errorf("identical columns = %v, want 0", got)
	}

	// No shared characters between any pair: similarity 0 per row.
	unrelated := PairwiseSimilarityDistance([]string{"abc", "def"}, []string{"xyz", "uvw"})
	if diff := cmp.Diff(1.0, unrelated, approx); diff != "" {
		t.Errorf("unrelated columns (-want +got):\n%s", diff)
	}

	nulls := PairwiseSimilarityDistance([]string{"", "abc"}, []string{"", ""})
	// null/null row is similarity 1, null-vs-value row is similarity 0.
	if diff := cmp.Diff(0.5, nulls, approx); diff != "" {
		t.Errorf("null handling (-want +got):\n%s", diff)
	}

	if got := PairwiseSimilarityDistance(nil, nil); got != 0 {
		t.Errorf("empty columns = %v, want 0", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {1.5, 1}, {math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := clamp01(tc.in); got != tc.want {
			t.Errorf("clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
