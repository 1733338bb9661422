package scoring

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/anonify/anonify/internal/dataset"
)

// Scorer computes the anonymization score for a dataset pair. The zero value
// is not usable; construct with NewScorer and configure before calling Score.
// A Scorer holds no state across calls, so one instance may score many pairs.
type Scorer struct {
	// Weights maps column names to positive aggregation weights. Missing
	// entries default to 1.0.
	Weights map[string]float64
	// Hints maps column names to declared types, overriding inference.
	Hints map[string]ColumnType
	// Registry supplies custom per-type distance functions. Must be fully
	// populated before Score is called; it is read concurrently.
	Registry *Registry
	// Workers bounds the per-column concurrency. Defaults to GOMAXPROCS.
	Workers int

	logger *slog.Logger
}

func NewScorer() *Scorer {
	return &Scorer{
		Weights:  make(map[string]float64),
		Hints:    make(map[string]ColumnType),
		Registry: NewRegistry(),
		logger:   slog.Default(),
	}
}

// Score classifies every column shared by the two datasets, computes each
// scorable column's distance concurrently, and aggregates the weighted global
// score. Columns that fail classification are reported in the result, not
// dropped; if nothing at all is scorable the call fails.
func (s *Scorer) Score(original, transformed *dataset.Dataset) (*ScoreResult, error) {
	if original == nil || transformed == nil {
		return nil, fmt.Errorf("scoring requires both datasets: %w", ErrNoScorableColumns)
	}
	if len(original.Columns) == 0 || len(transformed.Columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns: %w", ErrNoScorableColumns)
	}
	for name, w := range s.Weights {
		if w <= 0 {
			return nil, fmt.Errorf("weight for column %q must be positive, got %v", name, w)
		}
	}

	type job struct {
		name       string
		colType    ColumnType
		orig, anon *dataset.Column
	}
	var jobs []job
	var failures []ClassificationError

	for _, orig := range original.Columns {
		anon, ok := transformed.Column(orig.Name)
		if !ok {
			failures = append(failures, ClassificationError{
				Column: orig.Name,
				Reason: "column missing from transformed dataset",
			})
			continue
		}
		var hint *ColumnType
		if h, ok := s.Hints[orig.Name]; ok {
			hint = &h
		}
		t, cerr := resolveType(orig.Name, orig, anon, hint)
		if cerr != nil {
			failures = append(failures, *cerr)
			continue
		}
		jobs = append(jobs, job{name: orig.Name, colType: t, orig: orig, anon: anon})
	}
	for _, anon := range transformed.Columns {
		if _, ok := original.Column(anon.Name); !ok {
			failures = append(failures, ClassificationError{
				Column: anon.Name,
				Reason: "column missing from original dataset",
			})
		}
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].Column < failures[j].Column })

	if len(jobs) == 0 {
		return nil, fmt.Errorf("all %d columns failed classification: %w", len(failures), ErrNoScorableColumns)
	}

	// Each column reads only its own data plus the read-only registry, so
	// columns are computed independently and collected at the end.
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make(map[string]DistanceResult, len(jobs))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(j job) {
			defer wg.Done()
			defer func() { <-sem }()
			res := columnDistance(j.name, j.colType, j.orig, j.anon, s.Registry)
			mu.Lock()
			results[j.name] = res
			mu.Unlock()
		}(j)
	}
	wg.Wait()

	var weightedSum, totalWeight float64
	for name, res := range results {
		weight := 1.0
		if w, ok := s.Weights[name]; ok {
			weight = w
		}
		weightedSum += weight * res.Distance
		totalWeight += weight
		if res.CustomMetricError != "" {
			s.log().Warn("custom metric failed, using conservative distance 0",
				"column", name, "error", res.CustomMetricError)
		}
	}
	globalDistance := clamp01(weightedSum / totalWeight)
	score := 1 + 99*globalDistance

	s.log().Debug("scored dataset pair",
		"columns", len(results), "failures", len(failures),
		"global_distance", globalDistance, "score", score)

	return &ScoreResult{
		Score:          score,
		GlobalDistance: globalDistance,
		Interpretation: Interpret(score),
		Columns:        results,
		Failures:       failures,
	}, nil
}

func (s *Scorer) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}
