// Package anonymize implements the per-column transforms that produce the
// dataset consumed by the scoring engine. Each transform is a stateless
// column mutator selected by the configuration.
package anonymize

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anonify/anonify/internal/config"
	"github.com/anonify/anonify/internal/dataset"
)

// Anonymizer applies configured transforms to dataset columns.
type Anonymizer struct {
	faker *gofakeit.Faker
}

// New returns an anonymizer with a randomly seeded value generator.
func New() *Anonymizer {
	return &Anonymizer{faker: gofakeit.New(0)}
}

// NewSeeded returns an anonymizer with deterministic output, for tests.
func NewSeeded(seed uint64) *Anonymizer {
	return &Anonymizer{faker: gofakeit.New(seed)}
}

// Apply transforms a clone of ds according to cfg and returns it; ds itself
// is never mutated. The config must already be validated. The optional
// progress callback fires once per transformed column.
func (a *Anonymizer) Apply(ds *dataset.Dataset, cfg *config.Config, progress func(column string)) (*dataset.Dataset, error) {
	out := ds.Clone()
	for _, col := range out.Columns {
		rule, ok := cfg.Columns[col.Name]
		if !ok {
			continue
		}
		transformed, err := a.applyRule(col.Values, rule)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		col.Values = transformed
		if progress != nil {
			progress(col.Name)
		}
	}
	return out, nil
}

func (a *Anonymizer) applyRule(values []string, rule config.ColumnRule) ([]string, error) {
	switch rule.Method {
	case config.MethodHash:
		return HashColumn(values, rule.Salt), nil
	case config.MethodFake:
		return a.FakeColumn(values, rule.FakeType)
	case config.MethodNullColumn:
		return NullColumn(values), nil
	case config.MethodRandomize:
		return a.RandomizeColumn(values, rule)
	case config.MethodObfuscate:
		return a.ObfuscateColumn(values, rule)
	case config.MethodDoNotChange:
		return values, nil
	}
	return nil, fmt.Errorf("unknown anonymization method %q", rule.Method)
}

// NullColumn replaces every value with null.
func NullColumn(values []string) []string {
	return make([]string, len(values))
}
