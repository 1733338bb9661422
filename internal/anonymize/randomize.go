package anonymize

import (
	"fmt"
	"strconv"

	"github.com/anonify/anonify/internal/config"
	"github.com/anonify/anonify/internal/dataset"
)

// RandomizeColumn replaces non-null values with random draws: either an
// element of a configured list (optionally weighted) or an integer in a
// configured range.
func (a *Anonymizer) RandomizeColumn(values []string, rule config.ColumnRule) ([]string, error) {
	switch rule.RandomizeMethod {
	case "random_element":
		return a.randomElements(values, rule)
	case "random_int":
		out := make([]string, len(values))
		for i, v := range values {
			if v == dataset.Null {
				continue
			}
			out[i] = strconv.Itoa(a.faker.Number(rule.Min, rule.Max))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown randomize_method %q", rule.RandomizeMethod)
}

func (a *Anonymizer) randomElements(values []string, rule config.ColumnRule) ([]string, error) {
	if len(rule.Values) == 0 {
		return nil, fmt.Errorf("random_element requires a values list")
	}

	draw := func() (string, error) { return a.faker.RandomString(rule.Values), nil }
	if len(rule.ValueWeights) > 0 {
		options := make([]any, len(rule.Values))
		for i, v := range rule.Values {
			options[i] = v
		}
		draw = func() (string, error) {
			picked, err := a.faker.Weighted(options, rule.ValueWeights)
			if err != nil {
				return "", fmt.Errorf("weighted draw: %w", err)
			}
			return picked.(string), nil
		}
	}

	out := make([]string, len(values))
	for i, v := range values {
		if v == dataset.Null {
			continue
		}
		picked, err := draw()
		if err != nil {
			return nil, err
		}
		out[i] = picked
	}
	return out, nil
}
