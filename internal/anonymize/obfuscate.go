package anonymize

import (
	"fmt"
	"time"

	"github.com/anonify/anonify/internal/config"
	"github.com/anonify/anonify/internal/dataset"
)

// dateLayouts are the input formats accepted when parsing date columns.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
	time.RFC3339,
}

const (
	defaultDateFormat = "2006-01-02"
	defaultThreshold  = 30
	defaultMinRange   = "1900-01-01"
	defaultMaxRange   = "2100-01-01"
)

// ObfuscateColumn jitters each date value by a uniform random offset of up to
// the configured threshold in days, either direction. A jittered date that
// falls outside the [min_range, max_range] bounds keeps its original value.
// Values that do not parse as dates pass through unchanged.
func (a *Anonymizer) ObfuscateColumn(values []string, rule config.ColumnRule) ([]string, error) {
	format := rule.Format
	if format == "" {
		format = defaultDateFormat
	}
	threshold := rule.Threshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	minRange, err := parseDate(orDefault(rule.MinRange, defaultMinRange))
	if err != nil {
		return nil, fmt.Errorf("invalid min_range: %w", err)
	}
	maxRange, err := parseDate(orDefault(rule.MaxRange, defaultMaxRange))
	if err != nil {
		return nil, fmt.Errorf("invalid max_range: %w", err)
	}

	out := make([]string, len(values))
	for i, v := range values {
		if v == dataset.Null {
			continue
		}
		date, err := parseDate(v)
		if err != nil {
			out[i] = v
			continue
		}
		delta := a.faker.Number(-threshold, threshold)
		jittered := date.AddDate(0, 0, delta)
		if jittered.Before(minRange) || jittered.After(maxRange) {
			jittered = date
		}
		out[i] = jittered.Format(format)
	}
	return out, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
