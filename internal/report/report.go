// Package report renders scoring results for files and the terminal. It is a
// pure consumer of the score result structure.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anonify/anonify/internal/scoring"
)

// WriteJSON renders the result as indented JSON.
func WriteJSON(w io.Writer, res *scoring.ScoreResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV renders one row per column: name, resolved type, aggregated
// distance, then each sub-metric as its own name=value cell.
func WriteCSV(w io.Writer, res *scoring.ScoreResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"column", "type", "distance", "sub_metrics"}); err != nil {
		return err
	}
	for _, name := range sortedColumns(res) {
		col := res.Columns[name]
		row := []string{
			name,
			col.TypeName,
			strconv.FormatFloat(col.Distance, 'f', 4, 64),
			formatSubMetrics(col.SubMetrics),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	for _, f := range res.Failures {
		if err := writer.Write([]string{f.Column, "error", "", f.Reason}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Summary renders a terminal-friendly breakdown of the result.
func Summary(res *scoring.ScoreResult, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Anonify Score: %.2f/100\n", res.Score)
	fmt.Fprintf(&b, "Global Distance: %.4f\n", res.GlobalDistance)
	fmt.Fprintf(&b, "Interpretation: %s\n", res.Interpretation)
	fmt.Fprintf(&b, "Columns Scored: %d\n", len(res.Columns))

	if verbose {
		for _, name := range sortedColumns(res) {
			col := res.Columns[name]
			fmt.Fprintf(&b, "\nColumn: %s\n", name)
			fmt.Fprintf(&b, "  Type: %s\n", col.TypeName)
			fmt.Fprintf(&b, "  Distance: %.4f\n", col.Distance)
			for _, metric := range sortedMetrics(col.SubMetrics) {
				fmt.Fprintf(&b, "  %s: %.4f\n", metric, col.SubMetrics[metric])
			}
			if col.CustomMetricError != "" {
				fmt.Fprintf(&b, "  custom metric error: %s\n", col.CustomMetricError)
			}
		}
	}
	if len(res.Failures) > 0 {
		fmt.Fprintf(&b, "\nUnscored Columns: %d\n", len(res.Failures))
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  %s: %s\n", f.Column, f.Reason)
		}
	}
	return b.String()
}

// WriteFiles writes JSON and CSV reports into dir, named after the dataset
// and a timestamp, and returns the paths by format.
func WriteFiles(dir, datasetName string, res *scoring.ScoreResult) (map[string]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	base := fmt.Sprintf("%s_report_%s", datasetName, time.Now().Format("20060102_150405"))
	paths := make(map[string]string, 2)

	jsonPath := filepath.Join(dir, base+".json")
	if err := writeFile(jsonPath, func(w io.Writer) error { return WriteJSON(w, res) }); err != nil {
		return nil, err
	}
	paths["json"] = jsonPath

	csvPath := filepath.Join(dir, base+".csv")
	if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, res) }); err != nil {
		return nil, err
	}
	paths["csv"] = csvPath

	return paths, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer file.Close()
	if err := render(file); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func formatSubMetrics(metrics map[string]float64) string {
	parts := make([]string, 0, len(metrics))
	for _, name := range sortedMetrics(metrics) {
		parts = append(parts, fmt.Sprintf("%s=%.4f", name, metrics[name]))
	}
	return strings.Join(parts, "; ")
}

func sortedColumns(res *scoring.ScoreResult) []string {
	names := make([]string, 0, len(res.Columns))
	for name := range res.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedMetrics(metrics map[string]float64) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
