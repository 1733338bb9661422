package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/anonify/anonify/internal/anonymize"
	"github.com/anonify/anonify/internal/audit"
	"github.com/anonify/anonify/internal/config"
	"github.com/anonify/anonify/internal/dataset"
	"github.com/anonify/anonify/internal/report"
	"github.com/anonify/anonify/internal/scoring"
)

var (
	inputPath  string
	configPath string
	outputPath string
	withScores bool
	reportDir  string
	auditPath  string
)

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize",
	Short: "Anonymize a CSV file per a YAML configuration",
	Long: `Reads a CSV file, applies the column transforms declared
in the configuration, and writes the anonymized copy.
Optionally scores the result and generates reports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ds, err := dataset.ReadCSVFile(inputPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(ds.Names()); err != nil {
			return err
		}

		info, err := os.Stat(inputPath)
		if err != nil {
			return err
		}
		slog.Info("loaded dataset",
			"file", inputPath,
			"rows", humanize.Comma(int64(ds.Rows())),
			"columns", len(ds.Columns),
			"size", humanize.Bytes(uint64(info.Size())))

		var auditW io.Writer
		if auditPath != "" {
			auditFile, err := os.Create(auditPath)
			if err != nil {
				return fmt.Errorf("failed to create audit log: %w", err)
			}
			defer auditFile.Close()
			auditW = auditFile
		}
		trail := audit.New(auditW)
		trail.Record(audit.EventRunStart, map[string]any{
			"input":   inputPath,
			"config":  configPath,
			"rows":    ds.Rows(),
			"columns": len(ds.Columns),
		})

		bar := progressbar.NewOptions(len(cfg.Columns),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Anonymizing columns..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)

		anon, err := anonymize.New().Apply(ds, cfg, func(column string) {
			bar.Add(1)
			trail.Record(audit.EventColumnProcessed, map[string]any{
				"column": column,
				"method": cfg.Columns[column].Method,
			})
		})
		if err != nil {
			return err
		}
		bar.Finish()

		if outputPath == "" {
			ext := filepath.Ext(inputPath)
			outputPath = strings.TrimSuffix(inputPath, ext) + "_anonymized" + ext
		}
		if err := anon.WriteCSVFile(outputPath); err != nil {
			return err
		}
		fmt.Printf("Anonymized data saved to %s\n", outputPath)

		if withScores || reportDir != "" {
			scorer := scoring.NewScorer()
			scorer.Weights = cfg.Weights
			result, err := scorer.Score(ds, anon)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}
			trail.Record(audit.EventScored, map[string]any{
				"anonify_score":   result.Score,
				"global_distance": result.GlobalDistance,
			})

			if withScores {
				fmt.Println()
				fmt.Print(report.Summary(result, verbose))
			}
			if reportDir != "" {
				name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
				paths, err := report.WriteFiles(reportDir, name, result)
				if err != nil {
					return err
				}
				for format, path := range paths {
					fmt.Printf("Report (%s): %s\n", format, path)
				}
			}
		}

		trail.Record(audit.EventRunComplete, map[string]any{"output": outputPath})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(anonymizeCmd)
	anonymizeCmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"Input CSV file to anonymize (required)")
	anonymizeCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"YAML configuration file (required)")
	anonymizeCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output CSV file (default: <input>_anonymized.csv)")
	anonymizeCmd.Flags().BoolVar(&withScores, "scores", false,
		"Calculate and display anonymization scores")
	anonymizeCmd.Flags().StringVar(&reportDir, "report", "",
		"Directory to write JSON and CSV score reports into")
	anonymizeCmd.Flags().StringVar(&auditPath, "audit", "",
		"File to write the JSONL audit trail to")

	anonymizeCmd.MarkFlagRequired("input")
	anonymizeCmd.MarkFlagRequired("config")
}
