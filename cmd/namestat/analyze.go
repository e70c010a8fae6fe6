package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"namestat/adapters/postgres"
	"namestat/app"
	"namestat/internal/config"
	"namestat/internal/errors"
	"namestat/ports"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		input      string
		outputDir  string
		topN       int
		ignoreCase bool
		reverse    bool
		exportXLSX bool
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full name analytics pipeline",
		Long: `Read the name roster, normalise and sort it, compute descriptive
statistics and render the charts and word cloud into the output directory.

Running with no flags uses the configured defaults (Navneliste.txt into
Data/analysis).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override environment configuration
			if cmd.Flags().Changed("input") {
				cfg.Data.NamesFile = input
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Data.OutputDir = outputDir
			}
			if cmd.Flags().Changed("top-n") {
				if topN <= 0 {
					return errors.InvalidInput("--top-n must be a positive integer")
				}
				cfg.Analysis.TopN = topN
			}
			if cmd.Flags().Changed("ignore-case") {
				cfg.Analysis.IgnoreCase = ignoreCase
			}
			if cmd.Flags().Changed("reverse") {
				cfg.Analysis.Reverse = reverse
			}

			ctx := cmd.Context()

			var ledger ports.RunLedgerPort
			if record {
				if cfg.Database.URL == "" {
					return errors.ConfigInvalid("DATABASE_URL is required to record runs")
				}
				db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
				if err != nil {
					return errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to connect to run ledger database"))
				}
				defer db.Close()

				ledger, err = postgres.NewRunRepository(ctx, db)
				if err != nil {
					return err
				}
			}

			pipeline := app.NewPipeline(cfg, ledger, exportXLSX)
			result, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "Navneliste.txt", "Path to the comma-separated names file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "Data/analysis", "Directory for generated artifacts")
	cmd.Flags().IntVar(&topN, "top-n", 10, "How many entries to keep per frequency analysis")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", true, "Sort names case-insensitively")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Sort names in descending order")
	cmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "Also export the results as an xlsx workbook")
	cmd.Flags().BoolVar(&record, "record", false, "Record this run in the Postgres run ledger")

	return cmd
}

// printResult mirrors the classic console summary: roster first, then the
// statistical overview and generated artifacts
func printResult(cmd *cobra.Command, result *app.Result) {
	out := cmd.OutOrStdout()

	for _, name := range result.Names {
		fmt.Fprintln(out, name)
	}

	summary := result.Summary
	fmt.Fprintln(out, "\nStatistical overview:")
	fmt.Fprintf(out, "  Names: %d unique entries: %d\n", summary.TotalNames, summary.UniqueNames)
	fmt.Fprintf(out, "  Length mean/median: %.2f/%.2f\n", summary.Length.Mean, summary.Length.Median)

	fmt.Fprintln(out, "  Most common initials:")
	for _, entry := range summary.TopInitials {
		fmt.Fprintf(out, "    %s: %d\n", entry.Key, entry.Count)
	}
	fmt.Fprintln(out, "  Most common endings:")
	for _, entry := range summary.TopEndings {
		fmt.Fprintf(out, "    %s: %d\n", entry.Key, entry.Count)
	}
	fmt.Fprintln(out, "  Top letters used:")
	for _, entry := range summary.TopLetters {
		fmt.Fprintf(out, "    %s: %d\n", entry.Key, entry.Count)
	}

	if len(result.Artifacts) > 0 {
		fmt.Fprintln(out, "\nGenerated visualisations:")
		for _, path := range result.Artifacts {
			fmt.Fprintf(out, "  %s\n", path)
		}
	}
	if result.WorkbookPath != "" {
		fmt.Fprintf(out, "\nWorkbook: %s\n", result.WorkbookPath)
	}

	fmt.Fprintf(out, "\nTotal alphabetic characters: %d\n", summary.TotalLetters)
}
