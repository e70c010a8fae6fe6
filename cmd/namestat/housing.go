package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"namestat/adapters/render"
	"namestat/internal/analysis"
	"namestat/internal/errors"
	"namestat/internal/housing"
)

func newHousingCmd() *cobra.Command {
	var (
		csvPath   string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "housing",
		Short: "Average purchase price per region and house type",
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := housing.Load(csvPath)
			if err != nil {
				return err
			}
			summary, err := housing.Analyze(listings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printGroupTable(out, "Average purchase price by region:", summary.ByRegion)
			printGroupTable(out, "Average purchase price by housing type:", summary.ByHouseType)

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return errors.Wrapf(err, "failed to create output directory '%s'", outputDir)
			}
			regionChart := filepath.Join(outputDir, "avg_price_by_region.png")
			typeChart := filepath.Join(outputDir, "avg_price_by_house_type.png")
			if err := render.GroupMeanBars("Average Purchase Price by Region", "DKK", summary.ByRegion, regionChart); err != nil {
				return err
			}
			if err := render.GroupMeanBars("Average Purchase Price by Housing Type", "DKK", summary.ByHouseType, typeChart); err != nil {
				return err
			}

			fmt.Fprintln(out, "Generated charts:")
			fmt.Fprintf(out, "  %s\n  %s\n", regionChart, typeChart)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "DKHousingPricesSample100k.csv", "Path to the housing dataset CSV")
	cmd.Flags().StringVar(&outputDir, "output-dir", "Data/analysis", "Directory for generated charts")

	return cmd
}

func printGroupTable(out io.Writer, title string, groups []analysis.GroupMean) {
	fmt.Fprintln(out, title)
	for _, group := range groups {
		fmt.Fprintf(out, "  %-28s %12.2f  (n=%d)\n", group.Group, group.Mean, group.Count)
	}
	fmt.Fprintln(out)
}
