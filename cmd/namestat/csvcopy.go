package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namestat/internal/csvkit"
)

func newCSVCopyCmd() *cobra.Command {
	var (
		source      string
		destination string
		overwrite   bool
	)

	cmd := &cobra.Command{
		Use:   "csvcopy",
		Short: "Copy a CSV file while repairing common layout issues",
		Long: `Copy a CSV file to a new location while handling common file-system and
data issues: delimiter detection, rows with missing or extra columns, and
destination overwrite protection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := csvkit.Copy(source, destination, overwrite)
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			for _, warning := range result.Warnings {
				fmt.Fprintf(errOut, "Warning: %s\n", warning)
			}
			if result.Suppressed > 0 {
				fmt.Fprintf(errOut, "Warning: %d additional formatting issues were corrected (not shown).\n", result.Suppressed)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully copied '%s' to '%s' (%d rows).\n", source, destination, result.Rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "source_data.csv", "Path to the input CSV file")
	cmd.Flags().StringVar(&destination, "destination", "source_data_copy.csv", "Where to write the copied CSV")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Allow overwriting an existing destination file")

	return cmd
}
