package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"namestat/internal/logsplit"
)

func newSplitLogCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "splitlog <logfile>",
		Short: "Split a log file into per-level files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath := args[0]
			if !cmd.Flags().Changed("output-dir") {
				outputDir = filepath.Dir(logPath)
			}

			levelPaths, err := logsplit.SplitByLevel(logPath, outputDir)
			if err != nil {
				return err
			}
			totalLines, err := logsplit.CountLines(logPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d log lines from '%s'.\n", totalLines, logPath)
			if len(levelPaths) == 0 {
				fmt.Fprintln(out, "No log entries were found to split.")
				return nil
			}

			fmt.Fprintln(out, "Created the following per-level log files:")
			levels := make([]string, 0, len(levelPaths))
			for level := range levelPaths {
				levels = append(levels, level)
			}
			sort.Strings(levels)
			for _, level := range levels {
				fmt.Fprintf(out, "  %s: %s\n", level, levelPaths[level])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the per-level files (defaults to the log file's directory)")

	return cmd
}
