package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"namestat/domain/roster"
	"namestat/internal/analysis"
	"namestat/internal/errors"
)

// ReportWriter writes the analysis results as an xlsx workbook with
// Summary, Roster and Frequencies sheets
type ReportWriter struct{}

// NewReportWriter creates a new workbook writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write saves the workbook to the given path
func (w *ReportWriter) Write(path string, summary *analysis.Summary, table roster.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return errors.Wrap(err, "failed to rename summary sheet")
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}
	if err := writeRosterSheet(f, table); err != nil {
		return err
	}
	if err := writeFrequenciesSheet(f, summary); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook '%s'", path)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary *analysis.Summary) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total names", summary.TotalNames},
		{"Unique names", summary.UniqueNames},
		{"Min length", summary.Length.Min},
		{"Max length", summary.Length.Max},
		{"Mean length", summary.Length.Mean},
		{"Median length", summary.Length.Median},
		{"Std dev (population)", summary.Length.StdDev},
		{"25th percentile", summary.Length.P25},
		{"75th percentile", summary.Length.P75},
		{"Vowel initial share", summary.VowelInitialShare},
		{"Vowel ending share", summary.VowelEndingShare},
		{"Total letters", summary.TotalLetters},
	}
	return writeRows(f, "Summary", rows)
}

func writeRosterSheet(f *excelize.File, table roster.Table) error {
	if _, err := f.NewSheet("Roster"); err != nil {
		return errors.Wrap(err, "failed to create roster sheet")
	}
	rows := [][]interface{}{
		{"Name", "Length", "Initial", "Ending", "Vowel initial", "Vowel ending"},
	}
	for _, row := range table.Rows {
		rows = append(rows, []interface{}{
			row.Name, row.Length, row.Initial, row.Ending, row.VowelInitial, row.VowelEnding,
		})
	}
	return writeRows(f, "Roster", rows)
}

func writeFrequenciesSheet(f *excelize.File, summary *analysis.Summary) error {
	if _, err := f.NewSheet("Frequencies"); err != nil {
		return errors.Wrap(err, "failed to create frequencies sheet")
	}
	rows := [][]interface{}{{"Analysis", "Value", "Count"}}
	for _, entry := range summary.TopInitials {
		rows = append(rows, []interface{}{"Initial", entry.Key, entry.Count})
	}
	for _, entry := range summary.TopEndings {
		rows = append(rows, []interface{}{"Ending", entry.Key, entry.Count})
	}
	for _, entry := range summary.TopLetters {
		rows = append(rows, []interface{}{"Letter", entry.Key, entry.Count})
	}
	return writeRows(f, "Frequencies", rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "failed to compute cell coordinates")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write row %d of sheet %s", i+1, sheet)
		}
	}
	return nil
}

// WorkbookName returns the default workbook filename for an input file
func WorkbookName(inputFile string) string {
	base := filepath.Base(inputFile)
	return fmt.Sprintf("%s_report.xlsx", strings.TrimSuffix(base, filepath.Ext(base)))
}
