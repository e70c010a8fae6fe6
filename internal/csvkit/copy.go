package csvkit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"namestat/internal/errors"
)

// MaxWarnings caps how many per-row correction warnings are reported; the
// remainder is summarised as a suppressed count
const MaxWarnings = 20

// Result describes what a CSV copy did to the data
type Result struct {
	Rows       int
	Warnings   []string
	Suppressed int
}

// Copy copies a CSV file to destination while repairing common layout
// issues. Rows shorter than the header are padded with empty fields; rows
// longer than the header are repaired by removing empty placeholder fields,
// and rejected with a FORMAT_ERROR when real data would be lost. The
// delimiter is sniffed from the header line; the output always uses commas.
func Copy(source, destination string, overwrite bool) (*Result, error) {
	rows, result, err := readRows(source)
	if err != nil {
		return nil, err
	}

	if err := writeRows(destination, rows, overwrite); err != nil {
		return nil, err
	}

	result.Rows = len(rows)
	return result, nil
}

func readRows(source string) ([][]string, *Result, error) {
	raw, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound(fmt.Sprintf("source file '%s'", source))
		}
		if os.IsPermission(err) {
			return nil, nil, errors.PermissionDenied(fmt.Sprintf("cannot read '%s'", source), err)
		}
		return nil, nil, errors.Wrapf(err, "failed to read '%s'", source)
	}
	content := strings.TrimPrefix(string(raw), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.FormatError(fmt.Sprintf("unable to parse '%s' as CSV: %v", source, err))
	}
	if len(rows) == 0 {
		return rows, &Result{}, nil
	}

	columnCount := len(rows[0])
	if columnCount == 0 {
		return nil, nil, errors.FormatError("the CSV file appears to have no columns")
	}

	result := &Result{}
	normalized := [][]string{rows[0]}
	for i, row := range rows[1:] {
		lineNo := i + 2
		fixed, warning, err := normalizeRow(row, columnCount, lineNo)
		if err != nil {
			return nil, nil, err
		}
		normalized = append(normalized, fixed)
		if warning != "" {
			if len(result.Warnings) < MaxWarnings {
				result.Warnings = append(result.Warnings, warning)
			} else {
				result.Suppressed++
			}
		}
	}

	return normalized, result, nil
}

// normalizeRow adjusts one row to the expected column count, returning the
// fixed row and a warning when a correction was applied
func normalizeRow(row []string, columnCount, lineNo int) ([]string, string, error) {
	if len(row) == columnCount {
		return row, "", nil
	}

	if len(row) > columnCount {
		candidate := make([]string, 0, len(row))
		removed := 0
		for _, field := range row {
			if field == "" && len(row)-removed > columnCount {
				removed++
				continue
			}
			candidate = append(candidate, field)
		}
		if len(candidate) == columnCount {
			warning := fmt.Sprintf("line %d: removed %d empty placeholder column(s) to match header layout", lineNo, removed)
			return candidate, warning, nil
		}
		extras := candidate[columnCount:]
		return nil, "", errors.FormatError(fmt.Sprintf(
			"inconsistent column count at line %d: expected %d but found %d, extra data: %v",
			lineNo, columnCount, len(row), extras))
	}

	padded := make([]string, columnCount)
	copy(padded, row)
	warning := fmt.Sprintf("line %d: padded missing values with empty strings to match the expected %d columns", lineNo, columnCount)
	return padded, warning, nil
}

func writeRows(destination string, rows [][]string, overwrite bool) error {
	if _, err := os.Stat(destination); err == nil && !overwrite {
		return errors.AlreadyExists(fmt.Sprintf("destination file '%s' already exists, pass --overwrite to replace it", destination))
	}

	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create destination directory '%s'", dir)
		}
	}

	file, err := os.Create(destination)
	if err != nil {
		if os.IsPermission(err) {
			return errors.PermissionDenied(fmt.Sprintf("cannot write '%s'", destination), err)
		}
		return errors.Wrapf(err, "failed to create '%s'", destination)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write to '%s'", destination)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "failed to flush '%s'", destination)
	}
	return nil
}

// detectDelimiter picks the delimiter that splits the header line into the
// most fields, falling back to a comma
func detectDelimiter(content string) rune {
	header := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		header = content[:idx]
	}

	best := ','
	bestCount := strings.Count(header, ",")
	for _, candidate := range []rune{';', '\t', '|'} {
		if count := strings.Count(header, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
