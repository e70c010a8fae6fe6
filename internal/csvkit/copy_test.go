package csvkit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"namestat/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write CSV file: %v", err)
	}
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return rows
}

// TestCopyPadsShortRows verifies short rows are padded to the header width
func TestCopyPadsShortRows(t *testing.T) {
	source := writeCSV(t, "id,name,city\n1,Anna,Odense\n2,Bo\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")

	result, err := Copy(source, destination, false)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	rows := readCSV(t, destination)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if len(rows[2]) != 3 || rows[2][2] != "" {
		t.Errorf("Expected padded row, got %v", rows[2])
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "padded") {
		t.Errorf("Expected one padding warning, got %v", result.Warnings)
	}
}

// TestCopyRemovesEmptyPlaceholders verifies long rows lose empty fields only
func TestCopyRemovesEmptyPlaceholders(t *testing.T) {
	source := writeCSV(t, "id,name\n1,Anna,\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")

	result, err := Copy(source, destination, false)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	rows := readCSV(t, destination)
	if len(rows[1]) != 2 {
		t.Errorf("Expected trimmed row of 2 fields, got %v", rows[1])
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "placeholder") {
		t.Errorf("Expected one placeholder warning, got %v", result.Warnings)
	}
}

// TestCopyRejectsExtraData verifies rows with real extra data fail loudly
func TestCopyRejectsExtraData(t *testing.T) {
	source := writeCSV(t, "id,name\n1,Anna,Odense\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")

	_, err := Copy(source, destination, false)
	if err == nil {
		t.Fatal("Expected a format error for extra data")
	}
	if !errors.HasCode(err, errors.CodeFormatError) {
		t.Errorf("Expected code %s, got %s", errors.CodeFormatError, errors.GetCode(err))
	}
}

// TestCopySemicolonDelimiter verifies delimiter sniffing
func TestCopySemicolonDelimiter(t *testing.T) {
	source := writeCSV(t, "id;name;city\n1;Anna;Odense\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")

	if _, err := Copy(source, destination, false); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	rows := readCSV(t, destination)
	if len(rows[0]) != 3 || rows[0][1] != "name" {
		t.Errorf("Expected semicolon-delimited header to split into 3 fields, got %v", rows[0])
	}
}

// TestCopyStripsBOM verifies a leading byte order mark does not corrupt the
// first header field
func TestCopyStripsBOM(t *testing.T) {
	source := writeCSV(t, "\uFEFFid,name\n1,Anna\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")

	if _, err := Copy(source, destination, false); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	rows := readCSV(t, destination)
	if rows[0][0] != "id" {
		t.Errorf("Expected clean header field %q, got %q", "id", rows[0][0])
	}
}

// TestCopyWarningCap verifies warnings beyond the cap are suppressed
func TestCopyWarningCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,name\n")
	for i := 0; i < MaxWarnings+5; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	source := writeCSV(t, b.String())
	destination := filepath.Join(t.TempDir(), "copy.csv")

	result, err := Copy(source, destination, false)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if len(result.Warnings) != MaxWarnings {
		t.Errorf("Expected %d warnings, got %d", MaxWarnings, len(result.Warnings))
	}
	if result.Suppressed != 5 {
		t.Errorf("Expected 5 suppressed warnings, got %d", result.Suppressed)
	}
}

// TestCopyDestinationExists verifies overwrite protection
func TestCopyDestinationExists(t *testing.T) {
	source := writeCSV(t, "id,name\n1,Anna\n")
	destination := filepath.Join(t.TempDir(), "copy.csv")
	if err := os.WriteFile(destination, []byte("occupied"), 0o644); err != nil {
		t.Fatalf("Failed to write destination: %v", err)
	}

	_, err := Copy(source, destination, false)
	if err == nil {
		t.Fatal("Expected an error for an existing destination")
	}
	if !errors.HasCode(err, errors.CodeExists) {
		t.Errorf("Expected code %s, got %s", errors.CodeExists, errors.GetCode(err))
	}

	// With overwrite the copy succeeds
	if _, err := Copy(source, destination, true); err != nil {
		t.Fatalf("Copy with overwrite failed: %v", err)
	}
}

// TestCopyMissingSource verifies the not-found failure
func TestCopyMissingSource(t *testing.T) {
	_, err := Copy(filepath.Join(t.TempDir(), "missing.csv"), filepath.Join(t.TempDir(), "copy.csv"), false)
	if err == nil {
		t.Fatal("Expected an error for a missing source")
	}
	if !errors.HasCode(err, errors.CodeNotFound) {
		t.Errorf("Expected code %s, got %s", errors.CodeNotFound, errors.GetCode(err))
	}
}
