package housing

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"namestat/internal/errors"
)

const sampleCSV = `id,region,house_type,purchase_price,year
1,Jylland,Villa,2500000,2019
2,Hovedstaden,Ejerlejlighed,4200000,2020
3,Jylland,Villa,not available,2020
4,Fyn,Villa,1800000,2018
5,Hovedstaden,Villa,5000000,2021
`

func writeHousing(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "housing.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write housing file: %v", err)
	}
	return path
}

// TestLoad verifies column lookup by header name and price coercion
func TestLoad(t *testing.T) {
	listings, err := Load(writeHousing(t, sampleCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(listings) != 5 {
		t.Fatalf("Expected 5 listings, got %d", len(listings))
	}
	if listings[0].Region != "Jylland" || listings[0].HouseType != "Villa" || listings[0].Price != 2500000 {
		t.Errorf("Unexpected first listing: %+v", listings[0])
	}
	if !math.IsNaN(listings[2].Price) {
		t.Errorf("Expected unparseable price to become NaN, got %v", listings[2].Price)
	}
}

// TestLoadMissingColumns rejects files without the expected headers
func TestLoadMissingColumns(t *testing.T) {
	_, err := Load(writeHousing(t, "id,city,price\n1,Odense,100\n"))
	if err == nil {
		t.Fatal("Expected an error for missing columns")
	}
	if !errors.HasCode(err, errors.CodeFormatError) {
		t.Errorf("Expected code %s, got %s", errors.CodeFormatError, errors.GetCode(err))
	}
}

// TestLoadMissingFile verifies the not-found failure
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if !errors.HasCode(err, errors.CodeNotFound) {
		t.Errorf("Expected code %s, got %s", errors.CodeNotFound, errors.GetCode(err))
	}
}

// TestAnalyze verifies grouped means sort from highest to lowest and skip NaN
func TestAnalyze(t *testing.T) {
	listings, err := Load(writeHousing(t, sampleCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	summary, err := Analyze(listings)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(summary.ByRegion) != 3 {
		t.Fatalf("Expected 3 regions, got %d", len(summary.ByRegion))
	}
	if summary.ByRegion[0].Group != "Hovedstaden" || summary.ByRegion[0].Mean != 4600000 {
		t.Errorf("Unexpected top region: %+v", summary.ByRegion[0])
	}
	// The NaN price drops one Jylland observation
	for _, group := range summary.ByRegion {
		if group.Group == "Jylland" && group.Count != 1 {
			t.Errorf("Expected 1 priced Jylland listing, got %d", group.Count)
		}
	}

	if len(summary.ByHouseType) != 2 {
		t.Fatalf("Expected 2 house types, got %d", len(summary.ByHouseType))
	}
	if summary.ByHouseType[0].Group != "Ejerlejlighed" {
		t.Errorf("Unexpected top house type: %+v", summary.ByHouseType[0])
	}
}

// TestAnalyzeEmpty rejects an empty dataset
func TestAnalyzeEmpty(t *testing.T) {
	_, err := Analyze(nil)
	if err == nil {
		t.Fatal("Expected an error for an empty dataset")
	}
	if !errors.HasCode(err, errors.CodeInvalidInput) {
		t.Errorf("Expected code %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
	}
}
