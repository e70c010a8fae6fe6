package housing

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"namestat/internal/analysis"
	"namestat/internal/errors"
)

// Listing is one housing observation from the dataset
type Listing struct {
	Region    string
	HouseType string
	Price     float64
}

// Summary holds the grouped housing analysis results
type Summary struct {
	ByRegion    []analysis.GroupMean
	ByHouseType []analysis.GroupMean
}

// Load reads the housing dataset from a CSV file. Columns are located by
// header name (region, house_type, purchase_price); prices that fail to
// parse become NaN and are dropped by the grouping step.
func Load(path string) ([]Listing, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(fmt.Sprintf("housing file '%s'", path))
		}
		return nil, errors.Wrapf(err, "failed to open housing file '%s'", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.FormatError(fmt.Sprintf("unable to parse '%s' as CSV: %v", path, err))
	}
	if len(rows) < 2 {
		return nil, errors.FormatError("housing file must have a header row and at least one data row")
	}

	regionCol, typeCol, priceCol := -1, -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "region":
			regionCol = i
		case "house_type":
			typeCol = i
		case "purchase_price":
			priceCol = i
		}
	}
	if regionCol < 0 || typeCol < 0 || priceCol < 0 {
		return nil, errors.FormatError("housing file must have region, house_type and purchase_price columns")
	}

	listings := make([]Listing, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= regionCol || len(row) <= typeCol || len(row) <= priceCol {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[priceCol]), 64)
		if err != nil {
			price = math.NaN()
		}
		listings = append(listings, Listing{
			Region:    strings.TrimSpace(row[regionCol]),
			HouseType: strings.TrimSpace(row[typeCol]),
			Price:     price,
		})
	}
	return listings, nil
}

// Analyze computes average purchase price per region and per house type,
// both sorted from highest to lowest
func Analyze(listings []Listing) (*Summary, error) {
	if len(listings) == 0 {
		return nil, errors.InvalidInput("housing dataset is empty")
	}

	regions := make([]string, len(listings))
	houseTypes := make([]string, len(listings))
	prices := make([]float64, len(listings))
	for i, listing := range listings {
		regions[i] = listing.Region
		houseTypes[i] = listing.HouseType
		prices[i] = listing.Price
	}

	byRegion, err := analysis.GroupMeans(regions, prices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group by region")
	}
	byHouseType, err := analysis.GroupMeans(houseTypes, prices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group by house type")
	}

	return &Summary{ByRegion: byRegion, ByHouseType: byHouseType}, nil
}
