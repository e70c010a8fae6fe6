package analysis

import (
	"math"
	"sort"
	"unicode"

	"namestat/domain/roster"
	"namestat/internal/errors"

	"github.com/montanaflynn/stats"
)

// LengthStats summarises the distribution of name lengths. StdDev is the
// population standard deviation. All values are rounded to 2 decimals.
type LengthStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
	P25    float64 `json:"percentile_25"`
	P75    float64 `json:"percentile_75"`
}

// FreqEntry is one value with its occurrence count
type FreqEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Summary holds the descriptive statistics computed over a roster table
type Summary struct {
	TotalNames        int         `json:"total_names"`
	UniqueNames       int         `json:"unique_names"`
	Length            LengthStats `json:"length"`
	TopInitials       []FreqEntry `json:"top_initials"`
	TopEndings        []FreqEntry `json:"top_endings"`
	TopLetters        []FreqEntry `json:"top_letters"`
	VowelInitialShare float64     `json:"vowel_initial_share"`
	VowelEndingShare  float64     `json:"vowel_ending_share"`
	TotalLetters      int         `json:"total_letters"`
}

// Summarize computes descriptive statistics for the provided table. Top-N
// frequency lists are ordered by count descending with the key as tie-break.
// An empty table yields a zero-valued summary.
func Summarize(table roster.Table, topN int) (*Summary, error) {
	if topN <= 0 {
		return nil, errors.InvalidInput("top-N must be a positive integer")
	}

	summary := &Summary{
		TopInitials: []FreqEntry{},
		TopEndings:  []FreqEntry{},
		TopLetters:  []FreqEntry{},
	}
	if table.IsEmpty() {
		return summary, nil
	}

	lengths := table.Lengths()
	lengthStats, err := computeLengthStats(lengths)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute length statistics")
	}
	summary.Length = lengthStats

	initialCounts := make(map[string]int)
	endingCounts := make(map[string]int)
	letterCounts := make(map[string]int)
	uniqueNames := make(map[string]bool)
	vowelInitials := 0
	vowelEndings := 0
	totalLetters := 0

	for _, row := range table.Rows {
		uniqueNames[row.Name] = true
		initialCounts[row.Initial]++
		endingCounts[row.Ending]++
		if row.VowelInitial {
			vowelInitials++
		}
		if row.VowelEnding {
			vowelEndings++
		}
		for _, r := range row.Name {
			if unicode.IsLetter(r) {
				letterCounts[string(unicode.ToUpper(r))]++
				totalLetters++
			}
		}
	}

	total := len(table.Rows)
	summary.TotalNames = total
	summary.UniqueNames = len(uniqueNames)
	summary.TopInitials = topEntries(initialCounts, topN)
	summary.TopEndings = topEntries(endingCounts, topN)
	summary.TopLetters = topEntries(letterCounts, topN)
	summary.VowelInitialShare = round2(float64(vowelInitials) / float64(total))
	summary.VowelEndingShare = round2(float64(vowelEndings) / float64(total))
	summary.TotalLetters = totalLetters

	return summary, nil
}

func computeLengthStats(lengths []float64) (LengthStats, error) {
	data := stats.Float64Data(lengths)

	min, err := stats.Min(data)
	if err != nil {
		return LengthStats{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return LengthStats{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return LengthStats{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return LengthStats{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return LengthStats{}, err
	}
	p25, err := percentileOrEdge(data, 25, min)
	if err != nil {
		return LengthStats{}, err
	}
	p75, err := percentileOrEdge(data, 75, max)
	if err != nil {
		return LengthStats{}, err
	}

	return LengthStats{
		Min:    min,
		Max:    max,
		Mean:   round2(mean),
		Median: round2(median),
		StdDev: round2(stdDev),
		P25:    round2(p25),
		P75:    round2(p75),
	}, nil
}

// percentileOrEdge falls back to the given edge value when the sample is too
// small for the percentile computation. stats.Percentile rejects any cut point
// that lands before the first observation, which happens for quartiles over
// one to three values.
func percentileOrEdge(data stats.Float64Data, percent, edge float64) (float64, error) {
	value, err := stats.Percentile(data, percent)
	if err == stats.ErrBounds {
		return edge, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

func topEntries(counts map[string]int, topN int) []FreqEntry {
	entries := make([]FreqEntry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, FreqEntry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
