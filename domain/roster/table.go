package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vowels used for the vowel-initial and vowel-ending flags. Y counts as a
// vowel here, matching Danish naming conventions.
const Vowels = "AEIOUY"

// Row is one name with its derived features
type Row struct {
	Name         string `json:"name"`
	Length       int    `json:"length"`
	Initial      string `json:"initial"`
	Ending       string `json:"ending"`
	VowelInitial bool   `json:"vowel_initial"`
	VowelEnding  bool   `json:"vowel_ending"`
}

// Table is the row-per-name tabular form of a roster, consumed by the
// statistics and rendering steps
type Table struct {
	Rows []Row `json:"rows"`
}

// BuildTable derives per-name features from a cleaned roster. An empty
// roster produces an empty table, not an error.
func BuildTable(names []string) Table {
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(name)
		last, _ := utf8.DecodeLastRuneInString(name)
		initial := strings.ToUpper(string(first))
		ending := strings.ToUpper(string(last))
		rows = append(rows, Row{
			Name:         name,
			Length:       utf8.RuneCountInString(name),
			Initial:      initial,
			Ending:       ending,
			VowelInitial: strings.Contains(Vowels, initial),
			VowelEnding:  strings.Contains(Vowels, ending),
		})
	}
	return Table{Rows: rows}
}

// IsEmpty reports whether the table has no rows
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Names returns the name column
func (t Table) Names() []string {
	names := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		names[i] = row.Name
	}
	return names
}

// Lengths returns the length column as float64 for the statistics layer
func (t Table) Lengths() []float64 {
	lengths := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		lengths[i] = float64(row.Length)
	}
	return lengths
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
