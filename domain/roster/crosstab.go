package roster

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Crosstab is an initial-letter by name-length contingency matrix. Initials
// index the rows, lengths the columns, both in ascending order.
type Crosstab struct {
	Initials []string
	Lengths  []int
	Counts   *mat.Dense
}

// BuildCrosstab tallies how often each initial occurs at each name length
func BuildCrosstab(t Table) Crosstab {
	if t.IsEmpty() {
		return Crosstab{}
	}

	initialSet := make(map[string]bool)
	lengthSet := make(map[int]bool)
	for _, row := range t.Rows {
		initialSet[row.Initial] = true
		lengthSet[row.Length] = true
	}

	initials := make([]string, 0, len(initialSet))
	for initial := range initialSet {
		initials = append(initials, initial)
	}
	sort.Strings(initials)

	lengths := make([]int, 0, len(lengthSet))
	for length := range lengthSet {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	initialIndex := make(map[string]int, len(initials))
	for i, initial := range initials {
		initialIndex[initial] = i
	}
	lengthIndex := make(map[int]int, len(lengths))
	for i, length := range lengths {
		lengthIndex[length] = i
	}

	counts := mat.NewDense(len(initials), len(lengths), nil)
	for _, row := range t.Rows {
		i := initialIndex[row.Initial]
		j := lengthIndex[row.Length]
		counts.Set(i, j, counts.At(i, j)+1)
	}

	return Crosstab{Initials: initials, Lengths: lengths, Counts: counts}
}

// Total returns the sum of all cells, which equals the roster size
func (c Crosstab) Total() float64 {
	if c.Counts == nil {
		return 0
	}
	return mat.Sum(c.Counts)
}
