package roster

import (
	"sort"
	"strings"
)

// SortOptions control roster ordering
type SortOptions struct {
	IgnoreCase bool
	Reverse    bool
}

// Sort returns the provided names sorted alphabetically. Empty entries are
// dropped. The sort is stable: names that compare equal under the active
// casing policy keep their input order, including in reverse mode.
func Sort(names []string, opts SortOptions) []string {
	sorted := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			sorted = append(sorted, name)
		}
	}

	key := func(s string) string {
		if opts.IgnoreCase {
			return strings.ToLower(s)
		}
		return s
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := key(sorted[i]), key(sorted[j])
		if opts.Reverse {
			return kj < ki
		}
		return ki < kj
	})

	return sorted
}

// CountLetters counts alphabetic runes across the provided names
func CountLetters(names []string) int {
	total := 0
	for _, name := range names {
		for _, r := range name {
			if isLetter(r) {
				total++
			}
		}
	}
	return total
}
