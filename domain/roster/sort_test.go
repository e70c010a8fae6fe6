package roster

import (
	"reflect"
	"testing"
)

// TestSortCaseInsensitive tests the default casing policy and tie-break:
// names equal under casefolding keep their input order
func TestSortCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		opts     SortOptions
		expected []string
	}{
		{
			name:     "case-equal names keep input order",
			input:    []string{"Anna", "anna", "BOB"},
			opts:     SortOptions{IgnoreCase: true},
			expected: []string{"Anna", "anna", "BOB"},
		},
		{
			name:     "case-equal names keep input order regardless of casing",
			input:    []string{"anna", "Anna", "BOB"},
			opts:     SortOptions{IgnoreCase: true},
			expected: []string{"anna", "Anna", "BOB"},
		},
		{
			name:     "mixed casing sorts by folded key",
			input:    []string{"bente", "Anna", "CARLA"},
			opts:     SortOptions{IgnoreCase: true},
			expected: []string{"Anna", "bente", "CARLA"},
		},
		{
			name:     "case-sensitive sorts uppercase first",
			input:    []string{"anna", "BOB", "Anna"},
			opts:     SortOptions{IgnoreCase: false},
			expected: []string{"Anna", "BOB", "anna"},
		},
		{
			name:     "reverse order",
			input:    []string{"Anna", "Carla", "Bente"},
			opts:     SortOptions{IgnoreCase: true, Reverse: true},
			expected: []string{"Carla", "Bente", "Anna"},
		},
		{
			name:     "empty entries are dropped",
			input:    []string{"", "Bente", "", "Anna"},
			opts:     SortOptions{IgnoreCase: true},
			expected: []string{"Anna", "Bente"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Sort(test.input, test.opts)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("Sort(%v) = %v, expected %v", test.input, result, test.expected)
			}
		})
	}
}

// TestSortDoesNotMutateInput verifies the input slice is left untouched
func TestSortDoesNotMutateInput(t *testing.T) {
	input := []string{"Carla", "Anna", "Bente"}
	Sort(input, SortOptions{IgnoreCase: true})

	expected := []string{"Carla", "Anna", "Bente"}
	if !reflect.DeepEqual(input, expected) {
		t.Errorf("Sort mutated its input: %v", input)
	}
}

// TestCountLetters counts only alphabetic runes
func TestCountLetters(t *testing.T) {
	tests := []struct {
		input    []string
		expected int
	}{
		{[]string{"Anna", "Bob"}, 7},
		{[]string{"Anne-Marie"}, 9},
		{[]string{"Søren"}, 5},
		{[]string{}, 0},
		{[]string{"X1 Y2"}, 2},
	}

	for _, test := range tests {
		if got := CountLetters(test.input); got != test.expected {
			t.Errorf("CountLetters(%v) = %d, expected %d", test.input, got, test.expected)
		}
	}
}
