package analysis

import (
	"math"
	"testing"
)

// TestGroupMeansSorting verifies group means sort from highest to lowest
func TestGroupMeansSorting(t *testing.T) {
	labels := []string{"Hovedstaden", "Jylland", "Hovedstaden", "Fyn", "Jylland"}
	values := []float64{4000000, 1500000, 3000000, 2000000, 2500000}

	means, err := GroupMeans(labels, values)
	if err != nil {
		t.Fatalf("GroupMeans failed: %v", err)
	}

	if len(means) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(means))
	}
	if means[0].Group != "Hovedstaden" || means[0].Mean != 3500000 || means[0].Count != 2 {
		t.Errorf("Unexpected first group: %+v", means[0])
	}
	if means[1].Group != "Fyn" || means[1].Mean != 2000000 {
		t.Errorf("Unexpected second group: %+v", means[1])
	}
	if means[2].Group != "Jylland" || means[2].Mean != 2000000 {
		t.Errorf("Unexpected third group: %+v", means[2])
	}

	for i := 1; i < len(means); i++ {
		if means[i-1].Mean < means[i].Mean {
			t.Errorf("Group means are not sorted descending at index %d", i)
		}
	}
}

// TestGroupMeansDropsNaN verifies unparseable observations are excluded
func TestGroupMeansDropsNaN(t *testing.T) {
	labels := []string{"A", "A", "B"}
	values := []float64{10, math.NaN(), 20}

	means, err := GroupMeans(labels, values)
	if err != nil {
		t.Fatalf("GroupMeans failed: %v", err)
	}

	for _, group := range means {
		if group.Group == "A" {
			if group.Count != 1 {
				t.Errorf("Expected NaN to be dropped from group A, count = %d", group.Count)
			}
			if group.Mean != 10 {
				t.Errorf("Expected group A mean 10, got %v", group.Mean)
			}
		}
	}
}

// TestGroupMeansLengthMismatch rejects mismatched inputs
func TestGroupMeansLengthMismatch(t *testing.T) {
	_, err := GroupMeans([]string{"A"}, []float64{1, 2})
	if err == nil {
		t.Fatal("Expected an error for mismatched label/value lengths")
	}
}
