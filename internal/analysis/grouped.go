package analysis

import (
	"math"
	"sort"

	"namestat/internal/errors"

	"github.com/montanaflynn/stats"
)

// GroupMean is the mean of one group's observations with its sample count
type GroupMean struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupMeans computes the per-group mean of labelled observations, sorted by
// mean descending with the group label as tie-break. NaN observations are
// dropped; groups with no usable observations are omitted.
func GroupMeans(labels []string, values []float64) ([]GroupMean, error) {
	if len(labels) != len(values) {
		return nil, errors.InvalidInput("labels and values must have the same length")
	}

	grouped := make(map[string][]float64)
	for i, label := range labels {
		if math.IsNaN(values[i]) {
			continue
		}
		grouped[label] = append(grouped[label], values[i])
	}

	means := make([]GroupMean, 0, len(grouped))
	for group, observations := range grouped {
		mean, err := stats.Mean(stats.Float64Data(observations))
		if err != nil {
			mean = 0
		}
		means = append(means, GroupMean{Group: group, Mean: mean, Count: len(observations)})
	}

	sort.Slice(means, func(i, j int) bool {
		if means[i].Mean != means[j].Mean {
			return means[i].Mean > means[j].Mean
		}
		return means[i].Group < means[j].Group
	})

	return means, nil
}
