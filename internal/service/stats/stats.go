// Package stats computes descriptive statistics over a series.
package stats

import (
	"math"
	"sort"

	"MacroPulse/internal/domain/models"
)

// Calculate summarizes the finite values of s. It never fails: empty or
// all-invalid input yields a zeroed result with Count 0 and a diagnostic.
// Standard deviation is population (not sample-corrected).
func Calculate(s *models.Series) models.Statistics {
	if s == nil {
		return models.Statistics{Error: "no series"}
	}
	return FromValues(s.Values())
}

// FromValues summarizes a raw value slice.
func FromValues(values []float64) models.Statistics {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return models.Statistics{Error: "no finite values"}
	}

	sorted := make([]float64, len(finite))
	copy(sorted, finite)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range finite {
		sum += v
	}
	n := float64(len(finite))
	mean := sum / n

	var sq float64
	for _, v := range finite {
		d := v - mean
		sq += d * d
	}

	return models.Statistics{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: median(sorted),
		StdDev: math.Sqrt(sq / n),
		Count:  len(finite),
	}
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
