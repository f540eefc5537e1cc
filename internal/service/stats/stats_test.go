package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyInputZeroed(t *testing.T) {
	got := FromValues(nil)
	require.Equal(t, 0.0, got.Min)
	require.Equal(t, 0.0, got.Max)
	require.Equal(t, 0.0, got.Mean)
	require.Equal(t, 0.0, got.Median)
	require.Equal(t, 0.0, got.StdDev)
	require.Equal(t, 0, got.Count)
	require.NotEmpty(t, got.Error)
}

func TestNonFiniteFiltered(t *testing.T) {
	got := FromValues([]float64{1, math.NaN(), 3, math.Inf(1), 2})
	require.Equal(t, 3, got.Count)
	require.Equal(t, 1.0, got.Min)
	require.Equal(t, 3.0, got.Max)
	require.Equal(t, 2.0, got.Mean)
	require.Equal(t, 2.0, got.Median)
}

func TestAllInvalidZeroed(t *testing.T) {
	got := FromValues([]float64{math.NaN(), math.Inf(-1)})
	require.Equal(t, 0, got.Count)
}

func TestPopulationStdDev(t *testing.T) {
	// population stddev of {2,4,4,4,5,5,7,9} is exactly 2
	got := FromValues([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, 2.0, got.StdDev, 1e-12)
	require.Equal(t, 5.0, got.Mean)
	require.Equal(t, 4.5, got.Median)
}
