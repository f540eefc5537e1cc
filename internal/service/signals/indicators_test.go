package signals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSMAWarmupAndValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := SMA(values, 3)

	require.True(t, math.IsNaN(got[0]))
	require.True(t, math.IsNaN(got[1]))
	require.InDelta(t, 2.0, got[2], 1e-12)
	require.InDelta(t, 3.0, got[3], 1e-12)
	require.InDelta(t, 4.0, got[4], 1e-12)
}

func TestEMASeedIsSMA(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	got := EMA(values, 3)

	require.True(t, math.IsNaN(got[0]))
	require.True(t, math.IsNaN(got[1]))
	require.InDelta(t, 20.0, got[2], 1e-12)
	// k = 2/(3+1) = 0.5 -> (40-20)*0.5 + 20 = 30
	require.InDelta(t, 30.0, got[3], 1e-12)
}

func TestEMANaNInSeedWindowPoisonsOutput(t *testing.T) {
	values := []float64{10, math.NaN(), 30, 40, 50}
	got := EMA(values, 3)
	for i, v := range got {
		require.True(t, math.IsNaN(v), "index %d expected NaN", i)
	}
}

func TestEMASkipsLeadingNaNs(t *testing.T) {
	values := []float64{math.NaN(), math.NaN(), 10, 20, 30, 40}
	got := EMA(values, 3)
	require.True(t, math.IsNaN(got[3]))
	require.InDelta(t, 20.0, got[4], 1e-12)
}

func TestRSIAllGainsNearHundred(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(100 + i)
	}
	got := RSI(values, 14)
	require.True(t, math.IsNaN(got[13]))
	require.Greater(t, got[14], 99.0)
	require.LessOrEqual(t, got[len(got)-1], 100.0)
}

func TestRSIAllLossesNearZero(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(100 - i)
	}
	got := RSI(values, 14)
	require.Less(t, got[len(got)-1], 1.0)
}

func TestMACDAlignment(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	macd, signal, hist := MACD(values)

	require.True(t, math.IsNaN(macd[24]))
	require.False(t, math.IsNaN(macd[25]))
	// signal needs 9 MACD observations
	require.True(t, math.IsNaN(signal[32]))
	require.False(t, math.IsNaN(signal[33]))
	require.False(t, math.IsNaN(hist[33]))
}

func TestBollingerPctB(t *testing.T) {
	values := make([]float64, 25)
	for i := range values {
		if i%2 == 0 {
			values[i] = 10
		} else {
			values[i] = 20
		}
	}
	got := Bollinger(values, 20, 2)
	require.True(t, math.IsNaN(got[18]))
	v := got[len(got)-1]
	require.False(t, math.IsNaN(v))
	require.GreaterOrEqual(t, v, 0.0)
	require.LessOrEqual(t, v, 1.0)
}

func TestBollingerFlatWindowNaN(t *testing.T) {
	values := make([]float64, 25)
	for i := range values {
		values[i] = 7
	}
	got := Bollinger(values, 20, 2)
	require.True(t, math.IsNaN(got[len(got)-1]))
}
