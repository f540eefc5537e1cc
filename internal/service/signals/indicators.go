// Package signals scores a series with classic technical indicators and
// folds the per-metric verdicts into one composite signal.
//
// All indicator slices are aligned to the input length; positions without
// enough lookback are NaN.
package signals

import "math"

// SMA returns the n-period simple moving average.
func SMA(values []float64, n int) []float64 {
	out := nanSlice(len(values))
	if n <= 0 || len(values) == 0 {
		return out
	}
	var sum float64
	for i := range values {
		sum += values[i]
		if i >= n {
			sum -= values[i-n]
		}
		if i >= n-1 {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// EMA returns the n-period exponential moving average, seeded with the SMA
// of the first n finite values. A NaN inside the seed window poisons the
// whole output; leading NaNs (e.g. a MACD line's warm-up) are skipped.
func EMA(values []float64, n int) []float64 {
	out := nanSlice(len(values))
	if n <= 0 || len(values) == 0 {
		return out
	}

	first := 0
	for first < len(values) && math.IsNaN(values[first]) {
		first++
	}
	if len(values)-first < n {
		return out
	}

	var seed float64
	for i := first; i < first+n; i++ {
		if math.IsNaN(values[i]) {
			return out
		}
		seed += values[i]
	}
	ema := seed / float64(n)
	out[first+n-1] = ema

	k := 2.0 / (float64(n) + 1)
	for i := first + n; i < len(values); i++ {
		v := values[i]
		if math.IsNaN(v) {
			out[i] = ema
			continue
		}
		ema = (v-ema)*k + ema
		out[i] = ema
	}
	return out
}

// rsiEpsilon substitutes for an exactly-zero average loss so RS stays finite.
const rsiEpsilon = 1e-10

// RSI returns the n-period Relative Strength Index with Wilder smoothing.
func RSI(values []float64, n int) []float64 {
	out := nanSlice(len(values))
	if n <= 0 || len(values) < n+1 {
		return out
	}

	var gain, loss float64
	for i := 1; i <= n; i++ {
		d := values[i] - values[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(n)
	avgLoss := loss / float64(n)
	out[n] = rsiValue(avgGain, avgLoss)

	for i := n + 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		var g, l float64
		if d > 0 {
			g = d
		} else {
			l = -d
		}
		avgGain = (avgGain*float64(n-1) + g) / float64(n)
		avgLoss = (avgLoss*float64(n-1) + l) / float64(n)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		avgLoss = rsiEpsilon
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACD returns the MACD line (EMA12−EMA26), the signal line (EMA9 of the
// MACD line), and the histogram (MACD − signal).
func MACD(values []float64) (macd, signal, hist []float64) {
	fast := EMA(values, 12)
	slow := EMA(values, 26)

	macd = nanSlice(len(values))
	for i := range values {
		if !math.IsNaN(fast[i]) && !math.IsNaN(slow[i]) {
			macd[i] = fast[i] - slow[i]
		}
	}

	signal = EMA(macd, 9)

	hist = nanSlice(len(values))
	for i := range values {
		if !math.IsNaN(macd[i]) && !math.IsNaN(signal[i]) {
			hist[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, hist
}

// Bollinger returns %B for n-period bands at k standard deviations:
// (value − lower) / (upper − lower). Flat windows yield NaN.
func Bollinger(values []float64, n int, k float64) []float64 {
	out := nanSlice(len(values))
	if n <= 1 || len(values) < n {
		return out
	}

	var sum, sumSq float64
	for i := range values {
		v := values[i]
		sum += v
		sumSq += v * v
		if i >= n {
			old := values[i-n]
			sum -= old
			sumSq -= old * old
		}
		if i < n-1 {
			continue
		}
		mean := sum / float64(n)
		variance := sumSq/float64(n) - mean*mean
		if variance < 0 {
			variance = 0
		}
		std := math.Sqrt(variance)
		width := 2 * k * std
		if width == 0 {
			continue
		}
		lower := mean - k*std
		out[i] = (v - lower) / width
	}
	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
