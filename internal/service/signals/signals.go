package signals

import (
	"math"

	"MacroPulse/internal/domain/models"
	applogger "MacroPulse/pkg/logger"
)

const (
	// warmup points at the head of a series carry a neutral signal so the
	// 50-period average has history before any verdict fires.
	warmup = 50

	rsiPeriod       = 14
	smaFastPeriod   = 50
	smaSlowPeriod   = 200
	bollingerPeriod = 20
	bollingerK      = 2.0
)

// Config holds the tunable thresholds.
type Config struct {
	RSIBuyThreshold  float64
	RSISellThreshold float64
}

// DefaultConfig uses the classic 30/70 RSI bands.
func DefaultConfig() Config {
	return Config{RSIBuyThreshold: 30, RSISellThreshold: 70}
}

type Generator struct {
	cfg Config
	l   *applogger.Logger
}

func New(cfg Config, l *applogger.Logger) *Generator {
	if cfg.RSIBuyThreshold == 0 && cfg.RSISellThreshold == 0 {
		cfg = DefaultConfig()
	}
	return &Generator{cfg: cfg, l: l}
}

// Generate scores every point of s against the selected metrics. The series
// is sorted ascending first; the input is not mutated.
func (g *Generator) Generate(s *models.Series, metrics []models.Metric) []models.SignalPoint {
	if s == nil {
		return nil
	}
	if len(metrics) == 0 {
		metrics = models.AllMetrics
	}

	sorted := s.Clone()
	sorted.SortByDate()
	values := sorted.Values()

	rsi := RSI(values, rsiPeriod)
	_, _, hist := MACD(values)
	smaFast := SMA(values, smaFastPeriod)
	smaSlow := SMA(values, smaSlowPeriod)
	pctB := Bollinger(values, bollingerPeriod, bollingerK)

	out := make([]models.SignalPoint, len(sorted.Points))
	for i := range sorted.Points {
		sp := models.SignalPoint{
			DataPoint:  sorted.Points[i],
			SignalType: models.Neutral,
		}
		if i < warmup {
			out[i] = sp
			continue
		}

		var buys, sells, evaluated int
		details := make([]models.MetricSignal, 0, len(metrics))
		for _, m := range metrics {
			verdict, value, ok := g.evaluate(m, i, values, rsi, hist, smaFast, smaSlow, pctB)
			if !ok {
				continue
			}
			evaluated++
			switch verdict {
			case models.ActionBuy:
				buys++
			case models.ActionSell:
				sells++
			}
			details = append(details, models.MetricSignal{Metric: m, Action: verdict, Value: value})
		}

		if evaluated > 0 {
			sp.SignalValue = float64(buys-sells) / float64(evaluated) * 100
			sp.SignalType = models.BucketSignal(sp.SignalValue)
			sp.DetailedSignals = details
		}
		out[i] = sp
	}
	return out
}

// evaluate returns the verdict for one metric at index i. ok is false when
// the metric has insufficient history at i.
func (g *Generator) evaluate(m models.Metric, i int, values, rsi, hist, smaFast, smaSlow, pctB []float64) (models.SignalAction, float64, bool) {
	switch m {
	case models.MetricRSI:
		v := rsi[i]
		if math.IsNaN(v) {
			return models.ActionNeutral, 0, false
		}
		switch {
		case v <= g.cfg.RSIBuyThreshold:
			return models.ActionBuy, v, true
		case v >= g.cfg.RSISellThreshold:
			return models.ActionSell, v, true
		}
		return models.ActionNeutral, v, true

	case models.MetricMACD:
		if i == 0 || math.IsNaN(hist[i]) || math.IsNaN(hist[i-1]) {
			return models.ActionNeutral, 0, false
		}
		// verdicts fire only on a histogram zero-crossing, not on level
		switch {
		case hist[i-1] < 0 && hist[i] > 0:
			return models.ActionBuy, hist[i], true
		case hist[i-1] > 0 && hist[i] < 0:
			return models.ActionSell, hist[i], true
		}
		return models.ActionNeutral, hist[i], true

	case models.MetricSMACross:
		if i == 0 || math.IsNaN(smaFast[i]) || math.IsNaN(smaSlow[i]) ||
			math.IsNaN(smaFast[i-1]) || math.IsNaN(smaSlow[i-1]) {
			return models.ActionNeutral, 0, false
		}
		diff := smaFast[i] - smaSlow[i]
		prevDiff := smaFast[i-1] - smaSlow[i-1]
		switch {
		case prevDiff <= 0 && diff > 0:
			return models.ActionBuy, diff, true
		case prevDiff >= 0 && diff < 0:
			return models.ActionSell, diff, true
		}
		return models.ActionNeutral, diff, true

	case models.MetricBollinger:
		v := pctB[i]
		if math.IsNaN(v) {
			return models.ActionNeutral, 0, false
		}
		switch {
		case v <= 0.2:
			return models.ActionBuy, v, true
		case v >= 0.8:
			return models.ActionSell, v, true
		}
		return models.ActionNeutral, v, true
	}

	if g.l != nil {
		g.l.Warn("unknown signal metric", applogger.String("metric", string(m)))
	}
	return models.ActionNeutral, 0, false
}
