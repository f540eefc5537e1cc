// Package generator produces synthetic economic series when no live provider
// is configured. Output is deterministic per (series, frequency, range) so
// repeated requests and cached results agree.
package generator

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/domain/repository"
	"MacroPulse/internal/service/crisis"
	"MacroPulse/pkg/cache"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/util"
)

const (
	// cyclePeriodYears is the business-cycle length for the sinusoid.
	cyclePeriodYears = 8
	// pointCrisisHorizon bounds the decay tail of a point crisis.
	pointCrisisHorizon = 24 * 30 * 24 * time.Hour
	// zlbHold keeps policy rates pinned after an extreme window crisis ends.
	zlbHold = 3 * 365 * 24 * time.Hour
)

type Generator struct {
	cache   repository.Cache
	metrics repository.Metrics
	l       *applogger.Logger
	ttl     time.Duration
}

// New creates a Generator. cache and metrics may be nil.
func New(c repository.Cache, l *applogger.Logger, m repository.Metrics, ttl time.Duration) *Generator {
	return &Generator{cache: c, metrics: m, l: l, ttl: ttl}
}

// Name implements repository.SeriesSource.
func (g *Generator) Name() string { return "mock" }

// Generate is the string-facing entry point: it validates inputs, then
// delegates to Fetch. Missing seriesID or frequency is INVALID_INPUT; bad
// dates surface as INVALID_DATE_FORMAT / INVALID_DATE_RANGE.
func (g *Generator) Generate(ctx context.Context, seriesID, frequency, start, end string) (*models.Series, error) {
	if seriesID == "" {
		return nil, econerr.New(econerr.KindInvalidInput, "series_id is required")
	}
	if frequency == "" {
		return nil, econerr.New(econerr.KindInvalidInput, "frequency is required")
	}
	from, to, err := util.ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return g.Fetch(ctx, seriesID, models.NormalizeFrequency(frequency), from, to)
}

// Fetch implements repository.SeriesSource. Cache lookup precedes
// generation; a hit returns the prior result verbatim.
func (g *Generator) Fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error) {
	key := cache.SeriesKey("gen", seriesID, string(freq), util.FormatDate(start), util.FormatDate(end))
	if g.cache != nil {
		var cached *models.Series
		if err := g.cache.Get(ctx, key, &cached); err == nil {
			if g.metrics != nil {
				g.metrics.RecordCacheHit("generator")
			}
			return cached, nil
		}
		if g.metrics != nil {
			g.metrics.RecordCacheMiss("generator")
		}
	}

	began := time.Now()
	desc := lookup(seriesID)
	rng := rand.New(rand.NewSource(seed(seriesID, string(freq), start, end)))

	value := desc.BaseValue
	points := make([]models.DataPoint, 0, 64)
	for t := start; !t.After(end); t = freq.Next(t) {
		v, err := g.step(rng, desc, freq, t, value)
		if err != nil {
			// a single bad point is skipped, generation continues
			if g.l != nil {
				g.l.Warn("skipping point",
					applogger.String("series", seriesID),
					applogger.String("date", util.FormatDate(t)),
					applogger.Error(err),
				)
			}
			if g.metrics != nil {
				g.metrics.RecordError("generation_point")
			}
			continue
		}
		value = v
		points = append(points, models.DataPoint{Date: t, Value: v})
	}

	if len(points) == 0 {
		return nil, econerr.Newf(econerr.KindNoDataReturned, "no data generated for %s", seriesID)
	}

	s := &models.Series{ID: seriesID, Frequency: freq, Points: points}
	if g.cache != nil {
		if err := g.cache.Set(ctx, key, s, g.ttl); err != nil && g.l != nil {
			g.l.Warn("cache set failed", applogger.String("key", key), applogger.Error(err))
		}
	}
	if g.metrics != nil {
		g.metrics.RecordGenerationLatency(seriesID, time.Since(began).Seconds())
	}
	return s, nil
}

// step advances the series one observation. Components combine additively:
// rate indicators move in percentage points, index indicators by a growth
// factor.
func (g *Generator) step(rng *rand.Rand, desc descriptor, freq models.Frequency, t time.Time, current float64) (float64, error) {
	if desc.ZeroLowerBound && zeroLowerBoundActive(t) {
		return round2(clamp(desc.Min+rng.Float64()*0.1, desc.Min, desc.Max)), nil
	}

	random := (rng.Float64()*2 - 1) * desc.Volatility
	trend := desc.Trend
	cyclical := cyclicalComponent(t, desc)
	shock := crisisComponent(t, desc)

	total := random + trend + cyclical + shock

	var next float64
	switch desc.Kind {
	case models.RateIndicator:
		next = current + total
	default:
		next = current * (1 + total)
	}

	if math.IsNaN(next) || math.IsInf(next, 0) {
		return 0, econerr.Newf(econerr.KindGeneral, "non-finite value at %s", util.FormatDate(t))
	}
	return round2(clamp(next, desc.Min, desc.Max)), nil
}

// cyclicalComponent is a sinusoid with an 8-year period, sign-flipped for
// countercyclical indicators.
func cyclicalComponent(t time.Time, desc descriptor) float64 {
	years := t.Sub(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)).Hours() / (24 * 365.25)
	c := math.Sin(2*math.Pi*years/cyclePeriodYears) * desc.Volatility * 0.8
	if desc.Countercyclical {
		return -c
	}
	return c
}

// crisisComponent sums the shock of every active crisis at t. Point crises
// spike at their date and decay exponentially; window crises ramp in over
// the first quarter of the window, hold, and release over the last quarter.
func crisisComponent(t time.Time, desc descriptor) float64 {
	var factor float64
	for _, c := range crisis.Windows {
		mult := c.Severity.Multiplier()
		if c.IsWindow() {
			if t.Before(c.Start) || t.After(c.End) {
				continue
			}
			total := c.End.Sub(c.Start)
			pos := float64(t.Sub(c.Start)) / float64(total)
			switch {
			case pos < 0.25:
				factor += mult * (pos / 0.25)
			case pos > 0.75:
				factor += mult * ((1 - pos) / 0.25)
			default:
				factor += mult
			}
			continue
		}
		if c.Date.IsZero() {
			continue
		}
		age := t.Sub(c.Date)
		if age < 0 || age > pointCrisisHorizon {
			continue
		}
		months := age.Hours() / (24 * 30)
		factor += mult * math.Exp(-months/6)
	}
	if factor == 0 {
		return 0
	}

	effect := desc.CrisisImpact * factor
	if desc.Countercyclical {
		return effect
	}
	return -effect
}

// zeroLowerBoundActive reports whether t falls inside an extreme window
// crisis or its post-crisis hold period.
func zeroLowerBoundActive(t time.Time) bool {
	for _, c := range crisis.Windows {
		if !c.IsWindow() || c.Severity != models.SeverityExtreme {
			continue
		}
		if !t.Before(c.Start) && !t.After(c.End.Add(zlbHold)) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func seed(parts ...interface{}) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			_, _ = h.Write([]byte(v))
		case time.Time:
			_, _ = h.Write([]byte(v.Format(time.RFC3339)))
		}
		_, _ = h.Write([]byte{0})
	}
	return int64(h.Sum64())
}
