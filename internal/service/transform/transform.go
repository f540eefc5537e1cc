// Package transform derives period-over-period change series. Transforms
// never fail: every error path falls back to the original series.
package transform

import (
	"math"
	"time"

	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/domain/repository"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/util"
)

// Kind selects a transformation. The switch in Apply is the single dispatch
// point; adding a Kind without a case there is a bug.
type Kind string

const (
	Raw    Kind = "raw"
	MoM    Kind = "mom"
	MoMPct Kind = "mom_pct"
	QoQ    Kind = "qoq"
	QoQPct Kind = "qoq_pct"
	YoY    Kind = "yoy"
)

// ParseKind maps free-form input to a Kind. Empty input means Raw; unknown
// input is returned as-is with ok=false so Apply can log it.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Raw, MoM, MoMPct, QoQ, QoQPct, YoY:
		return Kind(s), true
	case "":
		return Raw, true
	default:
		return Kind(s), false
	}
}

// yoyTolerance is the widest gap accepted between "this date minus one
// year" and an actual observation.
const yoyTolerance = 16 * 24 * time.Hour

type Engine struct {
	l       *applogger.Logger
	metrics repository.Metrics
}

func New(l *applogger.Logger, m repository.Metrics) *Engine {
	return &Engine{l: l, metrics: m}
}

// Apply returns the transformed series. The input is never mutated; any
// internal failure (including panics) recovers to the original series.
func (e *Engine) Apply(s *models.Series, kind Kind) (out *models.Series) {
	if s == nil {
		return nil
	}
	if kind == Raw || kind == "" {
		return s.Clone()
	}

	defer func() {
		if r := recover(); r != nil {
			if e.l != nil {
				e.l.Warn("transform recovered, returning original series",
					applogger.String("kind", string(kind)),
					applogger.Any("panic", r),
				)
			}
			if e.metrics != nil {
				e.metrics.RecordTransformFallback(string(kind))
			}
			out = s
		}
	}()

	c := s.Clone()
	c.SortByDate()

	switch kind {
	case MoM:
		periodDelta(c, util.SameMonth, false)
	case MoMPct:
		periodDelta(c, util.SameMonth, true)
	case QoQ:
		periodDelta(c, util.SameQuarter, false)
	case QoQPct:
		periodDelta(c, util.SameQuarter, true)
	case YoY:
		c = yearOverYear(c)
	default:
		if e.l != nil {
			e.l.Warn("unknown transform kind, returning original series",
				applogger.String("kind", string(kind)))
		}
		if e.metrics != nil {
			e.metrics.RecordTransformFallback(string(kind))
		}
		return s
	}
	return c
}

// periodDelta replaces each point's value with the change from its immediate
// predecessor, but only across a calendar-period boundary: same-period
// consecutive points pass through unchanged. Output length equals input
// length; downstream charts rely on that.
func periodDelta(s *models.Series, samePeriod func(a, b time.Time) bool, pct bool) {
	raw := s.Values()
	for i := 1; i < len(s.Points); i++ {
		v := raw[i]
		s.Points[i].RawValue = &raw[i]
		if samePeriod(s.Points[i-1].Date, s.Points[i].Date) {
			continue
		}
		prev := raw[i-1]
		if pct {
			if prev == 0 {
				s.Points[i].Value = 0
			} else {
				s.Points[i].Value = (v - prev) / math.Abs(prev) * 100
			}
		} else {
			s.Points[i].Value = v - prev
		}
	}
	if len(s.Points) > 0 {
		s.Points[0].RawValue = &raw[0]
	}
}

// yearOverYear computes percent change against the observation closest to
// one year earlier. Points with no match inside the tolerance window, or a
// zero base, are dropped, so the output is shorter at the lead edge.
func yearOverYear(s *models.Series) *models.Series {
	out := &models.Series{ID: s.ID, Frequency: s.Frequency}
	out.Points = make([]models.DataPoint, 0, len(s.Points))

	for i := range s.Points {
		p := s.Points[i]
		target := p.Date.AddDate(-1, 0, 0)

		best := -1
		var bestDelta time.Duration
		for j := range s.Points {
			delta := s.Points[j].Date.Sub(target)
			if delta < 0 {
				delta = -delta
			}
			if best == -1 || delta < bestDelta {
				best = j
				bestDelta = delta
			}
		}
		if best == -1 || bestDelta > yoyTolerance {
			continue
		}
		yearAgo := s.Points[best].Value
		if yearAgo == 0 {
			continue
		}

		raw := p.Value
		p.RawValue = &raw
		p.Value = (raw - yearAgo) / math.Abs(yearAgo) * 100
		out.Points = append(out.Points, p)
	}
	return out
}
