package crisis

import (
	"time"

	"MacroPulse/internal/domain/models"
)

// proximity is how close a point must be to a crisis anchor date to pick up
// the annotation.
const proximity = 30 * 24 * time.Hour

// Match returns the first crisis whose anchor Date lies within 30 days of t,
// or nil. Window crises define no anchor date, so they are never matched
// here; interval containment is intentionally not consulted. See DESIGN.md.
func Match(t time.Time) *models.CrisisWindow {
	for i := range Windows {
		c := &Windows[i]
		if c.Date.IsZero() {
			continue
		}
		delta := t.Sub(c.Date)
		if delta < 0 {
			delta = -delta
		}
		if delta <= proximity {
			return c
		}
	}
	return nil
}

// Annotate tags each point with the first matching crisis, or leaves the
// crisis field nil. The series is modified in place and returned.
func Annotate(s *models.Series) *models.Series {
	if s == nil {
		return nil
	}
	for i := range s.Points {
		s.Points[i].Crisis = Match(s.Points[i].Date)
	}
	return s
}
