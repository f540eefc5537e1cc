package models

import "time"

// Severity grades a crisis. Multiplier scales the generated shock.
type Severity string

const (
	SeverityExtreme  Severity = "extreme"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
)

// Multiplier returns the shock scale for a severity grade.
func (s Severity) Multiplier() float64 {
	switch s {
	case SeverityExtreme:
		return 2
	case SeverityHigh:
		return 1
	default:
		return 0.5
	}
}

// CrisisWindow is a named historical crisis. Point crises carry Date;
// window crises carry Start/End and a zero Date.
type CrisisWindow struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date,omitempty"`
	Start       time.Time `json:"start,omitempty"`
	End         time.Time `json:"end,omitempty"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
}

// IsWindow reports whether the crisis spans a date range.
func (c CrisisWindow) IsWindow() bool { return !c.Start.IsZero() && !c.End.IsZero() }
