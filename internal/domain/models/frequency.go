package models

import "time"

// Frequency is the observation cadence of a series.
type Frequency string

const (
	Daily      Frequency = "daily"
	Weekly     Frequency = "weekly"
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	Semiannual Frequency = "semiannual"
	Annual     Frequency = "annual"
)

// NormalizeFrequency maps free-form input to a known cadence.
// Unrecognized values default to monthly.
func NormalizeFrequency(s string) Frequency {
	switch Frequency(s) {
	case Daily, Weekly, Monthly, Quarterly, Semiannual, Annual:
		return Frequency(s)
	default:
		return Monthly
	}
}

// Next steps t forward by one observation period.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Quarterly:
		return t.AddDate(0, 3, 0)
	case Semiannual:
		return t.AddDate(0, 6, 0)
	case Annual:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// StepsPerYear approximates the number of observations per year, used to
// phase the business-cycle component.
func (f Frequency) StepsPerYear() float64 {
	switch f {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Quarterly:
		return 4
	case Semiannual:
		return 2
	case Annual:
		return 1
	default:
		return 12
	}
}
