package models

// IndicatorKind controls how generated components are applied: rate-like
// indicators move by relative increments, index-like ones by growth factors.
type IndicatorKind string

const (
	RateIndicator  IndicatorKind = "rate"
	IndexIndicator IndicatorKind = "index"
)

// IndicatorDescriptor is the static metadata that parameterizes the
// synthetic generator for one indicator. Loaded at startup, never mutated.
type IndicatorDescriptor struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Frequency       Frequency     `json:"frequency"`
	Unit            string        `json:"unit"`
	BaseValue       float64       `json:"base_value"`
	Volatility      float64       `json:"volatility"`
	Trend           float64       `json:"trend"`
	Kind            IndicatorKind `json:"kind"`
	Countercyclical bool          `json:"countercyclical"`
	Min             float64       `json:"min"`
	Max             float64       `json:"max"`
}
