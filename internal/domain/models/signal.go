package models

// Metric names a technical indicator used for signal scoring.
type Metric string

const (
	MetricRSI       Metric = "rsi"
	MetricMACD      Metric = "macd"
	MetricSMACross  Metric = "sma_cross"
	MetricBollinger Metric = "bollinger"
)

// AllMetrics is the default metric set for signal generation.
var AllMetrics = []Metric{MetricRSI, MetricMACD, MetricSMACross, MetricBollinger}

// SignalAction is a per-metric verdict at one point.
type SignalAction string

const (
	ActionBuy     SignalAction = "buy"
	ActionSell    SignalAction = "sell"
	ActionNeutral SignalAction = "neutral"
)

// SignalType buckets the composite score.
type SignalType string

const (
	StrongBuy  SignalType = "strong_buy"  // score >= 50
	Buy        SignalType = "buy"         // score > 0
	Neutral    SignalType = "neutral"     // score == 0
	Sell       SignalType = "sell"        // score < 0
	StrongSell SignalType = "strong_sell" // score <= -50
)

// BucketSignal maps a composite score in [-100,100] to its type.
func BucketSignal(score float64) SignalType {
	switch {
	case score >= 50:
		return StrongBuy
	case score > 0:
		return Buy
	case score == 0:
		return Neutral
	case score <= -50:
		return StrongSell
	default:
		return Sell
	}
}

// MetricSignal is a single buy/sell/neutral event with the metric value
// that produced it.
type MetricSignal struct {
	Metric Metric       `json:"metric"`
	Action SignalAction `json:"action"`
	Value  float64      `json:"value"`
}

// SignalPoint is a DataPoint annotated with the composite signal.
type SignalPoint struct {
	DataPoint
	SignalValue     float64        `json:"signal_value"`
	SignalType      SignalType     `json:"signal_type"`
	DetailedSignals []MetricSignal `json:"detailed_signals,omitempty"`
}

// SignalEvent is the message published when a series' composite signal is
// computed; keyed by series ID on the wire.
type SignalEvent struct {
	SeriesID    string         `json:"series_id"`
	Date        string         `json:"date"`
	SignalValue float64        `json:"signal_value"`
	SignalType  SignalType     `json:"signal_type"`
	Metrics     []MetricSignal `json:"metrics,omitempty"`
}
