package generator

import "MacroPulse/internal/domain/models"

// descriptor extends the public indicator metadata with the generation knobs
// that never leave this package.
type descriptor struct {
	models.IndicatorDescriptor
	// CrisisImpact is the per-step shock magnitude at severity "high";
	// percentage points for rate indicators, a fraction for index ones.
	CrisisImpact float64
	// ZeroLowerBound pins the indicator to its floor during and shortly
	// after extreme window crises (policy-rate behavior).
	ZeroLowerBound bool
}

// descriptors is the static indicator catalog, loaded once at startup.
var descriptors = map[string]descriptor{
	"FEDFUNDS": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "FEDFUNDS", Name: "Federal Funds Effective Rate",
			Frequency: models.Monthly, Unit: "percent",
			BaseValue: 5.0, Volatility: 0.10, Trend: -0.004,
			Kind: models.RateIndicator, Min: 0.05, Max: 20,
		},
		CrisisImpact:   0.9,
		ZeroLowerBound: true,
	},
	"UNRATE": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "UNRATE", Name: "Unemployment Rate",
			Frequency: models.Monthly, Unit: "percent",
			BaseValue: 5.5, Volatility: 0.15, Trend: 0,
			Kind: models.RateIndicator, Countercyclical: true,
			Min: 0, Max: 25,
		},
		CrisisImpact: 0.6,
	},
	"CPIAUCSL": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "CPIAUCSL", Name: "Consumer Price Index for All Urban Consumers",
			Frequency: models.Monthly, Unit: "index 1982-84=100",
			BaseValue: 210, Volatility: 0.003, Trend: 0.002,
			Kind: models.IndexIndicator, Min: 1, Max: 1e6,
		},
		CrisisImpact: 0.004,
	},
	"GDP": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "GDP", Name: "Gross Domestic Product",
			Frequency: models.Quarterly, Unit: "billions of dollars",
			BaseValue: 18000, Volatility: 0.006, Trend: 0.011,
			Kind: models.IndexIndicator, Min: 1, Max: 1e9,
		},
		CrisisImpact: 0.02,
	},
	"DGS10": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "DGS10", Name: "10-Year Treasury Constant Maturity Rate",
			Frequency: models.Daily, Unit: "percent",
			BaseValue: 4.0, Volatility: 0.05, Trend: -0.001,
			Kind: models.RateIndicator, Min: 0.3, Max: 16,
		},
		CrisisImpact: 0.25,
	},
	"PAYEMS": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "PAYEMS", Name: "Total Nonfarm Payrolls",
			Frequency: models.Monthly, Unit: "thousands of persons",
			BaseValue: 145000, Volatility: 0.002, Trend: 0.0012,
			Kind: models.IndexIndicator, Min: 1, Max: 1e9,
		},
		CrisisImpact: 0.01,
	},
	"INDPRO": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "INDPRO", Name: "Industrial Production Index",
			Frequency: models.Monthly, Unit: "index 2017=100",
			BaseValue: 100, Volatility: 0.006, Trend: 0.001,
			Kind: models.IndexIndicator, Min: 1, Max: 1e6,
		},
		CrisisImpact: 0.015,
	},
	"HOUST": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "HOUST", Name: "Housing Starts",
			Frequency: models.Monthly, Unit: "thousands of units",
			BaseValue: 1400, Volatility: 0.03, Trend: 0.0005,
			Kind: models.IndexIndicator, Min: 100, Max: 4000,
		},
		CrisisImpact: 0.04,
	},
	"M2SL": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "M2SL", Name: "M2 Money Stock",
			Frequency: models.Monthly, Unit: "billions of dollars",
			BaseValue: 15000, Volatility: 0.003, Trend: 0.004,
			Kind: models.IndexIndicator, Min: 1, Max: 1e9,
		},
		// Money stock expands in crises rather than contracting.
		CrisisImpact: -0.005,
	},
	"UMCSENT": {
		IndicatorDescriptor: models.IndicatorDescriptor{
			ID: "UMCSENT", Name: "University of Michigan Consumer Sentiment",
			Frequency: models.Monthly, Unit: "index 1966=100",
			BaseValue: 90, Volatility: 0.02, Trend: 0,
			Kind: models.IndexIndicator, Min: 40, Max: 120,
		},
		CrisisImpact: 0.035,
	},
}

// fallback is used for series IDs not in the catalog, so unknown-but-valid
// requests still produce plausible data instead of failing.
var fallback = descriptor{
	IndicatorDescriptor: models.IndicatorDescriptor{
		ID: "UNKNOWN", Name: "Generic Indicator",
		Frequency: models.Monthly, Unit: "index",
		BaseValue: 100, Volatility: 0.01, Trend: 0.001,
		Kind: models.IndexIndicator, Min: 1, Max: 1e6,
	},
	CrisisImpact: 0.01,
}

// lookup resolves the descriptor for a series ID.
func lookup(seriesID string) descriptor {
	if d, ok := descriptors[seriesID]; ok {
		return d
	}
	d := fallback
	d.IndicatorDescriptor.ID = seriesID
	return d
}

// Catalog returns the public descriptor list, sorted by ID at the call site
// if needed.
func Catalog() []models.IndicatorDescriptor {
	out := make([]models.IndicatorDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.IndicatorDescriptor)
	}
	return out
}
