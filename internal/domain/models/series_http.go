package models

// Requests for series HTTP endpoints. Defined in domain for consistency and reuse.

type SeriesRequest struct {
	SeriesID  string `query:"series_id" json:"series_id" validate:"required"`
	Frequency string `query:"frequency" json:"frequency" default:"monthly" validate:"oneof=daily weekly monthly quarterly semiannual annual"`
	Start     string `query:"start" json:"start" validate:"required,datefmt"`
	End       string `query:"end" json:"end" validate:"required,datefmt"`
	Transform string `query:"transform" json:"transform" default:"raw"`
}

type SignalsRequest struct {
	SeriesID  string `query:"series_id" json:"series_id" validate:"required"`
	Frequency string `query:"frequency" json:"frequency" default:"monthly" validate:"oneof=daily weekly monthly quarterly semiannual annual"`
	Start     string `query:"start" json:"start" validate:"required,datefmt"`
	End       string `query:"end" json:"end" validate:"required,datefmt"`
	Metrics   string `query:"metrics" json:"metrics" default:"rsi,macd,sma_cross,bollinger"`
}

type BatchRequest struct {
	SeriesIDs string `query:"series_ids" json:"series_ids" validate:"required"`
	Frequency string `query:"frequency" json:"frequency" default:"monthly" validate:"oneof=daily weekly monthly quarterly semiannual annual"`
	Start     string `query:"start" json:"start" validate:"required,datefmt"`
	End       string `query:"end" json:"end" validate:"required,datefmt"`
	Transform string `query:"transform" json:"transform" default:"raw"`
}

// SeriesResult is the full payload for one series request.
type SeriesResult struct {
	Series     *Series    `json:"series"`
	Transform  string     `json:"transform"`
	Statistics Statistics `json:"statistics"`
}
