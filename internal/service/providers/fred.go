package providers

import (
	"context"
	"strconv"
	"time"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	xhttp "MacroPulse/pkg/http"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/util"
)

const fredDefaultBaseURL = "https://api.stlouisfed.org/fred"

// FRED fetches observations from the St. Louis Fed FRED API.
type FRED struct {
	client  *xhttp.Client
	baseURL string
	apiKey  string
	l       *applogger.Logger
}

// NewFRED creates a FRED data source. baseURL may be empty to use the
// public endpoint.
func NewFRED(client *xhttp.Client, baseURL, apiKey string, l *applogger.Logger) *FRED {
	if baseURL == "" {
		baseURL = fredDefaultBaseURL
	}
	return &FRED{client: client, baseURL: baseURL, apiKey: apiKey, l: l}
}

func (f *FRED) Name() string { return "fred" }

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredResponse struct {
	Observations []fredObservation `json:"observations"`
}

// Fetch retrieves the series observations. FRED reports missing values as
// "."; those points are skipped.
func (f *FRED) Fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error) {
	var resp fredResponse
	err := f.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    f.baseURL + "/series/observations",
		QueryParams: map[string][]string{
			"series_id":         {seriesID},
			"api_key":           {f.apiKey},
			"file_type":         {"json"},
			"observation_start": {util.FormatDate(start)},
			"observation_end":   {util.FormatDate(end)},
		},
	}, &resp)
	if err != nil {
		return nil, econerr.Wrap(econerr.KindDataSource, "fred fetch failed", err)
	}

	points := make([]models.DataPoint, 0, len(resp.Observations))
	for _, obs := range resp.Observations {
		if obs.Value == "." {
			continue
		}
		date, err := util.ParseDate(obs.Date)
		if err != nil {
			f.l.Warn("fred observation has bad date",
				applogger.String("series", seriesID),
				applogger.String("date", obs.Date),
			)
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			f.l.Warn("fred observation has bad value",
				applogger.String("series", seriesID),
				applogger.String("value", obs.Value),
			)
			continue
		}
		points = append(points, models.DataPoint{Date: date, Value: value})
	}

	if len(points) == 0 {
		return nil, econerr.Newf(econerr.KindNoDataReturned, "fred returned no observations for %s", seriesID)
	}

	return &models.Series{ID: seriesID, Frequency: freq, Points: points}, nil
}
