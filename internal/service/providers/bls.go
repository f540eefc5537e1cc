package providers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	xhttp "MacroPulse/pkg/http"
	applogger "MacroPulse/pkg/logger"
)

const blsDefaultBaseURL = "https://api.bls.gov/publicAPI/v2"

// BLS fetches observations from the Bureau of Labor Statistics API.
// The v2 endpoint is year-granular, so the requested range is widened to
// whole years and trimmed afterwards.
type BLS struct {
	client  *xhttp.Client
	baseURL string
	apiKey  string
	l       *applogger.Logger
}

// NewBLS creates a BLS data source.
func NewBLS(client *xhttp.Client, baseURL, apiKey string, l *applogger.Logger) *BLS {
	if baseURL == "" {
		baseURL = blsDefaultBaseURL
	}
	return &BLS{client: client, baseURL: baseURL, apiKey: apiKey, l: l}
}

func (b *BLS) Name() string { return "bls" }

type blsRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear"`
	EndYear         string   `json:"endyear"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

type blsDataPoint struct {
	Year   string `json:"year"`
	Period string `json:"period"`
	Value  string `json:"value"`
}

type blsResponse struct {
	Status  string   `json:"status"`
	Message []string `json:"message"`
	Results struct {
		Series []struct {
			SeriesID string         `json:"seriesID"`
			Data     []blsDataPoint `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// Fetch retrieves the series observations.
func (b *BLS) Fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error) {
	var resp blsResponse
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    b.baseURL + "/timeseries/data/",
		Body: blsRequest{
			SeriesID:        []string{seriesID},
			StartYear:       strconv.Itoa(start.Year()),
			EndYear:         strconv.Itoa(end.Year()),
			RegistrationKey: b.apiKey,
		},
	}, &resp)
	if err != nil {
		return nil, econerr.Wrap(econerr.KindDataSource, "bls fetch failed", err)
	}
	if resp.Status != "REQUEST_SUCCEEDED" {
		return nil, econerr.Newf(econerr.KindAPI, "bls request failed: %s", strings.Join(resp.Message, "; "))
	}
	if len(resp.Results.Series) == 0 {
		return nil, econerr.Newf(econerr.KindNoDataReturned, "bls returned no series for %s", seriesID)
	}

	raw := resp.Results.Series[0].Data
	points := make([]models.DataPoint, 0, len(raw))
	for _, d := range raw {
		date, ok := blsDate(d.Year, d.Period)
		if !ok {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		value, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			b.l.Warn("bls observation has bad value",
				applogger.String("series", seriesID),
				applogger.String("value", d.Value),
			)
			continue
		}
		points = append(points, models.DataPoint{Date: date, Value: value})
	}

	if len(points) == 0 {
		return nil, econerr.Newf(econerr.KindNoDataReturned, "bls returned no observations for %s", seriesID)
	}

	s := &models.Series{ID: seriesID, Frequency: freq, Points: points}
	s.SortByDate()
	return s, nil
}

// blsDate maps a BLS (year, period) pair to the first day of the period.
// Periods are M01-M12 for months and Q01-Q04 for quarters; M13 is the
// annual average and is skipped.
func blsDate(year, period string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil || len(period) < 3 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(period[1:])
	if err != nil {
		return time.Time{}, false
	}

	switch period[0] {
	case 'M':
		if n < 1 || n > 12 {
			return time.Time{}, false
		}
		return time.Date(y, time.Month(n), 1, 0, 0, 0, 0, time.UTC), true
	case 'Q':
		if n < 1 || n > 4 {
			return time.Time{}, false
		}
		return time.Date(y, time.Month((n-1)*3+1), 1, 0, 0, 0, 0, time.UTC), true
	case 'A':
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
