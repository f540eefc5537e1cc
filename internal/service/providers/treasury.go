package providers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"MacroPulse/internal/domain/econerr"
	"MacroPulse/internal/domain/models"
	xhttp "MacroPulse/pkg/http"
	applogger "MacroPulse/pkg/logger"
	"MacroPulse/pkg/util"
)

const (
	treasuryDefaultBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service"
	treasuryPageSize       = 1000
)

// Treasury fetches average interest rates from the FiscalData API. The
// series ID selects the security description (e.g. "Treasury Bills").
type Treasury struct {
	client  *xhttp.Client
	baseURL string
	l       *applogger.Logger
}

// NewTreasury creates a Treasury data source. No API key is required.
func NewTreasury(client *xhttp.Client, baseURL string, l *applogger.Logger) *Treasury {
	if baseURL == "" {
		baseURL = treasuryDefaultBaseURL
	}
	return &Treasury{client: client, baseURL: baseURL, l: l}
}

func (t *Treasury) Name() string { return "treasury" }

type treasuryRecord struct {
	RecordDate   string `json:"record_date"`
	AvgInterest  string `json:"avg_interest_rate_amt"`
	SecurityDesc string `json:"security_desc"`
}

type treasuryResponse struct {
	Data []treasuryRecord `json:"data"`
	Meta struct {
		TotalPages int `json:"total-pages"`
	} `json:"meta"`
}

// Fetch retrieves the rate series, paging until the API is exhausted.
func (t *Treasury) Fetch(ctx context.Context, seriesID string, freq models.Frequency, start, end time.Time) (*models.Series, error) {
	filter := fmt.Sprintf("security_desc:eq:%s,record_date:gte:%s,record_date:lte:%s",
		seriesID, util.FormatDate(start), util.FormatDate(end))

	var points []models.DataPoint
	for page := 1; ; page++ {
		var resp treasuryResponse
		err := t.client.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    t.baseURL + "/v2/accounting/od/avg_interest_rates",
			QueryParams: map[string][]string{
				"filter":       {filter},
				"fields":       {"record_date,avg_interest_rate_amt,security_desc"},
				"page[size]":   {strconv.Itoa(treasuryPageSize)},
				"page[number]": {strconv.Itoa(page)},
				"sort":         {"record_date"},
			},
		}, &resp)
		if err != nil {
			return nil, econerr.Wrap(econerr.KindDataSource, "treasury fetch failed", err)
		}

		for _, rec := range resp.Data {
			date, err := util.ParseDate(rec.RecordDate)
			if err != nil {
				continue
			}
			value, err := strconv.ParseFloat(rec.AvgInterest, 64)
			if err != nil {
				t.l.Warn("treasury record has bad rate",
					applogger.String("series", seriesID),
					applogger.String("value", rec.AvgInterest),
				)
				continue
			}
			points = append(points, models.DataPoint{Date: date, Value: value})
		}

		if page >= resp.Meta.TotalPages {
			break
		}
	}

	if len(points) == 0 {
		return nil, econerr.Newf(econerr.KindNoDataReturned, "treasury returned no records for %s", seriesID)
	}

	return &models.Series{ID: seriesID, Frequency: freq, Points: points}, nil
}
