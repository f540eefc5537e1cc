package models

import (
	"sort"
	"time"
)

// DataPoint is a single observation of an economic series. Value must be a
// finite number; non-finite values are filtered before statistics.
type DataPoint struct {
	Date     time.Time              `json:"date"`
	Value    float64                `json:"value"`
	RawValue *float64               `json:"raw_value,omitempty"`
	Crisis   *CrisisWindow          `json:"crisis,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Series is an ordered sequence of observations for one indicator.
type Series struct {
	ID        string      `json:"series_id"`
	Frequency Frequency   `json:"frequency"`
	Points    []DataPoint `json:"points"`
}

// Clone deep-copies the series so transformations never mutate their input.
func (s *Series) Clone() *Series {
	out := &Series{ID: s.ID, Frequency: s.Frequency}
	out.Points = make([]DataPoint, len(s.Points))
	copy(out.Points, s.Points)
	for i := range out.Points {
		if s.Points[i].RawValue != nil {
			v := *s.Points[i].RawValue
			out.Points[i].RawValue = &v
		}
		if s.Points[i].Metadata != nil {
			m := make(map[string]interface{}, len(s.Points[i].Metadata))
			for k, v := range s.Points[i].Metadata {
				m[k] = v
			}
			out.Points[i].Metadata = m
		}
	}
	return out
}

// SortByDate orders points ascending by date in place.
func (s *Series) SortByDate() {
	sort.SliceStable(s.Points, func(i, j int) bool {
		return s.Points[i].Date.Before(s.Points[j].Date)
	})
}

// Values returns the observation values in point order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// Statistics summarizes a series. Count 0 means no usable observations;
// Error carries an optional diagnostic and never signals a failure.
type Statistics struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
	Error  string  `json:"error,omitempty"`
}
