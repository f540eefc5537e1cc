package crisis

import (
	"testing"
	"time"

	"MacroPulse/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestMatchPointCrisisWithin30Days(t *testing.T) {
	got := Match(time.Date(2008, time.October, 1, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	require.Equal(t, "Lehman Brothers collapse", got.Name)
}

func TestMatchNoCrisisInQuietPeriod(t *testing.T) {
	require.Nil(t, Match(time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMatchFirstWinsInTableOrder(t *testing.T) {
	// 2020-03-16 sits inside both COVID entries; the point-style crash is
	// earlier in the table and must win.
	got := Match(time.Date(2020, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, got)
	require.Equal(t, "COVID-19 crash", got.Name)
}

// Window crises carry no anchor date, so a point sitting squarely inside the
// window still gets no annotation. This pins the known quirk of the matching
// rule rather than silently changing it.
func TestWindowCrisesNeverMatchByContainment(t *testing.T) {
	inGFC := time.Date(2008, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.Nil(t, Match(inGFC), "mid-window date matched despite no anchor date")

	inEurozone := time.Date(2011, time.February, 1, 0, 0, 0, 0, time.UTC)
	require.Nil(t, Match(inEurozone))
}

func TestAnnotateSetsCrisisOrNil(t *testing.T) {
	s := &models.Series{Points: []models.DataPoint{
		{Date: time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}}
	out := Annotate(s)
	require.NotNil(t, out.Points[0].Crisis)
	require.Nil(t, out.Points[1].Crisis)
}
