// Package crisis holds the static table of historical financial crises and
// annotates series points that fall near one.
package crisis

import (
	"time"

	"MacroPulse/internal/domain/models"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Windows is the static crisis table, in match-priority order. Point crises
// carry Date; window crises carry Start/End only.
var Windows = []models.CrisisWindow{
	{
		Name:        "Black Monday",
		Date:        d(1987, time.October, 19),
		Description: "Global stock market crash; Dow fell 22.6% in one session",
		Severity:    models.SeverityHigh,
	},
	{
		Name:        "Dot-com bust",
		Start:       d(2000, time.March, 1),
		End:         d(2002, time.October, 1),
		Description: "Collapse of internet-sector valuations",
		Severity:    models.SeverityHigh,
	},
	{
		Name:        "September 11 attacks",
		Date:        d(2001, time.September, 11),
		Description: "Markets closed four days; sharp flight to safety",
		Severity:    models.SeverityHigh,
	},
	{
		Name:        "Lehman Brothers collapse",
		Date:        d(2008, time.September, 15),
		Description: "Largest bankruptcy in US history; credit markets froze",
		Severity:    models.SeverityExtreme,
	},
	{
		Name:        "Global Financial Crisis",
		Start:       d(2007, time.December, 1),
		End:         d(2009, time.June, 30),
		Description: "Subprime mortgage collapse and worldwide recession",
		Severity:    models.SeverityExtreme,
	},
	{
		Name:        "Eurozone debt crisis",
		Start:       d(2010, time.April, 1),
		End:         d(2012, time.July, 31),
		Description: "Sovereign debt stress across peripheral Europe",
		Severity:    models.SeverityHigh,
	},
	{
		Name:        "US debt-ceiling standoff",
		Date:        d(2011, time.August, 5),
		Description: "First-ever S&P downgrade of US sovereign credit",
		Severity:    models.SeverityModerate,
	},
	{
		Name:        "COVID-19 crash",
		Date:        d(2020, time.March, 16),
		Description: "Fastest bear market on record amid pandemic lockdowns",
		Severity:    models.SeverityExtreme,
	},
	{
		Name:        "COVID-19 recession",
		Start:       d(2020, time.February, 1),
		End:         d(2020, time.April, 30),
		Description: "Two-month pandemic recession, deepest postwar contraction",
		Severity:    models.SeverityExtreme,
	},
}
