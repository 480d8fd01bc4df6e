// Package calendar maps gameweeks to the calendar month their fixtures kick off in.
package calendar

import (
	"time"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

// KickoffLayout is the upstream kickoff_time format.
const KickoffLayout = "2006-01-02T15:04:05Z"

// Calendar maps a gameweek to its month. A nil or empty Calendar resolves
// every gameweek to model.UnknownMonth.
type Calendar map[model.GameweekID]model.Month

// Resolve builds a Calendar from fixture records. Records missing a
// gameweek or a parseable kickoff are skipped; a later fixture for the same
// gameweek overwrites an earlier one.
func Resolve(fixtures []model.Fixture) Calendar {
	out := make(Calendar)
	for _, f := range fixtures {
		if f.Event == nil || *f.Event <= 0 || f.KickoffTime == nil || *f.KickoffTime == "" {
			continue
		}
		kickoff, err := time.Parse(KickoffLayout, *f.KickoffTime)
		if err != nil {
			continue
		}
		out[*f.Event] = model.Month(kickoff.UTC().Month().String())
	}
	return out
}

// Month returns the month for gw, or model.UnknownMonth.
func (c Calendar) Month(gw model.GameweekID) model.Month {
	if m, ok := c[gw]; ok {
		return m
	}
	return model.UnknownMonth
}
