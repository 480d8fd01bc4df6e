package summary

import (
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
)

type TrendSeries struct {
	Manager model.ManagerIdentity `json:"manager"`
	// Cumulative[i] is the running total after Trend.Gameweeks[i].
	Cumulative []int `json:"cumulative"`
}

// Trend is the running season total of every manager by gameweek.
type Trend struct {
	Gameweeks []model.GameweekID `json:"gameweeks"`
	Series    []TrendSeries      `json:"series"`
}

// Max returns the largest cumulative value across all series.
func (t Trend) Max() int {
	best := 0
	for _, s := range t.Series {
		for _, v := range s.Cumulative {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// CumulativeTrend sums each manager's weekly points in gameweek order. A
// gameweek without a row adds nothing.
func CumulativeTrend(t *points.Tables) Trend {
	if t.Empty() {
		return Trend{}
	}
	out := Trend{Gameweeks: append([]model.GameweekID(nil), t.Gameweeks...)}
	for _, who := range t.Managers {
		series := TrendSeries{Manager: who, Cumulative: make([]int, len(t.Gameweeks))}
		running := 0
		for i, gw := range t.Gameweeks {
			running += t.Weekly[gw][who]
			series.Cumulative[i] = running
		}
		out.Series = append(out.Series, series)
	}
	return out
}
