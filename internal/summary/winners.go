package summary

import (
	"github.com/samber/lo"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
)

// Winner is the top scorer of one gameweek or month. Ties go to the first
// manager in roster order; Tied lists everyone on the winning score.
type Winner struct {
	Period   string                  `json:"period"`
	Gameweek model.GameweekID        `json:"gameweek,omitempty"`
	Month    model.Month             `json:"month,omitempty"`
	Manager  model.ManagerIdentity   `json:"manager"`
	Points   int                     `json:"points"`
	Tied     []model.ManagerIdentity `json:"tied,omitempty"`
}

// topScorer scans candidates in order and returns the first maximum.
func topScorer(candidates []model.ManagerIdentity, score func(model.ManagerIdentity) int) (model.ManagerIdentity, int, []model.ManagerIdentity, bool) {
	if len(candidates) == 0 {
		return model.ManagerIdentity{}, 0, nil, false
	}
	best, bestPts := candidates[0], score(candidates[0])
	for _, who := range candidates[1:] {
		if pts := score(who); pts > bestPts {
			best, bestPts = who, pts
		}
	}
	tied := lo.Filter(candidates, func(who model.ManagerIdentity, _ int) bool {
		return score(who) == bestPts
	})
	if len(tied) < 2 {
		tied = nil
	}
	return best, bestPts, tied, true
}

// WeeklyWinners returns one winner per gameweek, ascending. Only managers
// with a row for that gameweek compete.
func WeeklyWinners(t *points.Tables) []Winner {
	if t.Empty() {
		return nil
	}
	out := make([]Winner, 0, len(t.Gameweeks))
	for _, gw := range t.Gameweeks {
		week := t.Weekly[gw]
		present := lo.Filter(t.Managers, func(who model.ManagerIdentity, _ int) bool {
			_, ok := week[who]
			return ok
		})
		who, pts, tied, ok := topScorer(present, func(m model.ManagerIdentity) int { return week[m] })
		if !ok {
			continue
		}
		out = append(out, Winner{Period: gw.String(), Gameweek: gw, Manager: who, Points: pts, Tied: tied})
	}
	return out
}

// MonthlyWinners returns one winner per month in t.Months order. A manager
// with no points in a month competes with 0.
func MonthlyWinners(t *points.Tables) []Winner {
	if t.Empty() {
		return nil
	}
	out := make([]Winner, 0, len(t.Months))
	for _, m := range t.Months {
		month := m
		who, pts, tied, ok := topScorer(t.Managers, func(id model.ManagerIdentity) int {
			return t.Monthly.Points(month, id)
		})
		if !ok {
			continue
		}
		out = append(out, Winner{Period: string(month), Month: month, Manager: who, Points: pts, Tied: tied})
	}
	return out
}
