// Package points aggregates per-manager gameweek history into weekly and
// monthly score tables.
package points

import (
	"sort"

	"github.com/aatrey56/fpl-monthly-standings/internal/calendar"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

// ManagerHistory is one roster entry together with its fetched history.
type ManagerHistory struct {
	Manager model.Manager
	Events  []model.GameweekPoints
}

// Tables is the output of one aggregation.
type Tables struct {
	Weekly  model.WeeklyScoreTable  `json:"weekly"`
	Monthly model.MonthlyScoreTable `json:"monthly"`
	// Managers lists every identity with at least one row, in roster order.
	Managers []model.ManagerIdentity `json:"managers"`
	// Gameweeks is ascending.
	Gameweeks []model.GameweekID `json:"gameweeks"`
	// Months is in season order with model.UnknownMonth last.
	Months []model.Month `json:"months"`
}

// Empty reports whether no manager contributed any points row.
func (t *Tables) Empty() bool {
	return t == nil || len(t.Managers) == 0
}

// Aggregate builds both score tables from histories, which must be in roster
// order. Weekly points overwrite on a repeated gameweek; monthly points sum.
func Aggregate(cal calendar.Calendar, histories []ManagerHistory, mode model.IdentityMode) *Tables {
	out := &Tables{
		Weekly:  make(model.WeeklyScoreTable),
		Monthly: make(model.MonthlyScoreTable),
	}
	firstGW := make(map[model.Month]model.GameweekID)
	seen := make(map[model.ManagerIdentity]bool)

	for _, h := range histories {
		who := h.Manager.Identity(mode)
		for _, ev := range h.Events {
			month := cal.Month(ev.Gameweek)
			out.Weekly.Set(ev.Gameweek, who, ev.Points)
			out.Monthly.Add(month, who, ev.Points)

			if gw, ok := firstGW[month]; !ok || ev.Gameweek < gw {
				firstGW[month] = ev.Gameweek
			}
			if !seen[who] {
				seen[who] = true
				out.Managers = append(out.Managers, who)
			}
		}
	}

	out.Gameweeks = out.Weekly.Gameweeks()
	out.Months = orderMonths(firstGW)
	return out
}

// orderMonths sorts months by the earliest gameweek resolving to each, which
// keeps an August-to-May season in order across the year boundary.
func orderMonths(firstGW map[model.Month]model.GameweekID) []model.Month {
	months := make([]model.Month, 0, len(firstGW))
	for m := range firstGW {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		a, b := months[i], months[j]
		if (a == model.UnknownMonth) != (b == model.UnknownMonth) {
			return b == model.UnknownMonth
		}
		if firstGW[a] != firstGW[b] {
			return firstGW[a] < firstGW[b]
		}
		return a < b
	})
	return months
}
