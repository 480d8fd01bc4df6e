package model

import (
	"sort"
	"strconv"
)

// GameweekID identifies one round of fixtures.
type GameweekID int

func (g GameweekID) String() string {
	return "GW" + strconv.Itoa(int(g))
}

// Month is an English calendar month name derived from fixture kickoffs.
type Month string

// UnknownMonth holds gameweeks with no resolvable kickoff date.
const UnknownMonth Month = "Unknown"

// GameweekPoints is one row of a manager's history.
type GameweekPoints struct {
	Gameweek GameweekID `json:"event"`
	Points   int        `json:"points"`
}

// WeeklyScoreTable maps gameweek -> manager -> points scored that gameweek.
type WeeklyScoreTable map[GameweekID]map[ManagerIdentity]int

// MonthlyScoreTable maps month -> manager -> points summed over the month.
type MonthlyScoreTable map[Month]map[ManagerIdentity]int

// Set records points for a manager in gameweek gw, replacing any earlier value.
func (t WeeklyScoreTable) Set(gw GameweekID, who ManagerIdentity, points int) {
	row, ok := t[gw]
	if !ok {
		row = make(map[ManagerIdentity]int)
		t[gw] = row
	}
	row[who] = points
}

// Gameweeks returns the table's gameweeks in ascending order.
func (t WeeklyScoreTable) Gameweeks() []GameweekID {
	out := make([]GameweekID, 0, len(t))
	for gw := range t {
		out = append(out, gw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ManagerTotal sums a manager's points over every gameweek.
func (t WeeklyScoreTable) ManagerTotal(who ManagerIdentity) int {
	total := 0
	for _, row := range t {
		total += row[who]
	}
	return total
}

// Add accumulates points for a manager in month m.
func (t MonthlyScoreTable) Add(m Month, who ManagerIdentity, points int) {
	row, ok := t[m]
	if !ok {
		row = make(map[ManagerIdentity]int)
		t[m] = row
	}
	row[who] += points
}

// Points returns a manager's points for month m; absent managers score 0.
func (t MonthlyScoreTable) Points(m Month, who ManagerIdentity) int {
	return t[m][who]
}

// ManagerTotal sums a manager's points over every month.
func (t MonthlyScoreTable) ManagerTotal(who ManagerIdentity) int {
	total := 0
	for _, row := range t {
		total += row[who]
	}
	return total
}
