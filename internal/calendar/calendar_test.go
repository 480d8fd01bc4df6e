package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

func gw(n int) *model.GameweekID {
	g := model.GameweekID(n)
	return &g
}

func kick(s string) *string {
	return &s
}

func TestResolve(t *testing.T) {
	cal := Resolve([]model.Fixture{
		{Event: gw(1), KickoffTime: kick("2024-08-16T19:00:00Z")},
		{Event: gw(1), KickoffTime: kick("2024-08-17T11:30:00Z")},
		{Event: gw(3), KickoffTime: kick("2024-08-31T14:00:00Z")},
		{Event: gw(4), KickoffTime: kick("2024-09-14T11:30:00Z")},
		{Event: gw(20), KickoffTime: kick("2025-01-04T12:30:00Z")},
	})

	assert.Equal(t, Calendar{
		1:  "August",
		3:  "August",
		4:  "September",
		20: "January",
	}, cal)
}

func TestResolve_SkipsIncompleteRecords(t *testing.T) {
	cal := Resolve([]model.Fixture{
		{Event: nil, KickoffTime: kick("2024-08-16T19:00:00Z")},
		{Event: gw(2), KickoffTime: nil},
		{Event: gw(3), KickoffTime: kick("")},
		{Event: gw(4), KickoffTime: kick("16/08/2024 19:00")},
		{Event: gw(0), KickoffTime: kick("2024-08-16T19:00:00Z")},
	})
	assert.Empty(t, cal)
}

func TestResolve_LaterFixtureWins(t *testing.T) {
	cal := Resolve([]model.Fixture{
		{Event: gw(5), KickoffTime: kick("2024-09-30T19:00:00Z")},
		{Event: gw(5), KickoffTime: kick("2024-10-01T19:00:00Z")},
	})
	assert.Equal(t, model.Month("October"), cal.Month(5))
}

func TestMonth_Unknown(t *testing.T) {
	var empty Calendar
	assert.Equal(t, model.UnknownMonth, empty.Month(1))
	assert.Equal(t, model.UnknownMonth, Calendar{1: "August"}.Month(2))
}

func TestResolve_UsesUTC(t *testing.T) {
	// 23:30 UTC on the last day of a month stays in that month.
	cal := Resolve([]model.Fixture{{Event: gw(9), KickoffTime: kick("2024-10-31T23:30:00Z")}})
	assert.Equal(t, model.Month("October"), cal.Month(9))
}
