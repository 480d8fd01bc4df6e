package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aatrey56/fpl-monthly-standings/internal/calendar"
	"github.com/aatrey56/fpl-monthly-standings/internal/fetch"
	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

// ErrUpstreamUnavailable wraps a failed or malformed roster fetch.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Source is the upstream the pipeline reads from. *fetch.Client satisfies it.
type Source interface {
	Fixtures(ctx context.Context) ([]model.Fixture, error)
	LeagueStandings(ctx context.Context, leagueID int) (*fetch.League, error)
	EntryHistory(ctx context.Context, entryID int) ([]model.GameweekPoints, error)
}

// MissingManager is a roster entry whose history could not be fetched.
type MissingManager struct {
	Manager  model.Manager         `json:"manager"`
	Identity model.ManagerIdentity `json:"identity"`
	Reason   string                `json:"reason"`
}

// Result is everything one run produced.
type Result struct {
	RunID      string             `json:"run_id"`
	LeagueID   int                `json:"league_id"`
	LeagueName string             `json:"league_name"`
	Mode       model.IdentityMode `json:"identity_mode"`
	Roster     []model.Manager    `json:"roster"`
	// CalendarAvailable is false when the fixtures fetch failed and every
	// gameweek fell back to model.UnknownMonth.
	CalendarAvailable bool              `json:"calendar_available"`
	Calendar          calendar.Calendar `json:"-"`
	Tables            *Tables           `json:"tables"`
	Missing           []MissingManager  `json:"missing,omitempty"`
}

// NoManagers reports an empty roster.
func (r *Result) NoManagers() bool {
	return r != nil && len(r.Roster) == 0
}

// Run fetches the calendar, roster and each manager's history in sequence
// and aggregates them. A roster failure aborts the run with
// ErrUpstreamUnavailable; calendar and per-manager failures do not.
func Run(ctx context.Context, src Source, leagueID int, mode model.IdentityMode, log logrus.FieldLogger) (*Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	res := &Result{
		RunID:    uuid.NewString(),
		LeagueID: leagueID,
		Mode:     mode,
	}
	log = log.WithFields(logrus.Fields{"run_id": res.RunID, "league_id": leagueID})

	fixtures, err := src.Fixtures(ctx)
	if err != nil {
		log.WithError(err).Warn("fixture calendar unavailable; gameweeks grouped under Unknown")
		res.Calendar = calendar.Calendar{}
	} else {
		res.Calendar = calendar.Resolve(fixtures)
		res.CalendarAvailable = true
	}

	league, err := src.LeagueStandings(ctx, leagueID)
	if err != nil {
		log.WithError(err).Error("league standings unavailable")
		return nil, fmt.Errorf("league %d standings: %w: %w", leagueID, ErrUpstreamUnavailable, err)
	}
	res.LeagueName = league.Name
	res.Roster = league.Managers

	histories := make([]ManagerHistory, 0, len(league.Managers))
	for _, m := range league.Managers {
		events, err := src.EntryHistory(ctx, m.EntryID)
		if err != nil {
			log.WithError(err).WithField("entry_id", m.EntryID).Warn("manager history unavailable; excluded")
			res.Missing = append(res.Missing, MissingManager{
				Manager:  m,
				Identity: m.Identity(mode),
				Reason:   err.Error(),
			})
			continue
		}
		histories = append(histories, ManagerHistory{Manager: m, Events: events})
	}

	res.Tables = Aggregate(res.Calendar, histories, mode)
	log.WithFields(logrus.Fields{
		"managers":  len(res.Tables.Managers),
		"missing":   len(res.Missing),
		"gameweeks": len(res.Tables.Gameweeks),
		"months":    len(res.Tables.Months),
	}).Info("aggregation finished")
	return res, nil
}
