package model

import (
	"fmt"
	"strings"
)

// Manager is one league entry as returned by the standings endpoint.
type Manager struct {
	EntryID    int    `json:"entry_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
}

// IdentityMode selects how a manager is labelled in tables.
type IdentityMode string

const (
	// IdentityName labels a manager by personal name only.
	IdentityName IdentityMode = "name"
	// IdentityTeam labels a manager as "Team (Name)".
	IdentityTeam IdentityMode = "team"
)

// ParseIdentityMode accepts "name" or "team" (case-insensitive). Empty means team.
func ParseIdentityMode(s string) (IdentityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "team", "team_name", "composite":
		return IdentityTeam, nil
	case "name", "player", "player_name":
		return IdentityName, nil
	default:
		return "", fmt.Errorf("invalid identity mode %q (want name|team)", s)
	}
}

// ManagerIdentity keys the score tables. The entry id keeps two managers with
// the same display label apart.
type ManagerIdentity struct {
	EntryID int    `json:"entry_id"`
	Display string `json:"display"`
}

func (m ManagerIdentity) String() string {
	return m.Display
}

// Identity builds the table key for m under the given mode.
func (m Manager) Identity(mode IdentityMode) ManagerIdentity {
	display := m.PlayerName
	if mode != IdentityName {
		display = fmt.Sprintf("%s (%s)", m.TeamName, m.PlayerName)
	}
	return ManagerIdentity{EntryID: m.EntryID, Display: display}
}
