package model

// Fixture is the subset of an upstream fixture record the calendar needs.
// Either field may be absent (null) upstream.
type Fixture struct {
	Event       *GameweekID `json:"event"`
	KickoffTime *string     `json:"kickoff_time"`
}
