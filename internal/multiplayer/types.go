// Package multiplayer implements the lobby, session, and match plumbing
// behind head-to-head duels. The coordinator pairs sessions through short
// join codes and hands each pair to an authoritative match loop; the
// transport layer only ever sees SessionHandle and the event types, so it
// stays independent of Wish and Bubble Tea.
package multiplayer

import "github.com/vovakirdan/tui-circuit/internal/core"

// PlayerID is an alias to core.PlayerID for convenience.
// Player1 is the lobby host, Player2 the joiner.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's connection (e.g. one SSH session).
type SessionID string

// MatchID uniquely identifies a match. Duel match IDs are uuid strings
// assigned by the coordinator.
type MatchID string

// MatchMode defines how a match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player run (campaign or endless).
	MatchModeSolo MatchMode = iota

	// MatchModeDuel is a head-to-head race between two sessions.
	MatchModeDuel
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeDuel:
		return "Duel"
	default:
		return "Unknown"
	}
}

// MatchHandle provides access to match metadata.
// Games receive this to know their context without managing match lifecycle.
type MatchHandle interface {
	// ID returns the unique identifier for this match.
	ID() MatchID

	// Mode returns how this match is configured.
	Mode() MatchMode
}

// Match is a concrete implementation of MatchHandle.
// The platform creates matches and passes handles to games.
type Match struct {
	id   MatchID
	mode MatchMode

	// SessionIDs tracks which sessions are part of this match.
	// One session for solo runs, two for duels.
	SessionIDs []SessionID
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		id:         id,
		mode:       mode,
		SessionIDs: sessions,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Sessions returns the session IDs participating in this match.
func (m *Match) Sessions() []SessionID {
	return m.SessionIDs
}
